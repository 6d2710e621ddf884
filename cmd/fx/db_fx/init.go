package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"hackfest/internal/infra"
	"hackfest/pkg/logger"
)

var Module = fx.Options(
	fx.Provide(infra.InitPostgresql),
	fx.Invoke(migrate),
)

func migrate(db *gorm.DB) {
	if err := infra.AutoMigrate(db); err != nil {
		logger.Log.Sugar().Fatalf("Error running migrations: %v", err)
	}
}
