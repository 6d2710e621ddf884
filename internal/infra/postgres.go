package infra

import (
	"os"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hackfest/internal/models/db_models"
	"hackfest/pkg/logger"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Log.Fatal("Error connecting to database", zap.Error(err))
	}

	return db
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.User{},
		&db_models.PaymentAttempt{},
		&db_models.Team{},
		&db_models.Submission{},
		&db_models.PricingSettings{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Log.Error("Error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Log.Error("Error closing database connection", zap.Error(err))
	} else {
		logger.Log.Info("PostgreSQL database connection closed")
	}
}
