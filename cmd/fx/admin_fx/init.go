package admin_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"hackfest/internal/api/controllers"
	"hackfest/internal/repositories"
	"hackfest/internal/services"
)

var Module = fx.Provide(
	provideSettingsRepo, provideAdminService, provideAdminController,
)

func provideSettingsRepo(db *gorm.DB) repositories.SettingsRepository {
	return repositories.NewSettingsRepository(db)
}

func provideAdminService(users repositories.UserRepository, settings repositories.SettingsRepository) services.AdminServiceInterface {
	return services.NewAdminService(users, settings)
}

func provideAdminController(adminService services.AdminServiceInterface, paymentService services.PaymentService) *controllers.AdminController {
	return controllers.NewAdminController(adminService, paymentService)
}
