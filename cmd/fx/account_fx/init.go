package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"hackfest/internal/api/controllers"
	"hackfest/internal/repositories"
	"hackfest/internal/services"
	"hackfest/pkg/logger"
	"hackfest/pkg/memcache"
)

var Module = fx.Provide(
	provideUserRepo, provideVerifyTokens, provideAccountService, provideAccountController,
)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideVerifyTokens() memcache.VerifyTokenStore {
	return memcache.NewVerifyTokens()
}

func provideAccountService(
	users repositories.UserRepository,
	mailService services.IMailService,
	tokens memcache.VerifyTokenStore,
) services.AccountServiceInterface {
	return services.NewAccountService(users, mailService, tokens, logger.Log)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
