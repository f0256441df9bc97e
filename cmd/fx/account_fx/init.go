package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wayfare/internal/api/controllers"
	"wayfare/internal/repositories"
	"wayfare/internal/services"
)

var Module = fx.Provide(
	provideAccountRepo,
	provideAuthNotifier,
	provideAccountService,
	provideAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAuthNotifier() *services.AuthNotifier {
	return services.NewAuthNotifier()
}

func provideAccountService(accountRepo repositories.AccountRepository, notifier *services.AuthNotifier) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, notifier)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
