package account_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"travelai/internal/api/controllers"
	"travelai/internal/config"
	"travelai/internal/repositories"
	"travelai/internal/services"
	"travelai/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideJWTManager, controllers.NewAccountController)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)
}

func provideAccountService(accountRepo repositories.AccountRepository, denylist repositories.TokenDenylist, jwtManager *utils.JWTManager, log zerolog.Logger) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, denylist, jwtManager, log.With().Str("component", "accounts").Logger())
}
