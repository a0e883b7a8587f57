package users_fx

import (
	"context"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"log"

	"diamondstore/internal/api/controllers"
	"diamondstore/internal/config"
	"diamondstore/internal/repositories"
	"diamondstore/internal/services"
	"diamondstore/pkg/auth"
)

var Module = fx.Provide(
	provideTokenVerifier, provideUserRepo, provideUserService, provideUserController,
)

func provideTokenVerifier(cfg *config.Config) auth.TokenVerifier {
	verifier, err := auth.NewJWKSVerifier(context.Background(), cfg.SSOJwksURL)
	if err != nil {
		log.Fatalf("Error initializing SSO token verifier: %v", err)
	}
	return verifier
}

func provideUserRepo(db *gorm.DB) repositories.UserRepositoryInterface {
	return repositories.NewUserRepository(db)
}

func provideUserService(userRepo repositories.UserRepositoryInterface) services.UserServiceInterface {
	return services.NewUserService(userRepo)
}

func provideUserController(userService services.UserServiceInterface) *controllers.UserController {
	return controllers.NewUserController(userService)
}
