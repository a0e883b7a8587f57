package main

import (
	"context"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"log"

	"diamondstore/cmd/fx/config_fx"
	"diamondstore/cmd/fx/db_fx"
	"diamondstore/cmd/fx/payments_fx"
	"diamondstore/cmd/fx/users_fx"
	"diamondstore/internal/api/controllers"
	"diamondstore/internal/config"
	"diamondstore/pkg/auth"
	"diamondstore/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		users_fx.Module,
		payments_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	verifier auth.TokenVerifier,
	paymentController *controllers.PaymentController,
	userController *controllers.UserController) *gin.Engine {

	gin.SetMode(cfg.Mode)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, verifier, paymentController, userController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	verifier auth.TokenVerifier,
	paymentController *controllers.PaymentController,
	userController *controllers.UserController) {

	api := r.Group("/api")

	// The processor authenticates with a body signature, not a bearer token.
	api.POST("/webhooks/payment", paymentController.HandleWebhook)
	api.GET("/products", paymentController.ListProducts)

	authed := api.Group("", middleware.SSOAuthMiddleware(verifier))
	authed.POST("/invoices", paymentController.CreateInvoice)
	authed.GET("/transactions", paymentController.ListTransactions)
	authed.GET("/me", userController.Me)
}
