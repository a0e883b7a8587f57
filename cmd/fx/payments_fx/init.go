package payments_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"diamondstore/internal/api/controllers"
	"diamondstore/internal/catalog"
	"diamondstore/internal/config"
	"diamondstore/internal/repositories"
	"diamondstore/internal/services"
)

var Module = fx.Provide(
	provideCatalog, providePaymentRepo, providePaymentService, providePaymentController,
)

func provideCatalog(cfg *config.Config) *catalog.Catalog {
	return catalog.New(cfg.RecipientAddress, cfg.TestRecipientAddress)
}

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepositoryInterface {
	return repositories.NewPaymentRepository(db)
}

func providePaymentService(paymentRepo repositories.PaymentRepositoryInterface, productCatalog *catalog.Catalog, cfg *config.Config) services.PaymentServiceInterface {
	return services.NewPaymentService(paymentRepo, productCatalog, services.PaymentConfig{
		WebhookPublicKey: cfg.WebhookPublicKey,
	})
}

func providePaymentController(paymentService services.PaymentServiceInterface, productCatalog *catalog.Catalog) *controllers.PaymentController {
	return controllers.NewPaymentController(paymentService, productCatalog)
}
