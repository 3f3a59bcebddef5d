package order_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"log"
	"os"
	"templify/internal/api/controllers"
	"templify/internal/repositories"
	"templify/internal/services"
)

var Module = fx.Provide(
	provideOrderRepo, providePaymentProvider, provideOrderService, provideOrderController,
)

func provideOrderRepo(db *gorm.DB) repositories.OrderRepository {
	return repositories.NewOrderRepository(db)
}

func providePaymentProvider() services.PaymentProvider {
	cfg := services.StripeConfig{
		SecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		Currency:  os.Getenv("STRIPE_CURRENCY"),
	}

	provider, err := services.NewStripeProvider(cfg)
	if err != nil {
		log.Fatalf("Error initializing Stripe provider: %v", err)
	}

	return provider
}

func provideOrderService(
	orderRepo repositories.OrderRepository,
	templateRepo repositories.TemplateRepository,
	provider services.PaymentProvider,
	mailService services.MailServiceInterface,
) services.OrderServiceInterface {
	return services.NewOrderService(orderRepo, templateRepo, provider, mailService)
}

func provideOrderController(orderService services.OrderServiceInterface) *controllers.OrderController {
	return controllers.NewOrderController(orderService)
}
