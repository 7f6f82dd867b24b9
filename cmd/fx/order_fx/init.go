package order_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"xinli/internal/api/controllers"
	"xinli/internal/repositories"
	"xinli/internal/services"
)

var Module = fx.Provide(
	provideOrderRepo, providePaymentConfig, provideOrderService, providePaymentController,
)

func provideOrderRepo(db *gorm.DB) repositories.OrderRepositoryInterface {
	return repositories.NewOrderRepository(db)
}

func providePaymentConfig() services.PaymentConfig {
	return services.LoadPaymentConfig()
}

func provideOrderService(
	orderRepo repositories.OrderRepositoryInterface,
	delivery services.DeliveryServiceInterface,
	cfg services.PaymentConfig) services.OrderServiceInterface {
	return services.NewOrderService(orderRepo, delivery, cfg)
}

func providePaymentController(orderService services.OrderServiceInterface) *controllers.PaymentController {
	return controllers.NewPaymentController(orderService)
}
