package order

import (
	"go.uber.org/zap"

	"orderdesk/internal/order/controller"
	"orderdesk/internal/order/repository"
	"orderdesk/internal/order/service"
)

func NewModule(repo *repository.MemoryOrderRepository, logger *zap.Logger) *controller.OrdersController {
	svc := service.NewOrdersService(repo)
	return controller.NewOrdersController(svc, logger)
}
