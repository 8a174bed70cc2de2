package order

import (
	"go.uber.org/zap"

	"artistic-unity/internal/catalog"
	"artistic-unity/internal/config"
	"artistic-unity/internal/infrastructure/mail"
	"artistic-unity/internal/order/controller"
	"artistic-unity/internal/order/service"
	"artistic-unity/internal/order/usecase"
)

func NewModule(cat *catalog.Catalog, sender mail.Sender, cfg *config.Config, logger *zap.Logger) *controller.SubmitOrderController {
	notificationSvc := service.NewNotificationService(sender, cfg.Mail.OwnerEmail, logger)
	submitUC := usecase.NewSubmitOrderUseCase(cat, notificationSvc, logger)
	return controller.NewSubmitOrderController(submitUC, logger)
}
