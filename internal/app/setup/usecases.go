package setup

import (
	"github.com/ocopmarket/order-gateway/internal/domain"
	notificationusecase "github.com/ocopmarket/order-gateway/internal/usecase/notification"
	orderusecase "github.com/ocopmarket/order-gateway/internal/usecase/order"
	sessionusecase "github.com/ocopmarket/order-gateway/internal/usecase/session"
)

type UseCases struct {
	SessionUsecase      domain.SessionUsecase
	OrderUsecase        domain.OrderUsecase
	NotificationUsecase domain.NotificationUsecase
}

func InitializeUseCases(deps *Dependencies) *UseCases {
	sessionUsecase := sessionusecase.NewDefaultSessionUsecase(
		deps.Backend,
		deps.Store,
		deps.Guards,
		deps.Config.Session,
		deps.Metrics,
		deps.Logger,
	)

	orderUsecase := orderusecase.NewDefaultOrderUsecase(
		deps.Backend,
		deps.Backend,
		deps.AuditRepo,
		deps.Publisher,
		deps.Metrics,
		deps.Logger,
	)

	notificationUsecase := notificationusecase.NewDefaultNotificationUsecase(deps.Backend)

	return &UseCases{
		SessionUsecase:      sessionUsecase,
		OrderUsecase:        orderUsecase,
		NotificationUsecase: notificationUsecase,
	}
}
