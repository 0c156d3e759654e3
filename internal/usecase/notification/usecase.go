package usecase

import (
	"context"

	"github.com/ocopmarket/order-gateway/internal/domain"
)

// DefaultNotificationUsecase passes notification operations through to the
// backend on behalf of the session's user.
type DefaultNotificationUsecase struct {
	API domain.NotificationAPI
}

func NewDefaultNotificationUsecase(api domain.NotificationAPI) *DefaultNotificationUsecase {
	return &DefaultNotificationUsecase{API: api}
}

func (uc *DefaultNotificationUsecase) List(ctx context.Context, session *domain.Session, unreadOnly bool) ([]*domain.Notification, error) {
	return uc.API.GetNotifications(ctx, session.BackendToken, unreadOnly)
}

func (uc *DefaultNotificationUsecase) MarkRead(ctx context.Context, session *domain.Session, notificationID int64) error {
	return uc.API.MarkNotificationRead(ctx, session.BackendToken, notificationID)
}

func (uc *DefaultNotificationUsecase) MarkAllRead(ctx context.Context, session *domain.Session) error {
	return uc.API.MarkAllNotificationsRead(ctx, session.BackendToken)
}

func (uc *DefaultNotificationUsecase) Delete(ctx context.Context, session *domain.Session, notificationID int64) error {
	return uc.API.DeleteNotification(ctx, session.BackendToken, notificationID)
}
