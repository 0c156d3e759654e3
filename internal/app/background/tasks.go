package background

import (
	"context"
	"time"

	"github.com/ocopmarket/order-gateway/internal/config"
	"github.com/ocopmarket/order-gateway/internal/domain"
	"github.com/ocopmarket/order-gateway/internal/infrastructure/metrics"
	"github.com/ocopmarket/order-gateway/internal/session"
	notificationusecase "github.com/ocopmarket/order-gateway/internal/usecase/notification"
	"go.uber.org/zap"
)

// BackgroundTasks owns the gateway's recurring loops: polling the backend
// for fresh notifications and sweeping idle sessions that no longer have a
// live guard (for example after a restart).
type BackgroundTasks struct {
	Notifications domain.NotificationAPI
	Guards        *session.Manager
	Config        *config.GatewayConfig
	Metrics       *metrics.GatewayMetrics
	Logger        *zap.Logger
}

func NewBackgroundTasks(
	notifications domain.NotificationAPI,
	guards *session.Manager,
	cfg *config.GatewayConfig,
	gatewayMetrics *metrics.GatewayMetrics,
	logger *zap.Logger) *BackgroundTasks {

	return &BackgroundTasks{
		Notifications: notifications,
		Guards:        guards,
		Config:        cfg,
		Metrics:       gatewayMetrics,
		Logger:        logger,
	}
}

func (bt *BackgroundTasks) StartAll(ctx context.Context) {
	go bt.startNotificationPolling(ctx)
	go bt.startSessionSweep(ctx)
}

func (bt *BackgroundTasks) startNotificationPolling(ctx context.Context) {
	token := bt.Config.Notifications.ServiceToken
	if token == "" {
		bt.Logger.Warn("notification polling disabled: no service token configured")
		return
	}

	poller := &notificationusecase.Poller{
		Source: notificationusecase.SourceFunc(func(ctx context.Context) ([]*domain.Notification, error) {
			return bt.Notifications.GetNotifications(ctx, token, true)
		}),
		Interval: bt.Config.Notifications.PollInterval(),
		Handler: func(notifications []*domain.Notification) {
			bt.Logger.Info("unread notifications pending", zap.Int("count", len(notifications)))
		},
		Metrics: bt.Metrics,
		Logger:  bt.Logger,
	}
	poller.Run(ctx)
}

func (bt *BackgroundTasks) startSessionSweep(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := bt.Guards.Sweep(ctx); err != nil {
				bt.Logger.Error("session sweep failed", zap.Error(err))
			}
		}
	}
}
