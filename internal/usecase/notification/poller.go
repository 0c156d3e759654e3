package usecase

import (
	"context"
	"time"

	"github.com/ocopmarket/order-gateway/internal/domain"
	"github.com/ocopmarket/order-gateway/internal/infrastructure/metrics"
	"go.uber.org/zap"
)

// Source is where notifications come from. Pull-based today (REST polling);
// a push transport can replace it behind the same interface without
// touching consumers.
type Source interface {
	Fetch(ctx context.Context) ([]*domain.Notification, error)
}

type SourceFunc func(ctx context.Context) ([]*domain.Notification, error)

func (f SourceFunc) Fetch(ctx context.Context) ([]*domain.Notification, error) { return f(ctx) }

// Poller delivers batches from a Source to a handler on a fixed interval.
// It stops with its context: the owner cancelling is how the recurring
// timer gets released, never leaked.
type Poller struct {
	Source   Source
	Interval time.Duration
	Handler  func(notifications []*domain.Notification)
	Metrics  *metrics.GatewayMetrics
	Logger   *zap.Logger
}

func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			notifications, err := p.Source.Fetch(ctx)
			if err != nil {
				p.Metrics.NotificationPollsTotal.WithLabelValues("error").Inc()
				p.Logger.Warn("notification poll failed", zap.Error(err))
				continue
			}
			p.Metrics.NotificationPollsTotal.WithLabelValues("ok").Inc()
			if len(notifications) > 0 {
				p.Handler(notifications)
			}
		}
	}
}
