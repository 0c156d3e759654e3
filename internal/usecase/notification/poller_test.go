package usecase

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ocopmarket/order-gateway/internal/domain"
	"github.com/ocopmarket/order-gateway/internal/infrastructure/metrics"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var testMetrics = metrics.NewGatewayMetrics()

func TestPoller_DeliversBatchesUntilCancelled(t *testing.T) {
	var fetches, delivered atomic.Int32

	poller := &Poller{
		Source: SourceFunc(func(ctx context.Context) ([]*domain.Notification, error) {
			fetches.Add(1)
			return []*domain.Notification{{ID: 1, Type: "new_order"}}, nil
		}),
		Interval: 10 * time.Millisecond,
		Handler: func(notifications []*domain.Notification) {
			delivered.Add(int32(len(notifications)))
		},
		Metrics: testMetrics,
		Logger:  zap.NewNop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return delivered.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop on context cancel")
	}

	// No further fetches after cancellation.
	settled := fetches.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, fetches.Load())
}

func TestPoller_SkipsHandlerOnEmptyAndError(t *testing.T) {
	var calls atomic.Int32
	var handled atomic.Int32

	poller := &Poller{
		Source: SourceFunc(func(ctx context.Context) ([]*domain.Notification, error) {
			if calls.Add(1)%2 == 0 {
				return nil, domain.ErrNetwork
			}
			return []*domain.Notification{}, nil
		}),
		Interval: 5 * time.Millisecond,
		Handler: func(notifications []*domain.Notification) {
			handled.Add(1)
		},
		Metrics: testMetrics,
		Logger:  zap.NewNop(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	poller.Run(ctx)

	assert.Greater(t, calls.Load(), int32(2))
	assert.Equal(t, int32(0), handled.Load())
}
