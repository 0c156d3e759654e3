package usecase

import (
	"sync"

	"github.com/ocopmarket/order-gateway/internal/domain"
	"github.com/ocopmarket/order-gateway/internal/infrastructure/metrics"
	"go.uber.org/zap"
)

// DefaultOrderUsecase drives the order lifecycle against the backend. It
// keeps a small read cache of the last orders seen per account so that a
// transition can be validated against the current status without an extra
// round trip. The cache is display state only: it is never mutated before
// the backend confirms a transition.
type DefaultOrderUsecase struct {
	OrderAPI   domain.OrderAPI
	PaymentAPI domain.PaymentAPI
	AuditRepo  domain.AuditRepository
	Publisher  domain.EventPublisher
	Metrics    *metrics.GatewayMetrics
	Logger     *zap.Logger

	mu    sync.RWMutex
	cache map[int64]*domain.Order
}

func NewDefaultOrderUsecase(
	orderAPI domain.OrderAPI,
	paymentAPI domain.PaymentAPI,
	auditRepo domain.AuditRepository,
	publisher domain.EventPublisher,
	gatewayMetrics *metrics.GatewayMetrics,
	logger *zap.Logger) *DefaultOrderUsecase {

	return &DefaultOrderUsecase{
		OrderAPI:   orderAPI,
		PaymentAPI: paymentAPI,
		AuditRepo:  auditRepo,
		Publisher:  publisher,
		Metrics:    gatewayMetrics,
		Logger:     logger,
		cache:      make(map[int64]*domain.Order),
	}
}

func (uc *DefaultOrderUsecase) cacheOrders(orders []*domain.Order) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for _, order := range orders {
		uc.cache[order.ID] = order
	}
}

func (uc *DefaultOrderUsecase) cachedOrder(orderID int64) (*domain.Order, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	order, ok := uc.cache[orderID]
	return order, ok
}
