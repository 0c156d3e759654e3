package usecase

import (
	"context"

	"github.com/ocopmarket/order-gateway/internal/domain"
	"github.com/ocopmarket/order-gateway/internal/infrastructure/metrics"
	"github.com/stretchr/testify/mock"
)

// One registry-backed metrics instance for the whole test binary; promauto
// panics on duplicate registration.
var testMetrics = metrics.NewGatewayMetrics()

type MockOrderAPI struct {
	mock.Mock
}

func (m *MockOrderAPI) GetOrders(ctx context.Context, token string) ([]*domain.Order, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *MockOrderAPI) GetMyShipments(ctx context.Context, token string) ([]*domain.Order, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *MockOrderAPI) UpdateOrderStatus(ctx context.Context, token string, orderID int64, status domain.OrderStatus) (*domain.Order, error) {
	args := m.Called(ctx, token, orderID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderAPI) ShipOrder(ctx context.Context, token string, orderID int64) (*domain.Order, error) {
	args := m.Called(ctx, token, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderAPI) DeliverOrder(ctx context.Context, token string, orderID int64) (*domain.Order, error) {
	args := m.Called(ctx, token, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

type MockPaymentAPI struct {
	mock.Mock
}

func (m *MockPaymentAPI) GetOrderPayments(ctx context.Context, token string, orderID int64) ([]*domain.Payment, error) {
	args := m.Called(ctx, token, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Payment), args.Error(1)
}

func (m *MockPaymentAPI) UpdatePaymentStatus(ctx context.Context, token string, paymentID int64, status string) (*domain.Payment, error) {
	args := m.Called(ctx, token, paymentID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

type MockAuditRepo struct {
	mock.Mock
}

func (m *MockAuditRepo) RecordTransition(ctx context.Context, record *domain.TransitionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAuditRepo) RecordSettlement(ctx context.Context, records []*domain.SettlementRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

func (m *MockAuditRepo) RecordSessionExpiry(ctx context.Context, record *domain.SessionExpiryRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}
