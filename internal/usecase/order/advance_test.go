package usecase

import (
	"context"
	"testing"

	"github.com/ocopmarket/order-gateway/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUsecase(orderAPI *MockOrderAPI, paymentAPI *MockPaymentAPI, audit *MockAuditRepo) *DefaultOrderUsecase {
	return NewDefaultOrderUsecase(orderAPI, paymentAPI, audit, nil, testMetrics, zap.NewNop())
}

func enterpriseSession() *domain.Session {
	return &domain.Session{
		ID:           "sess-1",
		UserID:       10,
		Role:         domain.RoleEnterpriseAdmin,
		EnterpriseID: 7,
		BackendToken: "tok-ent",
	}
}

func shipperSession() *domain.Session {
	return &domain.Session{
		ID:           "sess-2",
		UserID:       20,
		Role:         domain.RoleShipper,
		ShipperID:    3,
		BackendToken: "tok-ship",
	}
}

func orderWithStatus(id int64, status domain.OrderStatus) *domain.Order {
	return &domain.Order{
		ID:     id,
		Status: status,
		Items:  []domain.OrderItem{{ProductName: "Mat ong rung", EnterpriseID: 7}},
	}
}

func TestAdvanceStatus_SkippingStatesFailsWithoutBackendCall(t *testing.T) {
	orderAPI := new(MockOrderAPI)
	audit := new(MockAuditRepo)
	uc := newTestUsecase(orderAPI, new(MockPaymentAPI), audit)

	uc.cacheOrders([]*domain.Order{orderWithStatus(42, domain.StatusPending)})
	audit.On("RecordTransition", mock.Anything, mock.MatchedBy(func(r *domain.TransitionRecord) bool {
		return r.Rejected && r.OrderID == 42
	})).Return(nil)

	_, err := uc.AdvanceStatus(context.Background(), enterpriseSession(), 42, domain.StatusCompleted)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	// No status mutation may have been attempted against the backend.
	orderAPI.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	orderAPI.AssertNotCalled(t, "DeliverOrder", mock.Anything, mock.Anything, mock.Anything)
	audit.AssertExpectations(t)
}

func TestAdvanceStatus_RoleGate(t *testing.T) {
	orderAPI := new(MockOrderAPI)
	audit := new(MockAuditRepo)
	uc := newTestUsecase(orderAPI, new(MockPaymentAPI), audit)

	uc.cacheOrders([]*domain.Order{orderWithStatus(42, domain.StatusPending)})
	audit.On("RecordTransition", mock.Anything, mock.Anything).Return(nil)

	// A shipper may not confirm a pending order.
	_, err := uc.AdvanceStatus(context.Background(), shipperSession(), 42, domain.StatusProcessing)

	assert.ErrorIs(t, err, domain.ErrForbidden)
	orderAPI.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdvanceStatus_ConfirmThenMutate(t *testing.T) {
	orderAPI := new(MockOrderAPI)
	audit := new(MockAuditRepo)
	uc := newTestUsecase(orderAPI, new(MockPaymentAPI), audit)

	uc.cacheOrders([]*domain.Order{orderWithStatus(42, domain.StatusProcessing)})

	shipped := orderWithStatus(42, domain.StatusShipped)
	orderAPI.On("ShipOrder", mock.Anything, "tok-ent", int64(42)).Return(shipped, nil)
	audit.On("RecordTransition", mock.Anything, mock.MatchedBy(func(r *domain.TransitionRecord) bool {
		return !r.Rejected && r.OldStatus == domain.StatusProcessing && r.NewStatus == domain.StatusShipped
	})).Return(nil)

	updated, err := uc.AdvanceStatus(context.Background(), enterpriseSession(), 42, domain.StatusShipped)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, updated.Status)

	// The cache now reflects the confirmed state.
	cached, ok := uc.cachedOrder(42)
	require.True(t, ok)
	assert.Equal(t, domain.StatusShipped, cached.Status)

	orderAPI.AssertExpectations(t)
	audit.AssertExpectations(t)
}

func TestAdvanceStatus_BackendRejectionLeavesCacheUntouched(t *testing.T) {
	orderAPI := new(MockOrderAPI)
	uc := newTestUsecase(orderAPI, new(MockPaymentAPI), new(MockAuditRepo))

	uc.cacheOrders([]*domain.Order{orderWithStatus(42, domain.StatusPending)})
	orderAPI.On("UpdateOrderStatus", mock.Anything, "tok-ent", int64(42), domain.StatusProcessing).
		Return(nil, domain.ErrValidation)

	_, err := uc.AdvanceStatus(context.Background(), enterpriseSession(), 42, domain.StatusProcessing)

	assert.ErrorIs(t, err, domain.ErrValidation)
	cached, _ := uc.cachedOrder(42)
	assert.Equal(t, domain.StatusPending, cached.Status)
	// Exactly one attempt: rejections are never retried automatically.
	orderAPI.AssertNumberOfCalls(t, "UpdateOrderStatus", 1)
}

func TestAdvanceStatus_DeliveryGoesThroughDeliverEndpoint(t *testing.T) {
	orderAPI := new(MockOrderAPI)
	audit := new(MockAuditRepo)
	uc := newTestUsecase(orderAPI, new(MockPaymentAPI), audit)

	uc.cacheOrders([]*domain.Order{orderWithStatus(42, domain.StatusShipped)})

	completed := orderWithStatus(42, domain.StatusCompleted)
	orderAPI.On("DeliverOrder", mock.Anything, "tok-ship", int64(42)).Return(completed, nil)
	audit.On("RecordTransition", mock.Anything, mock.Anything).Return(nil)

	updated, err := uc.AdvanceStatus(context.Background(), shipperSession(), 42, domain.StatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, updated.Status)
	orderAPI.AssertNotCalled(t, "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAdvanceStatus_UnknownOrder(t *testing.T) {
	orderAPI := new(MockOrderAPI)
	uc := newTestUsecase(orderAPI, new(MockPaymentAPI), new(MockAuditRepo))

	orderAPI.On("GetOrders", mock.Anything, "tok-ent").Return([]*domain.Order{}, nil)

	_, err := uc.AdvanceStatus(context.Background(), enterpriseSession(), 99, domain.StatusProcessing)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
