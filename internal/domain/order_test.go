package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want OrderStatus
	}{
		{"Pending", StatusPending},
		{"pending", StatusPending},
		{"  PROCESSING ", StatusProcessing},
		{"confirmed", StatusProcessing},
		{"Shipped", StatusShipped},
		{"shipping", StatusShipped},
		{"delivered", StatusCompleted},
		{"Completed", StatusCompleted},
		{"canceled", StatusCancelled},
		{"Cancelled", StatusCancelled},
	}

	for _, tc := range cases {
		got, err := ParseOrderStatus(tc.raw)
		require.NoError(t, err, "raw=%q", tc.raw)
		assert.Equal(t, tc.want, got, "raw=%q", tc.raw)
	}
}

func TestParseOrderStatus_UnknownIsHardError(t *testing.T) {
	for _, raw := range []string{"", "refunded", "PENDING_PAYMENT", "done"} {
		_, err := ParseOrderStatus(raw)
		assert.ErrorIs(t, err, ErrUnknownStatus, "raw=%q", raw)
	}
}

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusProcessing))
	assert.True(t, CanTransition(StatusProcessing, StatusShipped))
	assert.True(t, CanTransition(StatusShipped, StatusCompleted))

	// Cancelled is reachable from every pre-Completed state.
	assert.True(t, CanTransition(StatusPending, StatusCancelled))
	assert.True(t, CanTransition(StatusProcessing, StatusCancelled))
	assert.True(t, CanTransition(StatusShipped, StatusCancelled))

	// No skipping, no going back, terminal states stay terminal.
	assert.False(t, CanTransition(StatusPending, StatusShipped))
	assert.False(t, CanTransition(StatusPending, StatusCompleted))
	assert.False(t, CanTransition(StatusProcessing, StatusCompleted))
	assert.False(t, CanTransition(StatusShipped, StatusProcessing))
	assert.False(t, CanTransition(StatusCompleted, StatusCancelled))
	assert.False(t, CanTransition(StatusCompleted, StatusShipped))
	assert.False(t, CanTransition(StatusCancelled, StatusPending))
}

func TestRoleMayAdvance(t *testing.T) {
	assert.True(t, RoleMayAdvance(RoleEnterpriseAdmin, StatusPending, StatusProcessing))
	assert.True(t, RoleMayAdvance(RoleSystemAdmin, StatusPending, StatusProcessing))
	assert.False(t, RoleMayAdvance(RoleShipper, StatusPending, StatusProcessing))
	assert.False(t, RoleMayAdvance(RoleCustomer, StatusPending, StatusProcessing))

	assert.True(t, RoleMayAdvance(RoleShipper, StatusProcessing, StatusShipped))
	assert.True(t, RoleMayAdvance(RoleEnterpriseAdmin, StatusProcessing, StatusShipped))

	// Only the shipper confirms delivery.
	assert.True(t, RoleMayAdvance(RoleShipper, StatusShipped, StatusCompleted))
	assert.False(t, RoleMayAdvance(RoleEnterpriseAdmin, StatusShipped, StatusCompleted))
	assert.False(t, RoleMayAdvance(RoleSystemAdmin, StatusShipped, StatusCompleted))
}

func TestHasEnterpriseItem(t *testing.T) {
	order := &Order{
		ID: 42,
		Items: []OrderItem{
			{ProductName: "Ca phe Buon Ma Thuot", EnterpriseID: 7},
			{ProductName: "Nuoc mam Phu Quoc", EnterpriseID: 9},
		},
	}
	assert.True(t, order.HasEnterpriseItem(7))
	assert.True(t, order.HasEnterpriseItem(9))
	assert.False(t, order.HasEnterpriseItem(3))
}

func TestSettled(t *testing.T) {
	paid := &Payment{Status: PaymentPaid}
	unpaid := &Payment{Status: "Pending"}

	assert.False(t, Settled(nil))
	assert.False(t, Settled([]*Payment{paid, unpaid}))
	assert.True(t, Settled([]*Payment{paid, paid}))
}
