package domain

import (
	"fmt"
	"strings"
	"time"
)

type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusCompleted  OrderStatus = "Completed"
	StatusCancelled  OrderStatus = "Cancelled"
)

// ParseOrderStatus maps a backend status string to the closed enum.
// The backend is not consistent about casing, so matching is done on the
// lowercased trimmed value. Unrecognized values are a hard error, never a
// silent fallthrough.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return StatusPending, nil
	case "processing", "confirmed":
		return StatusProcessing, nil
	case "shipped", "shipping":
		return StatusShipped, nil
	case "completed", "delivered":
		return StatusCompleted, nil
	case "cancelled", "canceled":
		return StatusCancelled, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
}

// transitions is the full order lifecycle:
// Pending -> Processing -> Shipped -> Completed, with Cancelled reachable
// from any state before Completed. Completed and Cancelled are terminal.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusCompleted, StatusCancelled},
}

// transitionRoles gates each edge by the roles allowed to trigger it.
var transitionRoles = map[OrderStatus]map[OrderStatus][]Role{
	StatusPending: {
		StatusProcessing: {RoleEnterpriseAdmin, RoleSystemAdmin},
		StatusCancelled:  {RoleSystemAdmin},
	},
	StatusProcessing: {
		StatusShipped:   {RoleShipper, RoleEnterpriseAdmin, RoleSystemAdmin},
		StatusCancelled: {RoleSystemAdmin},
	},
	StatusShipped: {
		StatusCompleted: {RoleShipper},
		StatusCancelled: {RoleSystemAdmin},
	},
}

func CanTransition(from, to OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func RoleMayAdvance(role Role, from, to OrderStatus) bool {
	for _, allowed := range transitionRoles[from][to] {
		if allowed == role {
			return true
		}
	}
	return false
}

type Order struct {
	ID              int64
	Status          OrderStatus
	TotalAmount     float64
	OrderDate       time.Time
	ShippingAddress string
	Items           []OrderItem
}

type OrderItem struct {
	ID              int64
	ProductID       int64
	ProductName     string
	ProductImageURL string
	EnterpriseID    int64
	EnterpriseName  string
	Price           float64
	Quantity        int32
}

// HasEnterpriseItem reports whether any line item belongs to the given
// enterprise. Used to narrow enterprise-admin visibility.
func (o *Order) HasEnterpriseItem(enterpriseID int64) bool {
	for _, item := range o.Items {
		if item.EnterpriseID == enterpriseID {
			return true
		}
	}
	return false
}
