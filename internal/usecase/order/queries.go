package usecase

import (
	"context"

	"github.com/ocopmarket/order-gateway/internal/domain"
)

// ListOrdersForRole fetches the orders visible to the session's role.
// Shippers go through the dedicated my-shipments endpoint, never a
// client-side filter over all orders. The backend already scopes by token;
// ScopeOrders narrows again defensively and must never widen visibility.
func (uc *DefaultOrderUsecase) ListOrdersForRole(ctx context.Context, session *domain.Session) ([]*domain.Order, error) {
	var (
		orders []*domain.Order
		err    error
	)

	if session.Role == domain.RoleShipper {
		orders, err = uc.OrderAPI.GetMyShipments(ctx, session.BackendToken)
	} else {
		orders, err = uc.OrderAPI.GetOrders(ctx, session.BackendToken)
	}
	if err != nil {
		return nil, err
	}

	orders = ScopeOrders(orders, session.Role, session.EnterpriseID)
	uc.cacheOrders(orders)
	return orders, nil
}

// ScopeOrders applies the role visibility rule: an enterprise admin sees only
// orders containing at least one item of their enterprise; a system admin
// sees everything; shippers are scoped by the backend query and customers by
// their token, so both pass through unchanged.
func ScopeOrders(orders []*domain.Order, role domain.Role, enterpriseID int64) []*domain.Order {
	if role != domain.RoleEnterpriseAdmin {
		return orders
	}

	scoped := make([]*domain.Order, 0, len(orders))
	for _, order := range orders {
		if order.HasEnterpriseItem(enterpriseID) {
			scoped = append(scoped, order)
		}
	}
	return scoped
}

func (uc *DefaultOrderUsecase) GetOrderPayments(ctx context.Context, session *domain.Session, orderID int64) ([]*domain.Payment, error) {
	return uc.PaymentAPI.GetOrderPayments(ctx, session.BackendToken, orderID)
}

// resolveOrder finds the order's current state, refreshing the role-scoped
// list on a cache miss.
func (uc *DefaultOrderUsecase) resolveOrder(ctx context.Context, session *domain.Session, orderID int64) (*domain.Order, error) {
	if order, ok := uc.cachedOrder(orderID); ok {
		return order, nil
	}

	if _, err := uc.ListOrdersForRole(ctx, session); err != nil {
		return nil, err
	}

	if order, ok := uc.cachedOrder(orderID); ok {
		return order, nil
	}
	return nil, domain.ErrNotFound
}
