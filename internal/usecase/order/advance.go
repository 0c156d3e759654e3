package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ocopmarket/order-gateway/internal/domain"
	"go.uber.org/zap"
)

// AdvanceStatus moves an order one step through the lifecycle. The
// transition table and the caller's role are checked before anything goes
// over the wire: Pending -> Completed fails here, not at the backend. The
// cache is only updated from the backend's confirmed response; a rejection
// surfaces the backend's reason and is never retried.
func (uc *DefaultOrderUsecase) AdvanceStatus(ctx context.Context, session *domain.Session, orderID int64, target domain.OrderStatus) (*domain.Order, error) {
	order, err := uc.resolveOrder(ctx, session, orderID)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransition(order.Status, target) {
		uc.Metrics.TransitionsRejectedTotal.WithLabelValues("invalid_transition").Inc()
		uc.recordRejection(ctx, session, order, target, domain.ErrInvalidTransition.Error())
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, order.Status, target)
	}

	if !domain.RoleMayAdvance(session.Role, order.Status, target) {
		uc.Metrics.TransitionsRejectedTotal.WithLabelValues("role").Inc()
		uc.recordRejection(ctx, session, order, target, "role not allowed")
		return nil, fmt.Errorf("%w: role %s may not advance %s -> %s", domain.ErrForbidden, session.Role, order.Status, target)
	}

	updated, err := uc.callBackendTransition(ctx, session, orderID, target)
	if err != nil {
		return nil, err
	}

	oldStatus := order.Status
	uc.cacheOrders([]*domain.Order{updated})

	record := &domain.TransitionRecord{
		ID:        uuid.NewString(),
		OrderID:   orderID,
		OldStatus: oldStatus,
		NewStatus: updated.Status,
		ActorID:   session.UserID,
		ActorRole: session.Role,
		CreatedAt: time.Now(),
	}
	if err := uc.AuditRepo.RecordTransition(ctx, record); err != nil {
		uc.Logger.Error("failed to record transition", zap.Int64("order_id", orderID), zap.Error(err))
	}

	if uc.Publisher != nil {
		event := domain.OrderEvent{
			OrderID:   orderID,
			OldStatus: oldStatus,
			NewStatus: updated.Status,
			ActorID:   session.UserID,
			ActorRole: session.Role,
			Amount:    updated.TotalAmount,
			At:        time.Now(),
		}
		go func(event domain.OrderEvent) {
			if err := uc.Publisher.PublishOrderEvent(event); err != nil {
				uc.Logger.Error("failed to publish order event", zap.Int64("order_id", event.OrderID), zap.Error(err))
			}
		}(event)
	}

	uc.Metrics.OrdersAdvancedTotal.WithLabelValues(string(oldStatus), string(updated.Status), string(session.Role)).Inc()
	uc.Logger.Info("order advanced",
		zap.Int64("order_id", orderID),
		zap.String("from", string(oldStatus)),
		zap.String("to", string(updated.Status)),
		zap.String("role", string(session.Role)))

	return updated, nil
}

// callBackendTransition picks the backend operation for the target status.
// Shipping and delivery have dedicated endpoints; delivery also settles COD
// payments server-side.
func (uc *DefaultOrderUsecase) callBackendTransition(ctx context.Context, session *domain.Session, orderID int64, target domain.OrderStatus) (*domain.Order, error) {
	switch target {
	case domain.StatusShipped:
		return uc.OrderAPI.ShipOrder(ctx, session.BackendToken, orderID)
	case domain.StatusCompleted:
		return uc.OrderAPI.DeliverOrder(ctx, session.BackendToken, orderID)
	default:
		return uc.OrderAPI.UpdateOrderStatus(ctx, session.BackendToken, orderID, target)
	}
}

func (uc *DefaultOrderUsecase) recordRejection(ctx context.Context, session *domain.Session, order *domain.Order, target domain.OrderStatus, reason string) {
	record := &domain.TransitionRecord{
		ID:        uuid.NewString(),
		OrderID:   order.ID,
		OldStatus: order.Status,
		NewStatus: target,
		ActorID:   session.UserID,
		ActorRole: session.Role,
		Rejected:  true,
		Reason:    reason,
		CreatedAt: time.Now(),
	}
	if err := uc.AuditRepo.RecordTransition(ctx, record); err != nil {
		uc.Logger.Error("failed to record rejected transition", zap.Int64("order_id", order.ID), zap.Error(err))
	}
}
