package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ocopmarket/order-gateway/internal/domain"
	"go.uber.org/zap"
)

// SettlePayments marks every non-Paid payment of a completed order as Paid,
// one backend call per payment. The updates are independent and there is no
// transaction behind them: a partial failure leaves the succeeded ones Paid
// and the result list tells the caller which ones did not make it. Nothing
// is retried here.
func (uc *DefaultOrderUsecase) SettlePayments(ctx context.Context, session *domain.Session, orderID int64) ([]domain.PaymentSettlement, error) {
	if session.Role != domain.RoleShipper {
		return nil, fmt.Errorf("%w: only shippers transfer payments to sellers", domain.ErrForbidden)
	}

	order, err := uc.resolveOrder(ctx, session, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.StatusCompleted {
		return nil, fmt.Errorf("%w: order %d is %s, settlement requires %s",
			domain.ErrValidation, orderID, order.Status, domain.StatusCompleted)
	}

	payments, err := uc.PaymentAPI.GetOrderPayments(ctx, session.BackendToken, orderID)
	if err != nil {
		return nil, err
	}

	var pending []*domain.Payment
	for _, p := range payments {
		if !p.IsPaid() {
			pending = append(pending, p)
		}
	}
	if len(pending) == 0 {
		return nil, domain.ErrNothingToSettle
	}

	results := make([]domain.PaymentSettlement, len(pending))
	var wg sync.WaitGroup
	for i, payment := range pending {
		wg.Add(1)
		go func(i int, payment *domain.Payment) {
			defer wg.Done()
			_, err := uc.PaymentAPI.UpdatePaymentStatus(ctx, session.BackendToken, payment.ID, domain.PaymentPaid)
			results[i] = domain.PaymentSettlement{PaymentID: payment.ID, Err: err}
		}(i, payment)
	}
	wg.Wait()

	records := make([]*domain.SettlementRecord, len(results))
	failed := 0
	for i, res := range results {
		record := &domain.SettlementRecord{
			ID:        uuid.NewString(),
			OrderID:   orderID,
			PaymentID: res.PaymentID,
			ActorID:   session.UserID,
			Success:   res.Err == nil,
			CreatedAt: time.Now(),
		}
		if res.Err != nil {
			record.Error = res.Err.Error()
			failed++
			uc.Metrics.PaymentsSettledTotal.WithLabelValues("failed").Inc()
		} else {
			uc.Metrics.PaymentsSettledTotal.WithLabelValues("ok").Inc()
		}
		records[i] = record
	}
	if err := uc.AuditRepo.RecordSettlement(ctx, records); err != nil {
		uc.Logger.Error("failed to record settlement batch", zap.Int64("order_id", orderID), zap.Error(err))
	}

	if failed > 0 {
		uc.Metrics.SettlementFailuresTotal.WithLabelValues(string(order.Status)).Inc()
		uc.Logger.Warn("settlement ended with partial failure",
			zap.Int64("order_id", orderID),
			zap.Int("failed", failed),
			zap.Int("total", len(results)))
	}

	return results, nil
}
