package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ocopmarket/order-gateway/internal/domain"
)

type paymentWire struct {
	ID          int64      `json:"id"`
	OrderID     int64      `json:"orderId"`
	Status      string     `json:"status"`
	Method      string     `json:"method"`
	Reference   string     `json:"reference"`
	BankName    string     `json:"bankName"`
	BankAccount string     `json:"bankAccount"`
	PaidAt      *time.Time `json:"paidAt"`
}

func toDomainPayment(w *paymentWire) *domain.Payment {
	return &domain.Payment{
		ID:          w.ID,
		OrderID:     w.OrderID,
		Status:      w.Status,
		Method:      w.Method,
		Reference:   w.Reference,
		BankName:    w.BankName,
		BankAccount: w.BankAccount,
		PaidAt:      w.PaidAt,
	}
}

func (c *BackendClient) GetOrderPayments(ctx context.Context, token string, orderID int64) ([]*domain.Payment, error) {
	var wires []paymentWire
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d/payments", orderID), token, nil, &wires); err != nil {
		return nil, err
	}

	payments := make([]*domain.Payment, len(wires))
	for i := range wires {
		payments[i] = toDomainPayment(&wires[i])
	}
	return payments, nil
}

func (c *BackendClient) UpdatePaymentStatus(ctx context.Context, token string, paymentID int64, status string) (*domain.Payment, error) {
	var wire paymentWire
	body := map[string]string{"status": status}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/payments/%d/status", paymentID), token, body, &wire); err != nil {
		return nil, err
	}
	return toDomainPayment(&wire), nil
}
