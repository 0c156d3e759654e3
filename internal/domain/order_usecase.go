package domain

import "context"

type OrderUsecase interface {
	ListOrdersForRole(ctx context.Context, session *Session) ([]*Order, error)
	AdvanceStatus(ctx context.Context, session *Session, orderID int64, target OrderStatus) (*Order, error)
	SettlePayments(ctx context.Context, session *Session, orderID int64) ([]PaymentSettlement, error)
	GetOrderPayments(ctx context.Context, session *Session, orderID int64) ([]*Payment, error)
}
