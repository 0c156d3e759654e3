package domain

import "context"

// Ports to the OCOP backend REST API. The backend is the source of truth for
// orders, payments and notifications; the gateway never persists them.

type OrderAPI interface {
	GetOrders(ctx context.Context, token string) ([]*Order, error)
	GetMyShipments(ctx context.Context, token string) ([]*Order, error)
	UpdateOrderStatus(ctx context.Context, token string, orderID int64, status OrderStatus) (*Order, error)
	ShipOrder(ctx context.Context, token string, orderID int64) (*Order, error)
	DeliverOrder(ctx context.Context, token string, orderID int64) (*Order, error)
}

type PaymentAPI interface {
	GetOrderPayments(ctx context.Context, token string, orderID int64) ([]*Payment, error)
	UpdatePaymentStatus(ctx context.Context, token string, paymentID int64, status string) (*Payment, error)
}

type NotificationAPI interface {
	GetNotifications(ctx context.Context, token string, unreadOnly bool) ([]*Notification, error)
	MarkNotificationRead(ctx context.Context, token string, notificationID int64) error
	MarkAllNotificationsRead(ctx context.Context, token string) error
	DeleteNotification(ctx context.Context, token string, notificationID int64) error
}

type LoginResult struct {
	Token        string
	UserID       int64
	Role         Role
	EnterpriseID int64
	ShipperID    int64
}

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}
