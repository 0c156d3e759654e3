package dto

import (
	"time"

	"github.com/ocopmarket/order-gateway/internal/domain"
)

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type User struct {
	ID           int64  `json:"id"`
	Role         string `json:"role"`
	EnterpriseID int64  `json:"enterpriseId,omitempty"`
	ShipperID    int64  `json:"shipperId,omitempty"`
}

type Order struct {
	ID              int64       `json:"id"`
	Status          string      `json:"status"`
	TotalAmount     float64     `json:"totalAmount"`
	OrderDate       time.Time   `json:"orderDate"`
	ShippingAddress string      `json:"shippingAddress"`
	Items           []OrderItem `json:"items"`
}

type OrderItem struct {
	ID              int64   `json:"id"`
	ProductID       int64   `json:"productId"`
	ProductName     string  `json:"productName"`
	ProductImageURL string  `json:"productImageUrl,omitempty"`
	EnterpriseID    int64   `json:"enterpriseId"`
	EnterpriseName  string  `json:"enterpriseName"`
	Price           float64 `json:"price"`
	Quantity        int32   `json:"quantity"`
}

type Payment struct {
	ID          int64      `json:"id"`
	OrderID     int64      `json:"orderId"`
	Status      string     `json:"status"`
	Method      string     `json:"method,omitempty"`
	Reference   string     `json:"reference,omitempty"`
	BankName    string     `json:"bankName,omitempty"`
	BankAccount string     `json:"bankAccount,omitempty"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
}

type SettlementResult struct {
	PaymentID int64  `json:"paymentId"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

type Notification struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
	Link      string    `json:"link,omitempty"`
	OrderID   int64     `json:"orderId,omitempty"`
	ProductID int64     `json:"productId,omitempty"`
}

func FromDomainOrder(o *domain.Order) Order {
	items := make([]OrderItem, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItem{
			ID:              it.ID,
			ProductID:       it.ProductID,
			ProductName:     it.ProductName,
			ProductImageURL: it.ProductImageURL,
			EnterpriseID:    it.EnterpriseID,
			EnterpriseName:  it.EnterpriseName,
			Price:           it.Price,
			Quantity:        it.Quantity,
		}
	}
	return Order{
		ID:              o.ID,
		Status:          string(o.Status),
		TotalAmount:     o.TotalAmount,
		OrderDate:       o.OrderDate,
		ShippingAddress: o.ShippingAddress,
		Items:           items,
	}
}

func FromDomainOrders(orders []*domain.Order) []Order {
	out := make([]Order, len(orders))
	for i, o := range orders {
		out[i] = FromDomainOrder(o)
	}
	return out
}

func FromDomainPayments(payments []*domain.Payment) []Payment {
	out := make([]Payment, len(payments))
	for i, p := range payments {
		out[i] = Payment{
			ID:          p.ID,
			OrderID:     p.OrderID,
			Status:      p.Status,
			Method:      p.Method,
			Reference:   p.Reference,
			BankName:    p.BankName,
			BankAccount: p.BankAccount,
			PaidAt:      p.PaidAt,
		}
	}
	return out
}

func FromDomainSettlements(results []domain.PaymentSettlement) []SettlementResult {
	out := make([]SettlementResult, len(results))
	for i, r := range results {
		out[i] = SettlementResult{PaymentID: r.PaymentID, Success: r.Err == nil}
		if r.Err != nil {
			out[i].Error = r.Err.Error()
		}
	}
	return out
}

func FromDomainNotifications(notifications []*domain.Notification) []Notification {
	out := make([]Notification, len(notifications))
	for i, n := range notifications {
		out[i] = Notification{
			ID:        n.ID,
			Type:      n.Type,
			Title:     n.Title,
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
			Link:      n.Link,
			OrderID:   n.OrderID,
			ProductID: n.ProductID,
		}
	}
	return out
}
