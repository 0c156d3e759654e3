package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ocopmarket/order-gateway/internal/domain"
)

type orderWire struct {
	ID              int64           `json:"id"`
	Status          string          `json:"status"`
	TotalAmount     float64         `json:"totalAmount"`
	OrderDate       time.Time       `json:"orderDate"`
	ShippingAddress string          `json:"shippingAddress"`
	OrderItems      []orderItemWire `json:"orderItems"`
}

type orderItemWire struct {
	ID              int64   `json:"id"`
	ProductID       int64   `json:"productId"`
	ProductName     string  `json:"productName"`
	ProductImageURL string  `json:"productImageUrl"`
	EnterpriseID    int64   `json:"enterpriseId"`
	EnterpriseName  string  `json:"enterpriseName"`
	Price           float64 `json:"price"`
	Quantity        int32   `json:"quantity"`
}

func toDomainOrder(w *orderWire) (*domain.Order, error) {
	status, err := domain.ParseOrderStatus(w.Status)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", w.ID, err)
	}

	items := make([]domain.OrderItem, len(w.OrderItems))
	for i, item := range w.OrderItems {
		items[i] = domain.OrderItem{
			ID:              item.ID,
			ProductID:       item.ProductID,
			ProductName:     item.ProductName,
			ProductImageURL: item.ProductImageURL,
			EnterpriseID:    item.EnterpriseID,
			EnterpriseName:  item.EnterpriseName,
			Price:           item.Price,
			Quantity:        item.Quantity,
		}
	}

	return &domain.Order{
		ID:              w.ID,
		Status:          status,
		TotalAmount:     w.TotalAmount,
		OrderDate:       w.OrderDate,
		ShippingAddress: w.ShippingAddress,
		Items:           items,
	}, nil
}

func toDomainOrders(wires []orderWire) ([]*domain.Order, error) {
	orders := make([]*domain.Order, len(wires))
	for i := range wires {
		order, err := toDomainOrder(&wires[i])
		if err != nil {
			return nil, err
		}
		orders[i] = order
	}
	return orders, nil
}

func (c *BackendClient) GetOrders(ctx context.Context, token string) ([]*domain.Order, error) {
	var wires []orderWire
	if err := c.do(ctx, http.MethodGet, "/orders", token, nil, &wires); err != nil {
		return nil, err
	}
	return toDomainOrders(wires)
}

func (c *BackendClient) GetMyShipments(ctx context.Context, token string) ([]*domain.Order, error) {
	var wires []orderWire
	if err := c.do(ctx, http.MethodGet, "/shippers/me/orders", token, nil, &wires); err != nil {
		return nil, err
	}
	return toDomainOrders(wires)
}

func (c *BackendClient) UpdateOrderStatus(ctx context.Context, token string, orderID int64, status domain.OrderStatus) (*domain.Order, error) {
	var wire orderWire
	body := map[string]string{"status": string(status)}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d/status", orderID), token, body, &wire); err != nil {
		return nil, err
	}
	return toDomainOrder(&wire)
}

func (c *BackendClient) ShipOrder(ctx context.Context, token string, orderID int64) (*domain.Order, error) {
	var wire orderWire
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/ship", orderID), token, nil, &wire); err != nil {
		return nil, err
	}
	return toDomainOrder(&wire)
}

// DeliverOrder confirms delivery. The backend also settles COD payments for
// the order as part of this call.
func (c *BackendClient) DeliverOrder(ctx context.Context, token string, orderID int64) (*domain.Order, error) {
	var wire orderWire
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/orders/%d/deliver", orderID), token, nil, &wire); err != nil {
		return nil, err
	}
	return toDomainOrder(&wire)
}
