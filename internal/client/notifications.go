package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ocopmarket/order-gateway/internal/domain"
)

type notificationWire struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
	Link      string    `json:"link"`
	OrderID   int64     `json:"orderId"`
	ProductID int64     `json:"productId"`
}

func (c *BackendClient) GetNotifications(ctx context.Context, token string, unreadOnly bool) ([]*domain.Notification, error) {
	var wires []notificationWire
	path := fmt.Sprintf("/notifications?unreadOnly=%t", unreadOnly)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &wires); err != nil {
		return nil, err
	}

	notifications := make([]*domain.Notification, len(wires))
	for i, w := range wires {
		notifications[i] = &domain.Notification{
			ID:        w.ID,
			Type:      w.Type,
			Title:     w.Title,
			Message:   w.Message,
			Read:      w.Read,
			CreatedAt: w.CreatedAt,
			Link:      w.Link,
			OrderID:   w.OrderID,
			ProductID: w.ProductID,
		}
	}
	return notifications, nil
}

func (c *BackendClient) MarkNotificationRead(ctx context.Context, token string, notificationID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/notifications/%d/read", notificationID), token, nil, nil)
}

func (c *BackendClient) MarkAllNotificationsRead(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/notifications/read-all", token, nil, nil)
}

func (c *BackendClient) DeleteNotification(ctx context.Context, token string, notificationID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/notifications/%d", notificationID), token, nil, nil)
}
