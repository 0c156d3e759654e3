package domain

import (
	"context"
	"time"
)

type SessionStore interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
	// Touch persists the last-activity stamp. It is the one piece of state
	// that survives a gateway restart, so a guard can resume counting
	// instead of resetting the clock.
	Touch(ctx context.Context, sessionID string, at time.Time) error
	LastActivity(ctx context.Context, sessionID string) (time.Time, error)
	ListActive(ctx context.Context) ([]string, error)
}

type OrderEvent struct {
	OrderID   int64       `json:"order_id"`
	OldStatus OrderStatus `json:"old_status"`
	NewStatus OrderStatus `json:"new_status"`
	ActorID   int64       `json:"actor_id"`
	ActorRole Role        `json:"actor_role"`
	Amount    float64     `json:"amount"`
	At        time.Time   `json:"at"`
}

type EventPublisher interface {
	PublishOrderEvent(event OrderEvent) error
}
