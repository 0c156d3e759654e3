package domain

import (
	"context"
	"time"
)

// Audit records are gateway telemetry: who did what to which order, and how
// settlement batches ended up. Order data itself stays on the backend.

type TransitionRecord struct {
	ID        string
	OrderID   int64
	OldStatus OrderStatus
	NewStatus OrderStatus
	ActorID   int64
	ActorRole Role
	Rejected  bool
	Reason    string
	CreatedAt time.Time
}

type SettlementRecord struct {
	ID        string
	OrderID   int64
	PaymentID int64
	ActorID   int64
	Success   bool
	Error     string
	CreatedAt time.Time
}

type SessionExpiryRecord struct {
	ID           string
	SessionID    string
	UserID       int64
	LastActivity time.Time
	ExpiredAt    time.Time
}

type AuditRepository interface {
	RecordTransition(ctx context.Context, record *TransitionRecord) error
	RecordSettlement(ctx context.Context, records []*SettlementRecord) error
	RecordSessionExpiry(ctx context.Context, record *SessionExpiryRecord) error
}
