package models

import "time"

type TransitionLogModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	OrderID   int64     `gorm:"not null;index:idx_transition_order"`
	OldStatus string    `gorm:"not null"`
	NewStatus string    `gorm:"not null"`
	ActorID   int64     `gorm:"not null;index:idx_transition_actor"`
	ActorRole string    `gorm:"not null"`
	Rejected  bool      `gorm:"not null"`
	Reason    string
	CreatedAt time.Time `gorm:"not null;index:idx_transition_created_at"`
}

type SettlementLogModel struct {
	ID        string    `gorm:"primaryKey;type:uuid"`
	OrderID   int64     `gorm:"not null;index:idx_settlement_order"`
	PaymentID int64     `gorm:"not null"`
	ActorID   int64     `gorm:"not null"`
	Success   bool      `gorm:"not null"`
	Error     string
	CreatedAt time.Time `gorm:"not null"`
}

type SessionExpiryLogModel struct {
	ID           string    `gorm:"primaryKey;type:uuid"`
	SessionID    string    `gorm:"not null;index:idx_expiry_session"`
	UserID       int64     `gorm:"not null"`
	LastActivity time.Time `gorm:"not null"`
	ExpiredAt    time.Time `gorm:"not null;index:idx_expiry_expired_at"`
}
