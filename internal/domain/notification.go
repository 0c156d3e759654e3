package domain

import "time"

type Notification struct {
	ID        int64
	Type      string
	Title     string
	Message   string
	Read      bool
	CreatedAt time.Time
	Link      string
	OrderID   int64
	ProductID int64
}
