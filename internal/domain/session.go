package domain

import "time"

// Session is gateway-owned state for one logged-in user. The backend token
// travels with the session; the idle guard decides when the session dies.
type Session struct {
	ID           string
	UserID       int64
	Role         Role
	EnterpriseID int64
	ShipperID    int64
	BackendToken string
	CreatedAt    time.Time
	LastActivity time.Time
}
