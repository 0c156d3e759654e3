package domain

import "context"

type SessionUsecase interface {
	// Login returns the signed gateway token alongside the opened session.
	Login(ctx context.Context, email, password string) (string, *Session, error)
	Logout(ctx context.Context, sessionID string) error
	// Resolve validates a gateway token and counts the call as user activity.
	Resolve(ctx context.Context, token string) (*Session, error)
	// Recheck re-evaluates idle expiry without counting as activity. A tab
	// regaining focus calls this: it can kill an overdue session but never
	// extends one.
	Recheck(ctx context.Context, token string) error
}

type NotificationUsecase interface {
	List(ctx context.Context, session *Session, unreadOnly bool) ([]*Notification, error)
	MarkRead(ctx context.Context, session *Session, notificationID int64) error
	MarkAllRead(ctx context.Context, session *Session) error
	Delete(ctx context.Context, session *Session, notificationID int64) error
}
