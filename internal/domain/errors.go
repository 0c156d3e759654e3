package domain

import "errors"

var (
	ErrAuthExpired       = errors.New("authentication expired")
	ErrForbidden         = errors.New("forbidden")
	ErrNotFound          = errors.New("data not found")
	ErrValidation        = errors.New("validation failed")
	ErrServer            = errors.New("server error")
	ErrNetwork           = errors.New("network error")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrUnknownStatus     = errors.New("unknown order status")
	ErrUnknownRole       = errors.New("unknown role")
	ErrSessionExpired    = errors.New("session expired")
	ErrLoginFailed       = errors.New("email or password incorrect")
	ErrNothingToSettle   = errors.New("no unpaid payments to settle")
)
