package session

import "time"

// Clock is the guard's only source of time. Timers in tests run against a
// simulated clock; nothing in this package calls time.Now directly.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type Timer interface {
	Stop() bool
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

func NewClock() Clock { return realClock{} }
