package session

import (
	"context"
	"sync"
	"time"

	"github.com/ocopmarket/order-gateway/internal/domain"
	"go.uber.org/zap"
)

// Guard watches one session for inactivity. Two states: active and expired.
// Expired is terminal; a fresh login gets a fresh guard. The guard keeps one
// armed timer at a time: activity re-arms it (debounce), it never
// accumulates callbacks, and the expire hook fires exactly once no matter
// how timer firings and rechecks interleave.
type Guard struct {
	sessionID string
	threshold time.Duration
	throttle  time.Duration
	clock     Clock
	store     domain.SessionStore
	logger    *zap.Logger

	// onExpire is invoked exactly once, outside the guard's lock.
	onExpire func(sessionID string, lastActivity time.Time)

	mu           sync.Mutex
	timer        Timer
	lastActivity time.Time
	lastPersist  time.Time
	expired      bool
	disarmed     bool
}

func newGuard(
	sessionID string,
	threshold, throttle time.Duration,
	clock Clock,
	store domain.SessionStore,
	logger *zap.Logger,
	onExpire func(sessionID string, lastActivity time.Time)) *Guard {

	return &Guard{
		sessionID: sessionID,
		threshold: threshold,
		throttle:  throttle,
		clock:     clock,
		store:     store,
		logger:    logger,
		onExpire:  onExpire,
	}
}

// Resume attaches the guard to a session that may have lived before this
// guard existed (gateway restart, first request after an in-memory gap).
// The persisted last-activity stamp decides: already past the threshold
// means immediate expiry, otherwise counting resumes from the stamp rather
// than restarting the clock.
func (g *Guard) Resume(ctx context.Context) error {
	now := g.clock.Now()

	stamp, err := g.store.LastActivity(ctx, g.sessionID)
	if err != nil || stamp.IsZero() {
		stamp = now
		if err := g.store.Touch(ctx, g.sessionID, now); err != nil {
			g.logger.Warn("failed to persist activity stamp", zap.String("session_id", g.sessionID), zap.Error(err))
		}
	}

	g.mu.Lock()
	if g.expired || g.disarmed {
		g.mu.Unlock()
		return domain.ErrSessionExpired
	}
	// Never rewind: activity recorded while the stamp was being read wins.
	if g.lastActivity.After(stamp) {
		stamp = g.lastActivity
	}
	g.lastActivity = stamp
	g.lastPersist = stamp

	if now.Sub(stamp) >= g.threshold {
		g.expireLocked()
		return domain.ErrSessionExpired
	}

	g.armLocked(g.threshold - now.Sub(stamp))
	g.mu.Unlock()
	return nil
}

// RecordActivity resets the countdown. The in-memory stamp moves on every
// call; the persisted stamp and the timer are touched at most once per
// throttle window so a burst of requests does not re-arm on every one.
func (g *Guard) RecordActivity(ctx context.Context) error {
	now := g.clock.Now()

	g.mu.Lock()
	if g.expired {
		g.mu.Unlock()
		return domain.ErrSessionExpired
	}
	if g.disarmed {
		g.mu.Unlock()
		return nil
	}

	g.lastActivity = now
	if now.Sub(g.lastPersist) < g.throttle {
		g.mu.Unlock()
		return nil
	}
	g.lastPersist = now
	g.armLocked(g.threshold)
	g.mu.Unlock()

	if err := g.store.Touch(ctx, g.sessionID, now); err != nil {
		g.logger.Warn("failed to persist activity stamp", zap.String("session_id", g.sessionID), zap.Error(err))
	}
	return nil
}

// Recheck re-evaluates elapsed time right now, the same decision Resume
// makes. Covers the case where timers were suspended or lost while the
// session sat idle.
func (g *Guard) Recheck() error {
	now := g.clock.Now()

	g.mu.Lock()
	if g.expired {
		g.mu.Unlock()
		return domain.ErrSessionExpired
	}
	if g.disarmed {
		g.mu.Unlock()
		return nil
	}

	elapsed := now.Sub(g.lastActivity)
	if elapsed >= g.threshold {
		g.expireLocked()
		return domain.ErrSessionExpired
	}
	g.armLocked(g.threshold - elapsed)
	g.mu.Unlock()
	return nil
}

// Disarm stops the countdown without expiring the session. Used on logout.
func (g *Guard) Disarm() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.disarmed = true
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
}

func (g *Guard) Expired() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.expired
}

// onTimeout runs when the armed timer fires. Activity may have moved the
// in-memory stamp without re-arming (throttle window), so elapsed time is
// re-checked: not idle long enough means re-arm for the remainder.
func (g *Guard) onTimeout() {
	now := g.clock.Now()

	g.mu.Lock()
	if g.expired || g.disarmed {
		g.mu.Unlock()
		return
	}

	elapsed := now.Sub(g.lastActivity)
	if elapsed < g.threshold {
		g.armLocked(g.threshold - elapsed)
		g.mu.Unlock()
		return
	}
	g.expireLocked()
}

func (g *Guard) armLocked(d time.Duration) {
	if g.timer != nil {
		g.timer.Stop()
	}
	g.timer = g.clock.AfterFunc(d, g.onTimeout)
}

// expireLocked flips the terminal flag and releases the lock before the
// expire hook runs, so the hook may safely call back into session machinery.
func (g *Guard) expireLocked() {
	g.expired = true
	if g.timer != nil {
		g.timer.Stop()
		g.timer = nil
	}
	lastActivity := g.lastActivity
	g.mu.Unlock()

	g.onExpire(g.sessionID, lastActivity)
}
