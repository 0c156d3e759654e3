package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ocopmarket/order-gateway/internal/config"
	"github.com/ocopmarket/order-gateway/internal/domain"
	"github.com/ocopmarket/order-gateway/internal/infrastructure/metrics"
	"go.uber.org/zap"
)

// Manager owns one Guard per live session. Requests touch their session's
// guard through Touch; a guard that is missing (gateway restart) is rebuilt
// from the persisted activity stamp, so a restart never resets anyone's
// idle clock.
type Manager struct {
	Store   domain.SessionStore
	Audit   domain.AuditRepository
	Metrics *metrics.GatewayMetrics
	Logger  *zap.Logger

	clock     Clock
	threshold time.Duration
	throttle  time.Duration

	mu     sync.Mutex
	guards map[string]*Guard
}

func NewManager(
	store domain.SessionStore,
	audit domain.AuditRepository,
	clock Clock,
	cfg config.Session,
	gatewayMetrics *metrics.GatewayMetrics,
	logger *zap.Logger) *Manager {

	return &Manager{
		Store:     store,
		Audit:     audit,
		Metrics:   gatewayMetrics,
		Logger:    logger,
		clock:     clock,
		threshold: cfg.IdleTimeout(),
		throttle:  cfg.ActivityThrottle(),
		guards:    make(map[string]*Guard),
	}
}

// Attach builds a guard for the session and resumes it from the persisted
// stamp. Returns ErrSessionExpired when the session is already past the
// threshold at attach time.
func (m *Manager) Attach(ctx context.Context, sess *domain.Session) error {
	_, err := m.resume(ctx, sess)
	return err
}

// resume returns the session's live guard, creating one when none exists.
// Load-or-store under the lock: concurrent first-contact requests must share
// one guard, because an orphaned guard keeps an armed timer that never sees
// activity and would expire a working session at threshold.
func (m *Manager) resume(ctx context.Context, sess *domain.Session) (*Guard, error) {
	m.mu.Lock()
	guard, ok := m.guards[sess.ID]
	if !ok {
		guard = newGuard(sess.ID, m.threshold, m.throttle, m.clock, m.Store, m.Logger, m.expire(sess))
		m.guards[sess.ID] = guard
	}
	m.mu.Unlock()

	if ok {
		return guard, nil
	}
	if err := guard.Resume(ctx); err != nil {
		return nil, err
	}
	return guard, nil
}

// Touch records activity for the session, attaching a guard first when none
// is live. Every authenticated request goes through here.
func (m *Manager) Touch(ctx context.Context, sessionID string) error {
	guard, err := m.liveGuard(ctx, sessionID)
	if err != nil {
		return err
	}
	return guard.RecordActivity(ctx)
}

// Recheck re-evaluates a session's idle time without counting as activity.
// A missing guard (gateway restart, refocus before any request) is rebuilt
// from the persisted stamp exactly like a resume.
func (m *Manager) Recheck(ctx context.Context, sessionID string) error {
	guard, err := m.liveGuard(ctx, sessionID)
	if err != nil {
		return err
	}
	return guard.Recheck()
}

func (m *Manager) liveGuard(ctx context.Context, sessionID string) (*Guard, error) {
	m.mu.Lock()
	guard, ok := m.guards[sessionID]
	m.mu.Unlock()
	if ok {
		return guard, nil
	}

	sess, err := m.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, domain.ErrSessionExpired
	}
	return m.resume(ctx, sess)
}

// Close ends a session deliberately (logout): disarm, never expire.
func (m *Manager) Close(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	guard, ok := m.guards[sessionID]
	delete(m.guards, sessionID)
	m.mu.Unlock()

	if ok {
		guard.Disarm()
	}
	return m.Store.Delete(ctx, sessionID)
}

// Sweep expires sessions whose persisted stamp went stale while no guard
// was live for them, e.g. sessions abandoned across a gateway restart.
func (m *Manager) Sweep(ctx context.Context) error {
	sessionIDs, err := m.Store.ListActive(ctx)
	if err != nil {
		return err
	}

	now := m.clock.Now()
	for _, sessionID := range sessionIDs {
		m.mu.Lock()
		_, live := m.guards[sessionID]
		m.mu.Unlock()
		if live {
			continue
		}

		stamp, err := m.Store.LastActivity(ctx, sessionID)
		if err != nil || stamp.IsZero() {
			continue
		}
		if now.Sub(stamp) < m.threshold {
			continue
		}

		sess, err := m.Store.Get(ctx, sessionID)
		if err != nil {
			continue
		}
		m.expire(sess)(sessionID, stamp)
	}
	return nil
}

// expire is the exactly-once hook a guard fires with. The session is
// removed from the store so the next request on it gets the auth-expired
// treatment and a login redirect.
func (m *Manager) expire(sess *domain.Session) func(sessionID string, lastActivity time.Time) {
	return func(sessionID string, lastActivity time.Time) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := m.Store.Delete(ctx, sessionID); err != nil {
			m.Logger.Error("failed to delete expired session", zap.String("session_id", sessionID), zap.Error(err))
		}

		m.mu.Lock()
		delete(m.guards, sessionID)
		m.mu.Unlock()

		record := &domain.SessionExpiryRecord{
			ID:           uuid.NewString(),
			SessionID:    sessionID,
			UserID:       sess.UserID,
			LastActivity: lastActivity,
			ExpiredAt:    m.clock.Now(),
		}
		if err := m.Audit.RecordSessionExpiry(ctx, record); err != nil {
			m.Logger.Error("failed to record session expiry", zap.String("session_id", sessionID), zap.Error(err))
		}

		m.Metrics.SessionsExpiredTotal.Inc()
		m.Logger.Info("session expired after inactivity",
			zap.String("session_id", sessionID),
			zap.Int64("user_id", sess.UserID),
			zap.Time("last_activity", lastActivity))
	}
}
