package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/jaevor/go-nanoid"
	"github.com/ocopmarket/order-gateway/internal/config"
	"github.com/ocopmarket/order-gateway/internal/domain"
	"github.com/ocopmarket/order-gateway/internal/infrastructure/metrics"
	"github.com/ocopmarket/order-gateway/internal/session"
	"go.uber.org/zap"
)

// DefaultSessionUsecase opens and resolves gateway sessions. The backend
// authenticates the credentials; the gateway wraps the backend token in its
// own session so the idle guard can end it.
type DefaultSessionUsecase struct {
	AuthAPI domain.AuthAPI
	Store   domain.SessionStore
	Guards  *session.Manager
	Metrics *metrics.GatewayMetrics
	Logger  *zap.Logger

	jwtSecret    []byte
	ttl          time.Duration
	newSessionID func() string
}

func NewDefaultSessionUsecase(
	authAPI domain.AuthAPI,
	store domain.SessionStore,
	guards *session.Manager,
	cfg config.Session,
	gatewayMetrics *metrics.GatewayMetrics,
	logger *zap.Logger) *DefaultSessionUsecase {

	newID, err := nanoid.Standard(21)
	if err != nil {
		log.Fatalf("failed to init session id generator: %v", err)
	}

	return &DefaultSessionUsecase{
		AuthAPI:      authAPI,
		Store:        store,
		Guards:       guards,
		Metrics:      gatewayMetrics,
		Logger:       logger,
		jwtSecret:    []byte(cfg.JWTSecret),
		ttl:          cfg.TTL(),
		newSessionID: newID,
	}
}

// Login authenticates against the backend and opens a session. Whatever the
// backend's actual reason for rejecting the credentials, callers get the
// same generalized error so account existence never leaks.
func (uc *DefaultSessionUsecase) Login(ctx context.Context, email, password string) (string, *domain.Session, error) {
	result, err := uc.AuthAPI.Login(ctx, email, password)
	if err != nil {
		uc.Logger.Info("login rejected", zap.Error(err))
		return "", nil, domain.ErrLoginFailed
	}

	now := time.Now()
	sess := &domain.Session{
		ID:           uc.newSessionID(),
		UserID:       result.UserID,
		Role:         result.Role,
		EnterpriseID: result.EnterpriseID,
		ShipperID:    result.ShipperID,
		BackendToken: result.Token,
		CreatedAt:    now,
		LastActivity: now,
	}

	if err := uc.Store.Save(ctx, sess); err != nil {
		return "", nil, fmt.Errorf("save session: %w", err)
	}
	if err := uc.Guards.Attach(ctx, sess); err != nil {
		return "", nil, err
	}

	token, err := uc.issueToken(sess, now)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	uc.Metrics.SessionsOpenedTotal.Inc()
	uc.Logger.Info("session opened",
		zap.String("session_id", sess.ID),
		zap.Int64("user_id", sess.UserID),
		zap.String("role", string(sess.Role)))

	return token, sess, nil
}

func (uc *DefaultSessionUsecase) Logout(ctx context.Context, sessionID string) error {
	return uc.Guards.Close(ctx, sessionID)
}

// Resolve turns a bearer token into a live session, counting the request as
// activity. A dead or idle-expired session comes back as ErrSessionExpired,
// which the delivery layer turns into a login redirect.
func (uc *DefaultSessionUsecase) Resolve(ctx context.Context, tokenString string) (*domain.Session, error) {
	sessionID, err := uc.parseToken(tokenString)
	if err != nil {
		return nil, domain.ErrAuthExpired
	}

	sess, err := uc.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, domain.ErrSessionExpired
	}

	if err := uc.Guards.Touch(ctx, sessionID); err != nil {
		return nil, err
	}

	return sess, nil
}

// Recheck re-evaluates the idle clock without registering activity. Used
// when a client regains visibility: an overdue session expires on the spot,
// a live one keeps its existing deadline.
func (uc *DefaultSessionUsecase) Recheck(ctx context.Context, tokenString string) error {
	sessionID, err := uc.parseToken(tokenString)
	if err != nil {
		return domain.ErrAuthExpired
	}
	return uc.Guards.Recheck(ctx, sessionID)
}

func (uc *DefaultSessionUsecase) issueToken(sess *domain.Session, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sid":  sess.ID,
		"sub":  fmt.Sprintf("%d", sess.UserID),
		"role": string(sess.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(uc.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(uc.jwtSecret)
}

func (uc *DefaultSessionUsecase) parseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return uc.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrAuthExpired
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrAuthExpired
	}
	sessionID, ok := claims["sid"].(string)
	if !ok || sessionID == "" {
		return "", domain.ErrAuthExpired
	}
	return sessionID, nil
}
