package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/ocopmarket/order-gateway/internal/config"
	"github.com/ocopmarket/order-gateway/internal/domain"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

func MustInitClient(cfg config.Redis) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	return client
}

// SessionStore keeps sessions and their last-activity stamps in Redis. The
// activity stamp is written on every (throttled) touch and is what lets an
// idle clock survive a gateway restart. Stamps race between concurrent
// writers last-writer-wins; one user driving one session is the expected
// case.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

func sessionKey(sessionID string) string  { return sessionKeyPrefix + sessionID }
func activityKey(sessionID string) string { return sessionKeyPrefix + sessionID + ":activity" }

func (s *SessionStore) Save(ctx context.Context, sess *domain.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionKey(sess.ID), raw, s.ttl)
	pipe.Set(ctx, activityKey(sess.ID), strconv.FormatInt(sess.LastActivity.UnixMilli(), 10), s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *SessionStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrSessionExpired
	}
	if err != nil {
		return nil, err
	}

	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID), activityKey(sessionID)).Err()
}

func (s *SessionStore) Touch(ctx context.Context, sessionID string, at time.Time) error {
	return s.client.Set(ctx, activityKey(sessionID), strconv.FormatInt(at.UnixMilli(), 10), s.ttl).Err()
}

func (s *SessionStore) LastActivity(ctx context.Context, sessionID string) (time.Time, error) {
	raw, err := s.client.Get(ctx, activityKey(sessionID)).Result()
	if err == redis.Nil {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}

	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse activity stamp: %w", err)
	}
	return time.UnixMilli(millis), nil
}

func (s *SessionStore) ListActive(ctx context.Context) ([]string, error) {
	var (
		cursor     uint64
		sessionIDs []string
	)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, sessionKeyPrefix+"*", 100).Result()
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			id := strings.TrimPrefix(key, sessionKeyPrefix)
			if strings.HasSuffix(id, ":activity") {
				continue
			}
			sessionIDs = append(sessionIDs, id)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return sessionIDs, nil
}
