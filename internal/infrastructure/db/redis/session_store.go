package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jobzen/dashboard/internal/api/metrics"
	"github.com/jobzen/dashboard/internal/core/domain"
	"github.com/jobzen/dashboard/internal/core/ports"
)

// DefaultSessionTTL matches the max-age of the auth-storage cookie.
const DefaultSessionTTL = 7 * 24 * time.Hour

// SessionStore keeps auth sessions in Redis, sealed with a Sealer.
// Key format: session:<uuid>
type SessionStore struct {
	client *redis.Client
	sealer *Sealer
	ttl    time.Duration
	now    func() time.Time
}

var _ ports.SessionStore = (*SessionStore)(nil)

// NewSessionStore creates a SessionStore. ttl falls back to DefaultSessionTTL.
func NewSessionStore(client *redis.Client, sealer *Sealer, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionStore{client: client, sealer: sealer, ttl: ttl, now: time.Now}
}

// Create assigns an id and lifetime when missing and stores the session.
// An ExpiresAt already set by the caller is honoured when it is sooner than
// the store's TTL.
func (s *SessionStore) Create(ctx context.Context, sess *domain.Session) error {
	now := s.now()
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = now
	}
	limit := now.Add(s.ttl)
	if sess.ExpiresAt.IsZero() || sess.ExpiresAt.After(limit) {
		sess.ExpiresAt = limit
	}

	ttl := sess.ExpiresAt.Sub(now)
	if ttl <= 0 {
		return fmt.Errorf("create session: %w", domain.ErrSessionExpired)
	}

	val, err := s.encode(sess)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(sess.ID), val, ttl).Err(); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	metrics.SessionEventsTotal.WithLabelValues("created").Inc()
	return nil
}

// Get loads a session. Unknown and lapsed ids return domain.ErrSessionNotFound.
func (s *SessionStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, domain.ErrSessionNotFound
	}
	raw, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	sess, err := s.decode(raw)
	if err != nil {
		// Sealed under a rotated key or corrupted; treat as signed out.
		_ = s.client.Del(ctx, s.key(id)).Err()
		return nil, fmt.Errorf("%w: %v", domain.ErrSessionNotFound, err)
	}
	if sess.Expired(s.now()) {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

// Save overwrites an existing session and keeps its remaining TTL.
func (s *SessionStore) Save(ctx context.Context, sess *domain.Session) error {
	val, err := s.encode(sess)
	if err != nil {
		return err
	}
	ok, err := s.client.SetXX(ctx, s.key(sess.ID), val, redis.KeepTTL).Result()
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	if !ok {
		return domain.ErrSessionNotFound
	}
	return nil
}

// Delete removes a session. Deleting an unknown id is not an error.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	metrics.SessionEventsTotal.WithLabelValues("deleted").Inc()
	return nil
}

func (s *SessionStore) encode(sess *domain.Session) ([]byte, error) {
	plain, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("marshal session: %w", err)
	}
	sealed, err := s.sealer.Seal(plain)
	if err != nil {
		return nil, fmt.Errorf("seal session: %w", err)
	}
	return sealed, nil
}

func (s *SessionStore) decode(raw []byte) (*domain.Session, error) {
	plain, err := s.sealer.Open(raw)
	if err != nil {
		return nil, err
	}
	var sess domain.Session
	if err := json.Unmarshal(plain, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	return &sess, nil
}

func (s *SessionStore) key(id string) string {
	return "session:" + id
}
