// Package session scopes the assignment-selection state: which incident
// a console session is currently binding an ambulance to. Exactly one
// selection may be live per session; closing the popup or finishing an
// assignment clears it.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"swiftaid/pkg/e"

	goredis "github.com/redis/go-redis/v9"
)

type SelectionStore interface {
	Put(ctx context.Context, sessionID, incidentID string) error
	Get(ctx context.Context, sessionID string) (string, error)
	Clear(ctx context.Context, sessionID string) error
}

const selectionPrefix = "assign:selection:"

// RedisStore keeps selections in Redis so a console replica restart
// does not strand an open assignment popup.
type RedisStore struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewRedisStore(r *Redis, ttl time.Duration) *RedisStore {
	return &RedisStore{client: r.Client, ttl: ttl}
}

func (s *RedisStore) Put(ctx context.Context, sessionID, incidentID string) error {
	return s.client.Set(ctx, selectionPrefix+sessionID, incidentID, s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (string, error) {
	v, err := s.client.Get(ctx, selectionPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", e.ErrNoSelection
		}
		return "", err
	}
	return v, nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, selectionPrefix+sessionID).Err()
}

// MemoryStore is the single-process fallback used when Redis is not
// configured, and in tests.
type MemoryStore struct {
	mu  sync.Mutex
	ttl time.Duration
	m   map[string]memEntry
}

type memEntry struct {
	incidentID string
	expiresAt  time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, m: make(map[string]memEntry)}
}

func (s *MemoryStore) Put(_ context.Context, sessionID, incidentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[sessionID] = memEntry{incidentID: incidentID, expiresAt: time.Now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.m[sessionID]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.m, sessionID)
		return "", e.ErrNoSelection
	}
	return entry.incidentID, nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, sessionID)
	return nil
}
