package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"quotely/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "quotely:session:"

type expiringValue[T any] struct {
	value     T
	expiresAt time.Time
}

func (v expiringValue[T]) expired(now time.Time) bool {
	return !v.expiresAt.IsZero() && now.After(v.expiresAt)
}

// MemorySessionStore keeps tokens in process memory. ttl <= 0 disables expiry.
type MemorySessionStore struct {
	mu     sync.Mutex
	tokens map[string]expiringValue[string]
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.ISessionStore = (*MemorySessionStore)(nil)

func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{tokens: map[string]expiringValue[string]{}, ttl: ttl, now: time.Now}
}

func (s *MemorySessionStore) Get(_ context.Context, sessionID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.tokens[sessionID]
	if !ok {
		return "", nil
	}
	if v.expired(s.now()) {
		delete(s.tokens, sessionID)
		return "", nil
	}
	return v.value, nil
}

func (s *MemorySessionStore) Set(_ context.Context, sessionID, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := expiringValue[string]{value: token}
	if s.ttl > 0 {
		v.expiresAt = s.now().Add(s.ttl)
	}
	s.tokens[sessionID] = v
	return nil
}

func (s *MemorySessionStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, sessionID)
	return nil
}

// RedisSessionStore keeps one string key per session with a sliding TTL set on write.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.ISessionStore = (*RedisSessionStore)(nil)

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (string, error) {
	val, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

func (s *RedisSessionStore) Set(ctx context.Context, sessionID, token string) error {
	return s.client.Set(ctx, sessionKeyPrefix+sessionID, token, s.ttl).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
