package repository

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"quotely/internal/domain/entities"
	"quotely/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

const draftKeyPrefix = "quotely:draft:"

// MemoryDraftStore keeps drafts in process memory. Stored values are deep
// copies so callers cannot alias them.
type MemoryDraftStore struct {
	mu     sync.Mutex
	drafts map[string]expiringValue[[]byte]
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.IDraftStore = (*MemoryDraftStore)(nil)

func NewMemoryDraftStore(ttl time.Duration) *MemoryDraftStore {
	return &MemoryDraftStore{drafts: map[string]expiringValue[[]byte]{}, ttl: ttl, now: time.Now}
}

func (s *MemoryDraftStore) Load(_ context.Context, sessionID string) (entities.Quotation, error) {
	s.mu.Lock()
	v, ok := s.drafts[sessionID]
	if ok && v.expired(s.now()) {
		delete(s.drafts, sessionID)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return entities.Quotation{}, nil
	}
	return decodeDraft(v.value)
}

func (s *MemoryDraftStore) Save(_ context.Context, sessionID string, q entities.Quotation) error {
	raw, err := json.Marshal(q)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v := expiringValue[[]byte]{value: raw}
	if s.ttl > 0 {
		v.expiresAt = s.now().Add(s.ttl)
	}
	s.drafts[sessionID] = v
	return nil
}

func (s *MemoryDraftStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
	return nil
}

// RedisDraftStore stores each draft as a JSON string.
type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.IDraftStore = (*RedisDraftStore)(nil)

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{client: client, ttl: ttl}
}

func (s *RedisDraftStore) Load(ctx context.Context, sessionID string) (entities.Quotation, error) {
	raw, err := s.client.Get(ctx, draftKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.Quotation{}, nil
	}
	if err != nil {
		return entities.Quotation{}, err
	}
	return decodeDraft(raw)
}

func (s *RedisDraftStore) Save(ctx context.Context, sessionID string, q entities.Quotation) error {
	raw, err := json.Marshal(q)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, draftKeyPrefix+sessionID, raw, s.ttl).Err()
}

func (s *RedisDraftStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, draftKeyPrefix+sessionID).Err()
}

func decodeDraft(raw []byte) (entities.Quotation, error) {
	var q entities.Quotation
	if err := json.Unmarshal(raw, &q); err != nil {
		return entities.Quotation{}, err
	}
	return q, nil
}
