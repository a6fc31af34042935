package proposal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
)

// Store хранилище предложений перегенерации в Redis.
//
// Ключ живет дольше, чем ExpiresAt предложения (на grace), чтобы при коммите
// просроченного предложения можно было отличить "истекло" от "не существует".
type Store struct {
	client    redis.Cmdable
	keyPrefix string
	grace     time.Duration
}

// NewStore создает хранилище предложений
func NewStore(client redis.Cmdable, keyPrefix string, grace time.Duration) *Store {
	return &Store{
		client:    client,
		keyPrefix: keyPrefix,
		grace:     grace,
	}
}

// Save сохраняет предложение до ExpiresAt + grace
func (s *Store) Save(ctx context.Context, p *domain.RegenerationProposal) error {
	payload, err := json.Marshal(toRecord(p))
	if err != nil {
		return fmt.Errorf("%w: Save - marshal: %v", ErrEncode, err)
	}

	ttl := time.Until(p.ExpiresAt) + s.grace
	if ttl <= 0 {
		ttl = s.grace
	}

	if err := s.client.Set(ctx, s.key(p.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("%w: Save - set %s: %v", ErrRedis, p.ID, err)
	}

	return nil
}

// Get получает предложение по ID
func (s *Store) Get(ctx context.Context, id string) (*domain.RegenerationProposal, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrProposalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - get %s: %v", ErrRedis, id, err)
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: Get - unmarshal %s: %v", ErrDecode, id, err)
	}

	return rec.toDomain(), nil
}

// Delete удаляет предложение; отсутствие ключа ошибкой не считается
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - del %s: %v", ErrRedis, id, err)
	}
	return nil
}

func (s *Store) key(id string) string {
	return s.keyPrefix + id
}
