package tracker

import (
	"context"
	"maps"
	"sync"
	"time"

	"civicradar/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// MemoryCooldownStore keeps cooldowns for the life of the process.
type MemoryCooldownStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]time.Time
}

func NewMemoryCooldownStore() *MemoryCooldownStore {
	return &MemoryCooldownStore{records: make(map[uuid.UUID]time.Time)}
}

func (s *MemoryCooldownStore) Load(context.Context) (map[uuid.UUID]time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return maps.Clone(s.records), nil
}

func (s *MemoryCooldownStore) Save(_ context.Context, regionID uuid.UUID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records[regionID] = at

	return nil
}

// RedisCooldownStore keeps cooldowns in one hash so they survive restarts.
// Field is the region ID, value an RFC 3339 timestamp.
type RedisCooldownStore struct {
	client redis.Cmdable
	key    string
}

func NewRedisCooldownStore(client redis.Cmdable, keyPrefix string) *RedisCooldownStore {
	return &RedisCooldownStore{
		client: client,
		key:    keyPrefix + ":cooldowns",
	}
}

func (s *RedisCooldownStore) Load(ctx context.Context) (map[uuid.UUID]time.Time, error) {
	fields, err := s.client.HGetAll(ctx, s.key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", s.key)
	}

	return decodeCooldowns(fields), nil
}

func (s *RedisCooldownStore) Save(ctx context.Context, regionID uuid.UUID, at time.Time) error {
	err := s.client.HSet(ctx, s.key, regionID.String(), at.UTC().Format(time.RFC3339Nano)).Err()

	return errors.Wrapf(err, "write %s", s.key)
}

// decodeCooldowns skips fields that do not parse; a lost record only means
// one extra alert.
func decodeCooldowns(fields map[string]string) map[uuid.UUID]time.Time {
	records := make(map[uuid.UUID]time.Time, len(fields))
	for field, value := range fields {
		id, err := uuid.Parse(field)
		if err != nil {
			continue
		}
		at, err := time.Parse(time.RFC3339Nano, value)
		if err != nil {
			continue
		}
		records[id] = at
	}

	return records
}
