package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/switchboard-io/switchboard/internal/domain"
)

// Store is the Redis-backed implementation of domain.Store.
//
// Layout:
//   - switchboard:domain:<id>       JSON record
//   - switchboard:domains:created   ZSET id scored by CreatedAt (UnixNano)
//   - switchboard:domains:urls      HASH url -> id, enforces uniqueness
type Store struct {
	client *redis.Client
	now    func() time.Time
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
		now:    time.Now,
	}
}

func (s *Store) ListAll(ctx context.Context) ([]*domain.Record, error) {
	return s.list(ctx, func(*domain.Record) bool { return true })
}

func (s *Store) ListEnabled(ctx context.Context) ([]*domain.Record, error) {
	return s.list(ctx, func(rec *domain.Record) bool { return rec.Enabled })
}

// list fetches all record IDs in creation order and filters with keep.
// Records whose ZSET entry outlived their payload are skipped.
func (s *Store) list(ctx context.Context, keep func(*domain.Record) bool) ([]*domain.Record, error) {
	ids, err := s.client.ZRange(ctx, KeyDomainsByCreation, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list domain ids: %w", err)
	}

	records := make([]*domain.Record, 0, len(ids))
	for _, id := range ids {
		rec, err := s.get(ctx, id)
		if err != nil {
			if domain.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		if keep(rec) {
			records = append(records, rec)
		}
	}
	return records, nil
}

func (s *Store) FindByURL(ctx context.Context, url string) (*domain.Record, error) {
	id, err := s.client.HGet(ctx, KeyDomainURLs, url).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up url: %w", err)
	}
	return s.get(ctx, id)
}

func (s *Store) Insert(ctx context.Context, url string) (*domain.Record, error) {
	rec := &domain.Record{
		ID:        uuid.NewString(),
		URL:       url,
		Enabled:   true,
		CreatedAt: s.now(),
	}

	// Reserve the url first: HSetNX is atomic, so concurrent inserts of
	// the same url race safely.
	reserved, err := s.client.HSetNX(ctx, KeyDomainURLs, url, rec.ID).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to reserve url: %w", err)
	}
	if !reserved {
		return nil, domain.ErrDuplicateURL
	}

	if err := s.save(ctx, rec); err != nil {
		// Release the reservation so the url stays insertable.
		_ = s.client.HDel(ctx, KeyDomainURLs, url).Err()
		return nil, err
	}
	return rec, nil
}

func (s *Store) UpdateEnabled(ctx context.Context, id string, enabled bool) (*domain.Record, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}

	rec, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	rec.Enabled = enabled

	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal domain: %w", err)
	}
	if err := s.client.Set(ctx, DomainKey(id), data, 0).Err(); err != nil {
		return nil, fmt.Errorf("failed to update domain: %w", err)
	}
	return rec, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}

	rec, err := s.get(ctx, id)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, DomainKey(id))
	pipe.ZRem(ctx, KeyDomainsByCreation, id)
	pipe.HDel(ctx, KeyDomainURLs, rec.URL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete domain: %w", err)
	}
	return nil
}

// get retrieves a single record by ID.
func (s *Store) get(ctx context.Context, id string) (*domain.Record, error) {
	data, err := s.client.Get(ctx, DomainKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get domain: %w", err)
	}

	var rec domain.Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal domain: %w", err)
	}
	return &rec, nil
}

// save writes the record payload and indexes it in the creation-order set.
func (s *Store) save(ctx context.Context, rec *domain.Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal domain: %w", err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, DomainKey(rec.ID), data, 0)
	pipe.ZAdd(ctx, KeyDomainsByCreation, redis.Z{
		Score:  float64(rec.CreatedAt.UnixNano()),
		Member: rec.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save domain: %w", err)
	}
	return nil
}
