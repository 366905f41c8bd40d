package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/switchboard-io/switchboard/internal/domain"
)

// Store is an in-memory implementation of domain.Store.
// It backs tests and the dev/memory store mode; records do not survive
// a restart.
type Store struct {
	mu      sync.RWMutex
	records map[string]*domain.Record // ID -> Record
	now     func() time.Time
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{
		records: make(map[string]*domain.Record),
		now:     time.Now,
	}
}

// SetTimeNow overrides the clock used for CreatedAt stamps (tests only).
func (s *Store) SetTimeNow(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) ListAll(_ context.Context) ([]*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorted(func(*domain.Record) bool { return true }), nil
}

func (s *Store) ListEnabled(_ context.Context) ([]*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorted(func(rec *domain.Record) bool { return rec.Enabled }), nil
}

func (s *Store) FindByURL(_ context.Context, url string) (*domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.URL == url {
			clone := *rec
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Store) Insert(_ context.Context, url string) (*domain.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.records {
		if rec.URL == url {
			return nil, domain.ErrDuplicateURL
		}
	}

	rec := &domain.Record{
		ID:        uuid.NewString(),
		URL:       url,
		Enabled:   true,
		CreatedAt: s.now(),
	}
	s.records[rec.ID] = rec

	clone := *rec
	return &clone, nil
}

func (s *Store) UpdateEnabled(_ context.Context, id string, enabled bool) (*domain.Record, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	rec.Enabled = enabled

	clone := *rec
	return &clone, nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.records, id)
	return nil
}

// Count returns the number of stored records.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// sorted returns copies of all records matching keep, ascending CreatedAt.
// Ties resolve by ID so ordering stays consistent within a query.
// Caller must hold at least the read lock.
func (s *Store) sorted(keep func(*domain.Record) bool) []*domain.Record {
	out := make([]*domain.Record, 0, len(s.records))
	for _, rec := range s.records {
		if keep(rec) {
			clone := *rec
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
