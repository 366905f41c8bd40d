package domain

import (
	"context"
	"time"
)

// Record represents a candidate redirect destination.
//
// Records are ordered by CreatedAt: the oldest enabled record is the
// current redirect target for anonymous traffic.
type Record struct {
	// ID is the canonical unique identifier, assigned by the store at
	// insert time. Never reused after deletion.
	ID string `json:"id"`

	// URL is the scheme-qualified destination address.
	// Unique across all records (normalized form).
	URL string `json:"url"`

	// Enabled marks the record as eligible for redirect selection.
	// Defaults to true at creation.
	Enabled bool `json:"enabled"`

	// CreatedAt is assigned at insert time and is immutable.
	// It defines the ordering used for listing and target selection.
	CreatedAt time.Time `json:"createdAt"`
}

// Store abstracts persistence for domain records.
//
// All listing methods return records in ascending CreatedAt order.
type Store interface {
	// ListAll returns every record.
	ListAll(ctx context.Context) ([]*Record, error)

	// ListEnabled returns only records with Enabled set.
	ListEnabled(ctx context.Context) ([]*Record, error)

	// FindByURL returns the record with the given normalized URL,
	// or ErrNotFound.
	FindByURL(ctx context.Context, url string) (*Record, error)

	// Insert creates a new enabled record for url, assigning ID and
	// CreatedAt. Fails with ErrDuplicateURL if the url is taken.
	Insert(ctx context.Context, url string) (*Record, error)

	// UpdateEnabled toggles the enabled flag of an existing record.
	// Fails with ErrInvalidID on a malformed id, ErrNotFound otherwise.
	UpdateEnabled(ctx context.Context, id string, enabled bool) (*Record, error)

	// Delete removes a record. Same error contract as UpdateEnabled.
	Delete(ctx context.Context, id string) error
}

// FirstEnabled resolves the current redirect target: the enabled record
// with the lowest CreatedAt. An empty enabled set is an expected operating
// state, reported as (nil, nil), never as an error.
func FirstEnabled(ctx context.Context, store Store) (*Record, error) {
	enabled, err := store.ListEnabled(ctx)
	if err != nil {
		return nil, err
	}
	if len(enabled) == 0 {
		return nil, nil
	}
	return enabled[0], nil
}
