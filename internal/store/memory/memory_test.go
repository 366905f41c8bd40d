package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/switchboard-io/switchboard/internal/domain"
)

func TestInsertAssignsIdentityAndDefaults(t *testing.T) {
	store := New()
	ctx := context.Background()

	rec, err := store.Insert(ctx, "https://a.example.com")
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if rec.ID == "" {
		t.Error("Insert() did not assign an id")
	}
	if !rec.Enabled {
		t.Error("Insert() should default Enabled to true")
	}
	if rec.CreatedAt.IsZero() {
		t.Error("Insert() did not assign CreatedAt")
	}
}

func TestInsertRejectsDuplicateURL(t *testing.T) {
	store := New()
	ctx := context.Background()

	if _, err := store.Insert(ctx, "https://a.example.com"); err != nil {
		t.Fatalf("first Insert() error = %v", err)
	}

	_, err := store.Insert(ctx, "https://a.example.com")
	if !domain.IsDuplicate(err) {
		t.Errorf("second Insert() error = %v, want ErrDuplicateURL", err)
	}
	if store.Count() != 1 {
		t.Errorf("store holds %d records after duplicate insert, want 1", store.Count())
	}
}

func TestListAllOrdersByCreatedAt(t *testing.T) {
	store := New()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	store.SetTimeNow(func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	})

	urls := []string{"https://a.example.com", "https://b.example.com", "https://c.example.com"}
	for _, url := range urls {
		if _, err := store.Insert(ctx, url); err != nil {
			t.Fatalf("Insert(%q) error = %v", url, err)
		}
	}

	all, err := store.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("ListAll() returned %d records, want 3", len(all))
	}
	for i, url := range urls {
		if all[i].URL != url {
			t.Errorf("ListAll()[%d].URL = %q, want %q", i, all[i].URL, url)
		}
	}
}

func TestListEnabledFiltersDisabled(t *testing.T) {
	store := New()
	ctx := context.Background()

	a, _ := store.Insert(ctx, "https://a.example.com")
	if _, err := store.Insert(ctx, "https://b.example.com"); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if _, err := store.UpdateEnabled(ctx, a.ID, false); err != nil {
		t.Fatalf("UpdateEnabled() error = %v", err)
	}

	enabled, err := store.ListEnabled(ctx)
	if err != nil {
		t.Fatalf("ListEnabled() error = %v", err)
	}
	for _, rec := range enabled {
		if !rec.Enabled {
			t.Errorf("ListEnabled() returned disabled record %s", rec.URL)
		}
		if rec.ID == a.ID {
			t.Errorf("ListEnabled() returned record disabled earlier: %s", rec.URL)
		}
	}
	if len(enabled) != 1 {
		t.Errorf("ListEnabled() returned %d records, want 1", len(enabled))
	}
}

func TestFindByURL(t *testing.T) {
	store := New()
	ctx := context.Background()

	inserted, _ := store.Insert(ctx, "https://a.example.com")

	found, err := store.FindByURL(ctx, "https://a.example.com")
	if err != nil {
		t.Fatalf("FindByURL() error = %v", err)
	}
	if found.ID != inserted.ID {
		t.Errorf("FindByURL() returned id %s, want %s", found.ID, inserted.ID)
	}

	_, err = store.FindByURL(ctx, "https://missing.example.com")
	if !domain.IsNotFound(err) {
		t.Errorf("FindByURL(missing) error = %v, want ErrNotFound", err)
	}
}

func TestUpdateEnabledErrors(t *testing.T) {
	store := New()
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		wantErr func(error) bool
	}{
		{
			name:    "malformed id",
			id:      "not-a-uuid",
			wantErr: domain.IsInvalidID,
		},
		{
			name:    "unknown id",
			id:      "6ba7b810-9dad-11d1-80b4-00c04fd430c8",
			wantErr: domain.IsNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.UpdateEnabled(ctx, tt.id, false)
			if !tt.wantErr(err) {
				t.Errorf("UpdateEnabled(%q) error = %v", tt.id, err)
			}
			if store.Count() != 0 {
				t.Errorf("UpdateEnabled(%q) changed record count", tt.id)
			}
		})
	}
}

func TestDeleteErrors(t *testing.T) {
	store := New()
	ctx := context.Background()

	if _, err := store.Insert(ctx, "https://a.example.com"); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if err := store.Delete(ctx, "garbage"); !domain.IsInvalidID(err) {
		t.Errorf("Delete(malformed) error = %v, want ErrInvalidID", err)
	}
	if err := store.Delete(ctx, "6ba7b810-9dad-11d1-80b4-00c04fd430c8"); !domain.IsNotFound(err) {
		t.Errorf("Delete(unknown) error = %v, want ErrNotFound", err)
	}
	if store.Count() != 1 {
		t.Errorf("failed deletes changed record count, have %d want 1", store.Count())
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	store := New()
	ctx := context.Background()

	rec, _ := store.Insert(ctx, "https://a.example.com")
	if err := store.Delete(ctx, rec.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if store.Count() != 0 {
		t.Errorf("Delete() left %d records, want 0", store.Count())
	}
}

func TestFirstEnabledSelection(t *testing.T) {
	store := New()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	store.SetTimeNow(func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	})

	a, _ := store.Insert(ctx, "https://a.example.com")
	b, _ := store.Insert(ctx, "https://b.example.com")
	if _, err := store.Insert(ctx, "https://c.example.com"); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	target, err := domain.FirstEnabled(ctx, store)
	if err != nil {
		t.Fatalf("FirstEnabled() error = %v", err)
	}
	if target == nil || target.URL != "https://a.example.com" {
		t.Fatalf("FirstEnabled() = %v, want oldest record a", target)
	}

	// Disabling the oldest promotes the next one.
	if _, err := store.UpdateEnabled(ctx, a.ID, false); err != nil {
		t.Fatalf("UpdateEnabled() error = %v", err)
	}
	target, err = domain.FirstEnabled(ctx, store)
	if err != nil {
		t.Fatalf("FirstEnabled() error = %v", err)
	}
	if target == nil || target.ID != b.ID {
		t.Fatalf("FirstEnabled() after disable = %v, want record b", target)
	}
}

func TestFirstEnabledEmptySetIsNotAnError(t *testing.T) {
	store := New()
	ctx := context.Background()

	rec, _ := store.Insert(ctx, "https://a.example.com")
	if _, err := store.UpdateEnabled(ctx, rec.ID, false); err != nil {
		t.Fatalf("UpdateEnabled() error = %v", err)
	}

	target, err := domain.FirstEnabled(ctx, store)
	if err != nil {
		t.Errorf("FirstEnabled() error = %v, want nil", err)
	}
	if target != nil {
		t.Errorf("FirstEnabled() = %v, want nil target", target)
	}
}

func TestConcurrentInserts(t *testing.T) {
	store := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	urls := []string{
		"https://a.example.com",
		"https://b.example.com",
		"https://c.example.com",
		"https://d.example.com",
	}
	for i := 0; i < 10; i++ {
		for _, url := range urls {
			url := url
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = store.Insert(ctx, url)
			}()
		}
	}
	wg.Wait()

	if store.Count() != len(urls) {
		t.Errorf("concurrent inserts left %d records, want %d", store.Count(), len(urls))
	}
}
