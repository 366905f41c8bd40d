package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/switchboard-io/switchboard/internal/logger"
	"github.com/switchboard-io/switchboard/internal/store/memory"
)

func writeSeedFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "domains.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}
	return path
}

func TestLoadInsertsNormalizedDomains(t *testing.T) {
	log := logger.New("error", false)
	store := memory.New()

	path := writeSeedFile(t, `domains:
  - example.com
  - https://a.example.com
  - ""
`)

	inserted, err := NewLoader(path, store, log).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if inserted != 2 {
		t.Errorf("Load() inserted %d, want 2", inserted)
	}

	all, err := store.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("store holds %d records, want 2", len(all))
	}
	if all[0].URL != "https://example.com" {
		t.Errorf("first seeded url = %q, want normalized https://example.com", all[0].URL)
	}
}

func TestLoadSkipsDuplicatesSilently(t *testing.T) {
	log := logger.New("error", false)
	store := memory.New()

	path := writeSeedFile(t, `domains:
  - example.com
  - example.com
  - https://example.com
`)

	inserted, err := NewLoader(path, store, log).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if inserted != 1 {
		t.Errorf("Load() inserted %d, want 1", inserted)
	}
	if store.Count() != 1 {
		t.Errorf("store holds %d records, want 1", store.Count())
	}
}

func TestLoadErrors(t *testing.T) {
	log := logger.New("error", false)

	t.Run("missing file", func(t *testing.T) {
		loader := NewLoader(filepath.Join(t.TempDir(), "absent.yaml"), memory.New(), log)
		if _, err := loader.Load(context.Background()); err == nil {
			t.Error("Load() error = nil for missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeSeedFile(t, "domains: [unclosed")
		loader := NewLoader(path, memory.New(), log)
		if _, err := loader.Load(context.Background()); err == nil {
			t.Error("Load() error = nil for malformed yaml")
		}
	})
}
