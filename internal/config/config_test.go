package config

import (
	"testing"
	"time"
)

func TestRequireEnv(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		shouldSet bool
		wantPanic bool
	}{
		{
			name:      "variable set",
			key:       "TEST_VAR",
			value:     "test_value",
			shouldSet: true,
			wantPanic: false,
		},
		{
			name:      "variable not set",
			key:       "TEST_VAR_MISSING",
			shouldSet: false,
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldSet {
				t.Setenv(tt.key, tt.value)
			}

			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("requireEnv() should have panicked")
					}
				}()
			}

			result := requireEnv(tt.key)
			if !tt.wantPanic && result != tt.value {
				t.Errorf("requireEnv() = %v, want %v", result, tt.value)
			}
		})
	}
}

func TestGetenv(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		def       string
		shouldSet bool
		want      string
	}{
		{
			name:      "set value wins over default",
			key:       "TEST_GETENV",
			value:     "configured",
			def:       "fallback",
			shouldSet: true,
			want:      "configured",
		},
		{
			name: "default used when unset",
			key:  "TEST_GETENV_MISSING",
			def:  "fallback",
			want: "fallback",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldSet {
				t.Setenv(tt.key, tt.value)
			}
			if got := getenv(tt.key, tt.def); got != tt.want {
				t.Errorf("getenv() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		def       time.Duration
		shouldSet bool
		want      time.Duration
	}{
		{
			name:      "valid duration",
			key:       "TEST_DURATION",
			value:     "30m",
			def:       time.Hour,
			shouldSet: true,
			want:      30 * time.Minute,
		},
		{
			name:      "invalid duration falls back to default",
			key:       "TEST_DURATION_BAD",
			value:     "soon",
			def:       time.Hour,
			shouldSet: true,
			want:      time.Hour,
		},
		{
			name: "unset falls back to default",
			key:  "TEST_DURATION_MISSING",
			def:  24 * time.Hour,
			want: 24 * time.Hour,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldSet {
				t.Setenv(tt.key, tt.value)
			}
			if got := mustDuration(tt.key, tt.def); got != tt.want {
				t.Errorf("mustDuration() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		def       bool
		shouldSet bool
		want      bool
	}{
		{name: "true value", key: "TEST_BOOL", value: "true", shouldSet: true, want: true},
		{name: "false value", key: "TEST_BOOL_F", value: "false", def: true, shouldSet: true, want: false},
		{name: "garbage falls back", key: "TEST_BOOL_BAD", value: "yep", def: true, shouldSet: true, want: true},
		{name: "unset falls back", key: "TEST_BOOL_MISSING", def: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.shouldSet {
				t.Setenv(tt.key, tt.value)
			}
			if got := mustBool(tt.key, tt.def); got != tt.want {
				t.Errorf("mustBool() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadValidatesStoreBackend(t *testing.T) {
	t.Setenv("SWITCHBOARD_ADMIN_PASSWORD", "secret")

	t.Run("memory backend needs no redis addr", func(t *testing.T) {
		t.Setenv("SWITCHBOARD_STORE", "memory")
		cfg := Load()
		if cfg.StoreBackend != StoreMemory {
			t.Errorf("StoreBackend = %q, want %q", cfg.StoreBackend, StoreMemory)
		}
		if cfg.SessionTTL != 24*time.Hour {
			t.Errorf("SessionTTL = %v, want 24h default", cfg.SessionTTL)
		}
	})

	t.Run("redis backend requires addr", func(t *testing.T) {
		t.Setenv("SWITCHBOARD_STORE", "redis")
		defer func() {
			if r := recover(); r == nil {
				t.Error("Load() should panic when redis addr is missing")
			}
		}()
		Load()
	})

	t.Run("unknown backend rejected", func(t *testing.T) {
		t.Setenv("SWITCHBOARD_STORE", "postgres")
		defer func() {
			if r := recover(); r == nil {
				t.Error("Load() should panic on unknown store backend")
			}
		}()
		Load()
	})
}
