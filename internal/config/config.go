package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

const (
	// StoreRedis selects the Redis-backed domain store.
	StoreRedis = "redis"
	// StoreMemory selects the in-memory domain store (dev/testing only).
	StoreMemory = "memory"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	AdminPassword        string        // shared secret for operator login, no baked-in default
	SessionTTL           time.Duration // session lifetime (default: 24h)
	SessionSweepInterval time.Duration // interval to prune expired sessions (default: 1h)

	StoreBackend string // "redis" | "memory"
	SeedFile     string // path to a YAML seed file of domains (optional, empty = no seeding)

	// Redis
	RedisAddr           string        // ex: "localhost:6379", required when StoreBackend is redis
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("SWITCHBOARD_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("SWITCHBOARD_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("SWITCHBOARD_LOG_LEVEL", "info"),
		PrettyLog: mustBool("SWITCHBOARD_PRETTY_LOG", true),

		// Auth
		AdminPassword:        requireEnv("SWITCHBOARD_ADMIN_PASSWORD"),
		SessionTTL:           mustDuration("SWITCHBOARD_SESSION_TTL", 24*time.Hour),
		SessionSweepInterval: mustDuration("SWITCHBOARD_SESSION_SWEEP_INTERVAL", time.Hour),

		// Store
		StoreBackend: getenv("SWITCHBOARD_STORE", StoreRedis),
		SeedFile:     getenv("SWITCHBOARD_SEED_FILE", ""),

		// Redis settings
		RedisAddr:           getenv("SWITCHBOARD_REDIS_ADDR", ""),
		RedisUser:           getenv("SWITCHBOARD_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("SWITCHBOARD_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("SWITCHBOARD_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),
	}

	switch cfg.StoreBackend {
	case StoreRedis:
		if cfg.RedisAddr == "" {
			panic("❌ FATAL: SWITCHBOARD_REDIS_ADDR is required when SWITCHBOARD_STORE=redis")
		}
	case StoreMemory:
		// Records do not survive a restart in this mode.
	default:
		panic(fmt.Sprintf("❌ FATAL: Unknown store backend %q (expected redis or memory)", cfg.StoreBackend))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.AdminPassword = "***REDACTED***"
		cfgCopy.RedisPassword = "***REDACTED***"
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
