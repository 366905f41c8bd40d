package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/switchboard-io/switchboard/internal/config"
	"github.com/switchboard-io/switchboard/internal/domain"
	"github.com/switchboard-io/switchboard/internal/httpserver"
	"github.com/switchboard-io/switchboard/internal/httpserver/deps"
	"github.com/switchboard-io/switchboard/internal/logger"
	"github.com/switchboard-io/switchboard/internal/redis"
	"github.com/switchboard-io/switchboard/internal/scheduler"
	"github.com/switchboard-io/switchboard/internal/seed"
	"github.com/switchboard-io/switchboard/internal/session"
	memorystore "github.com/switchboard-io/switchboard/internal/store/memory"
	redisstore "github.com/switchboard-io/switchboard/internal/store/redis"
	"github.com/switchboard-io/switchboard/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	sessions    *session.Manager
	sweeper     *scheduler.SessionSweeper
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Pick the domain store backend - fail fast if Redis is unavailable
	var store domain.Store
	var redisClient *goredis.Client
	switch cfg.StoreBackend {
	case config.StoreRedis:
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		redisClient = client
		store = redisstore.NewStore(client)
		loggerClient.Info("Redis store initialized")
	case config.StoreMemory:
		loggerClient.Warn("using in-memory store, records will not survive a restart")
		store = memorystore.New()
	}

	// Seed domains from file (optional)
	if cfg.SeedFile != "" {
		loader := seed.NewLoader(cfg.SeedFile, store, loggerClient)
		if _, err := loader.Load(context.Background()); err != nil {
			loggerClient.Warn("failed to load seed file", logger.Error(err))
		}
	}

	// Session table + periodic cleanup of expired sessions
	sessions := session.NewManager(cfg.SessionTTL)
	sweeper := scheduler.NewSessionSweeper(sessions, loggerClient, cfg.SessionSweepInterval)

	d := deps.Deps{
		Logger:        loggerClient,
		Store:         store,
		Sessions:      sessions,
		AdminPassword: cfg.AdminPassword,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		TimeNow:       time.Now,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		sessions:    sessions,
		sweeper:     sweeper,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Switchboard v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Switchboard %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.sweeper.Start(ctx)
	a.logger.Info("session sweeper started",
		logger.Duration("interval", a.cfg.SessionSweepInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	a.sweeper.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Switchboard stopped cleanly")
	return nil
}
