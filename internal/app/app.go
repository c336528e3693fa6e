package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/klemart/markd/internal/auth"
	"github.com/klemart/markd/internal/bookmarks"
	"github.com/klemart/markd/internal/config"
	"github.com/klemart/markd/internal/httpserver"
	"github.com/klemart/markd/internal/httpserver/deps"
	"github.com/klemart/markd/internal/logger"
	"github.com/klemart/markd/internal/redis"
	"github.com/klemart/markd/internal/scheduler"
	redisstore "github.com/klemart/markd/internal/store/redis"
	"github.com/klemart/markd/internal/store/sqlite"
	"github.com/klemart/markd/internal/users"
	"github.com/klemart/markd/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	sqlDB       *sql.DB
	redisClient *goredis.Client
	maintenance *scheduler.Maintenance
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Open SQLite early - fail fast if the database is unusable
	loggerClient.Infof("Opening database at %s", cfg.DBPath)
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		loggerClient.Errorf("Failed to open database: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Database initialized successfully")

	// Optional Redis cache (empty addr = disabled)
	var redisClient *goredis.Client
	var listCache bookmarks.ListCache
	if cfg.RedisAddr != "" {
		redisClient, err = redis.New(redis.ConnectOptions{
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
		listCache = redisstore.NewStore(redisClient, cfg.CacheTTL)
	} else {
		loggerClient.Info("redis not configured, bookmark list cache disabled")
	}

	// Repositories and services
	userRepo := sqlite.NewUserRepository(db)
	bookmarkRepo := sqlite.NewBookmarkRepository(db)

	authService := auth.NewService(userRepo, cfg.JWTSecret, cfg.JWTTTL, loggerClient)
	userService := users.NewService(userRepo, loggerClient)
	bookmarkService := bookmarks.NewService(bookmarkRepo, listCache, loggerClient)

	maintenance := scheduler.NewMaintenance(db, loggerClient, cfg.MaintenanceInterval)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		TimeNow:      time.Now,
		AllowedHosts: cfg.AllowedHosts,
		AllowedCIDRS: cfg.AllowedCIDRS,
		TrustProxy:   cfg.TrustProxy,
		JWTSecret:    cfg.JWTSecret,
		DB:           db,
		Auth:         authService,
		Users:        userService,
		Bookmarks:    bookmarkService,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		maintenance: maintenance,
		sqlDB:       db,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting markd v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("markd %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start database maintenance job
	if err := a.maintenance.Start(ctx); err != nil {
		return fmt.Errorf("failed to start maintenance job: %w", err)
	}
	a.logger.Info("database maintenance job started",
		logger.Duration("interval", a.cfg.MaintenanceInterval))

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

	a.maintenance.Stop()

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

	if err := a.sqlDB.Close(); err != nil {
		a.logger.Warnf("failed to close database: %v", err)
	} else {
		a.logger.Info("✅ Database closed cleanly")
	}

	a.logger.Info("✅ markd stopped cleanly")
	return nil
}
