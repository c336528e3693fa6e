package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/klemart/markd/internal/logger"
)

// ConnectOptions defines Redis connection and retry behavior.
type ConnectOptions struct {
	Addr           string        // Redis address (ex: "localhost:6379")
	User           string        // Optional username
	Password       string        // Optional password
	RedisDB        int           // Redis DB number
	DialTimeout    time.Duration // Redis dial timeout
	ReadTimeout    time.Duration // Redis read timeout
	WriteTimeout   time.Duration // Redis write timeout
	PoolSize       int           // Redis connection pool size
	ConnectTimeout time.Duration // Total time allowed for connection attempts (ex: 30s)
	RetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	MaxWait        time.Duration // Max wait between retries (ex: 10s)
	PingTimeout    time.Duration // Timeout for each ping attempt (ex: 5s)
	WarnThreshold  int           // Warn (instead of error) up to this many attempts
}

func (o ConnectOptions) validate() error {
	if o.ConnectTimeout <= 0 {
		return fmt.Errorf("ConnectTimeout must be > 0, got %v", o.ConnectTimeout)
	}
	if o.RetryInterval <= 0 {
		return fmt.Errorf("RetryInterval must be > 0, got %v", o.RetryInterval)
	}
	if o.MaxWait <= 0 {
		return fmt.Errorf("MaxWait must be > 0, got %v", o.MaxWait)
	}
	if o.PingTimeout <= 0 {
		return fmt.Errorf("PingTimeout must be > 0, got %v", o.PingTimeout)
	}
	return nil
}

// New creates a Redis client and pings it with exponential backoff until
// ConnectTimeout is reached. Returns an error if no ping succeeds in time.
func New(opts ConnectOptions, log logger.Logger) (*redis.Client, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Username:     opts.User,
		Password:     opts.Password,
		DB:           opts.RedisDB,
		DialTimeout:  opts.DialTimeout,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		PoolSize:     opts.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()

	log.Info("connecting to redis",
		logger.String("addr", opts.Addr),
		logger.Duration("timeout", opts.ConnectTimeout))

	attempt := 0
	wait := opts.RetryInterval

	for {
		attempt++

		pingCtx, pingCancel := context.WithTimeout(ctx, opts.PingTimeout)
		err := client.Ping(pingCtx).Err()
		pingCancel()

		if err == nil {
			if attempt > 1 {
				log.Warn("connected to redis after retry",
					logger.String("addr", opts.Addr),
					logger.Int("attempts", attempt))
			} else {
				log.Info("connected to redis", logger.String("addr", opts.Addr))
			}
			return client, nil
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Error("redis unavailable - failed to connect after timeout",
				logger.String("addr", opts.Addr),
				logger.Int("attempts", attempt),
				logger.Error(err))
			return nil, fmt.Errorf("redis unavailable at %s after %d attempts (timeout: %v): %w",
				opts.Addr, attempt, opts.ConnectTimeout, err)

		case <-timer.C:
			if attempt <= opts.WarnThreshold {
				log.Warn("redis connection failed, retrying",
					logger.String("addr", opts.Addr),
					logger.Int("attempt", attempt),
					logger.Duration("next_retry_in", wait),
					logger.Error(err))
			} else {
				log.Error("redis still unavailable - connection attempts failing",
					logger.String("addr", opts.Addr),
					logger.Int("attempt", attempt),
					logger.Duration("next_retry_in", wait),
					logger.Error(err))
			}
			// Exponential backoff with cap
			wait *= 2
			if wait > opts.MaxWait {
				wait = opts.MaxWait
			}
		}
	}
}
