package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DBPath string // path to the SQLite database file

	JWTSecret string        // HMAC secret for signing access tokens
	JWTTTL    time.Duration // access token lifetime (default: 15m)

	MaintenanceInterval time.Duration // interval between SQLite maintenance runs (default: 24h)

	// Redis (optional read cache, empty addr = cache disabled)
	RedisAddr           string        // ex: "localhost:6379", empty => no cache
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
	CacheTTL            time.Duration // TTL for cached bookmark lists (default: 5m)

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict ops endpoints to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
}

// fileConfig mirrors the optional YAML config file. Every value can be
// overridden by the corresponding MARKD_* environment variable.
type fileConfig struct {
	ListenPort   string   `yaml:"listen_port"`
	LogLevel     string   `yaml:"log_level"`
	DBPath       string   `yaml:"db_path"`
	JWTSecret    string   `yaml:"jwt_secret"`
	RedisAddr    string   `yaml:"redis_addr"`
	AllowedHosts []string `yaml:"allowed_hosts"`
	AllowedCIDRS []string `yaml:"allowed_cidrs"`
}

func Load() *Config {
	fc := loadFile(getenv("MARKD_CONFIG_FILE", ""))

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("MARKD_LISTEN_PORT", strOr(fc.ListenPort, ":8080")),
		ShutdownTimeout: mustDuration("MARKD_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("MARKD_LOG_LEVEL", strOr(fc.LogLevel, "info")),
		PrettyLog: mustBool("MARKD_PRETTY_LOG", false),

		// Storage
		DBPath: getenv("MARKD_DB_PATH", strOr(fc.DBPath, "markd.db")),

		// Auth
		JWTSecret: getenv("MARKD_JWT_SECRET", fc.JWTSecret),
		JWTTTL:    mustDuration("MARKD_JWT_TTL", 15*time.Minute),

		// Maintenance
		MaintenanceInterval: mustDuration("MARKD_MAINTENANCE_INTERVAL", 24*time.Hour),

		// Redis settings (cache disabled when addr is empty)
		RedisAddr:           getenv("MARKD_REDIS_ADDR", fc.RedisAddr),
		RedisUser:           getenv("MARKD_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("MARKD_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("MARKD_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),
		CacheTTL:            mustDuration("MARKD_CACHE_TTL", 5*time.Minute),

		// Access restrictions
		AllowedHosts: sliceOr(splitAndTrim(getenv("MARKD_ALLOWED_HOSTS", "")), fc.AllowedHosts),
		AllowedCIDRS: sliceOr(splitAndTrim(getenv("MARKD_ALLOWED_CIDRS", "")), fc.AllowedCIDRS),
		TrustProxy:   mustBool("MARKD_TRUST_PROXY", false),
	}

	if cfg.JWTSecret == "" {
		panic("❌ FATAL: MARKD_JWT_SECRET is not set (env or config file)")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.JWTSecret = "***REDACTED***"
		if cfgCopy.RedisPassword != "" {
			cfgCopy.RedisPassword = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// loadFile parses the optional YAML config file. A missing path is fine
// (env-only configuration); an unreadable or malformed file is not.
func loadFile(path string) fileConfig {
	var fc fileConfig
	if path == "" {
		return fc
	}
	data, err := os.ReadFile(path)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: cannot read config file %s: %v", path, err))
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		panic(fmt.Sprintf("❌ FATAL: cannot parse config file %s: %v", path, err))
	}
	return fc
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
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

func strOr(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func sliceOr(v, def []string) []string {
	if len(v) > 0 {
		return v
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
