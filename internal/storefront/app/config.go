package app

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/storefront/internal/storefront/session"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	CacheRedis  = "redis"
	CacheMemory = "memory"
)

type Config struct {
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)

	DatabaseDriver string // sqlite or postgres (default: sqlite)
	DatabaseFile   string // SQLite database file (default: storefront.db)
	DatabaseURL    string // Postgres DSN, from DATABASE_URL or the POSTGRES_* variables

	SessionCache     string        // redis or memory (default: redis)
	RedisURL         string        // Optional: redis:// URL, overrides RedisAddr and RedisPassword
	RedisAddr        string        // host:port (default: localhost:6379)
	RedisPassword    string        // Optional
	SessionKeyPrefix string        // Cache key namespace (default: session-token:)
	SessionTTL       time.Duration // Lifetime of a cached profile (default: 120s)

	AuthProfileURL     string // Required: identity provider profile endpoint
	AuthAccessTokenURL string // Optional: authorization code exchange endpoint
	RedirectURI        string // Optional: redirect_uri sent with the code exchange

	CorpTokenURL    string // Required: client credentials token endpoint
	ClientID        string // Required: client id for the corp token and the code exchange
	ClientSecret    string // Required: client secret for the corp token
	CorpUserDataURL string // Required: corporate directory base URL

	IssueCreateURL string // Required: ticket tracker create endpoint
	IssueProjectID int64  // Tracker project for new tickets (default: 1)
	IssueTrackerID int64  // Tracker type for new tickets (default: 1)

	PublicURL       string        // Storefront base URL used in ticket deep links (default: http://localhost:5173)
	UpstreamTimeout time.Duration // Timeout of every outbound call (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),

		DatabaseDriver: getEnvOrDefault("DATABASE_DRIVER", DriverSQLite),
		DatabaseFile:   getEnvOrDefault("DATABASE_FILE", "storefront.db"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),

		SessionCache:     getEnvOrDefault("SESSION_CACHE", CacheRedis),
		RedisURL:         os.Getenv("REDIS_URL"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		SessionKeyPrefix: getEnvOrDefault("SESSION_KEY_PREFIX", session.DefaultPrefix),
		SessionTTL:       getEnvDurationOrDefault("SESSION_TTL", session.DefaultTTL),

		AuthProfileURL:     os.Getenv("AUTH_PROFILE_URL"),
		AuthAccessTokenURL: os.Getenv("AUTH_ACCESSTOKEN_URL"),
		RedirectURI:        os.Getenv("REDIRECT_URI"),

		CorpTokenURL:    os.Getenv("AUTH_ACCESSTOKEN_CLIENT_URL"),
		ClientID:        os.Getenv("CLIENT_ID"),
		ClientSecret:    os.Getenv("CLIENT_SECRET"),
		CorpUserDataURL: os.Getenv("CORP_SERVICE_USERDATA_URL"),

		IssueCreateURL: os.Getenv("ISSUE_CREATE_URL"),
		IssueProjectID: getEnvInt64OrDefault("ISSUE_PROJECT_ID", 1),
		IssueTrackerID: getEnvInt64OrDefault("ISSUE_TRACKER_ID", 1),

		PublicURL:       getEnvOrDefault("PUBLIC_URL", "http://localhost:5173"),
		UpstreamTimeout: getEnvDurationOrDefault("UPSTREAM_TIMEOUT", 10*time.Second),
	}

	cfg.RedisAddr = net.JoinHostPort(
		getEnvOrDefault("REDIS_SERVICE", "localhost"),
		getEnvOrDefault("REDIS_PORT", "6379"),
	)

	// Split POSTGRES_* variables are only used when no DSN is given
	if cfg.DatabaseURL == "" {
		if host := os.Getenv("POSTGRES_SERVICE"); host != "" {
			cfg.DatabaseURL = postgresDSN(
				host,
				getEnvOrDefault("POSTGRES_PORT", "5432"),
				os.Getenv("POSTGRES_USER"),
				os.Getenv("POSTGRES_PASSWORD"),
				os.Getenv("POSTGRES_DB"),
			)
		}
	}

	return cfg
}

// Validate reports every missing or inconsistent setting at once.
func (c Config) Validate() error {
	var errs []error

	required := []struct{ name, value string }{
		{"AUTH_PROFILE_URL", c.AuthProfileURL},
		{"AUTH_ACCESSTOKEN_CLIENT_URL", c.CorpTokenURL},
		{"CLIENT_ID", c.ClientID},
		{"CLIENT_SECRET", c.ClientSecret},
		{"CORP_SERVICE_USERDATA_URL", c.CorpUserDataURL},
		{"ISSUE_CREATE_URL", c.IssueCreateURL},
	}
	for _, r := range required {
		if r.value == "" {
			errs = append(errs, fmt.Errorf("%s is required", r.name))
		}
	}

	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			errs = append(errs, errors.New("DATABASE_FILE is required for sqlite"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL or POSTGRES_SERVICE is required for postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("DATABASE_DRIVER %q is not one of sqlite, postgres", c.DatabaseDriver))
	}

	switch c.SessionCache {
	case CacheRedis, CacheMemory:
	default:
		errs = append(errs, fmt.Errorf("SESSION_CACHE %q is not one of redis, memory", c.SessionCache))
	}

	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("SESSION_TTL must be positive"))
	}
	if c.IssueProjectID == 0 || c.IssueTrackerID == 0 {
		errs = append(errs, errors.New("ISSUE_PROJECT_ID and ISSUE_TRACKER_ID must not be 0"))
	}

	return errors.Join(errs...)
}

// SQLiteDSN enables foreign keys, a busy timeout and WAL on every connection.
func (c Config) SQLiteDSN() string {
	return fmt.Sprintf(
		"file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
		c.DatabaseFile,
	)
}

func postgresDSN(host, port, user, password, db string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     net.JoinHostPort(host, port),
		Path:     "/" + db,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Bare integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
