package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration loaded from environment variables
// Provide sane defaults for local development.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// Remote backends. The core API serves clinics, PDF ingestion and metrics;
	// the bot API serves admin auth, gamification and chatbot analytics.
	BackendAPIURL  string
	BotAPIURL      string
	BackendTimeout time.Duration
	UploadTimeout  time.Duration

	// Cookies
	CookieDomain string
	CookieSecure bool

	// Edge gate allow-list, comma-separated path prefixes
	GatePublicPaths string

	// CORS for the /api proxy
	CORSAllowedOrigins string // comma-separated

	// Redis (upload progress). Empty address keeps progress in memory.
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	UploadProgressTTL time.Duration

	// Google Cloud Storage document archive. Empty bucket disables it.
	GCSBucket              string
	GCSCredentialsJSONPath string // optional; if empty, Application Default Credentials are used

	MaxUploadBytes int64

	// Debug metrics (/debug/vars)
	DebugMetricsEnabled bool

	// HTTP access log toggle
	HTTPLogEnabled bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Printf("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		AppName: getenv("APP_NAME", "rafikey-admin"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "3000"),
		GinMode: getenv("GIN_MODE", "release"),

		BackendAPIURL:  strings.TrimRight(getenv("BACKEND_API_URL", "https://rafikey-backend.onrender.com"), "/"),
		BotAPIURL:      strings.TrimRight(getenv("BOT_API_URL", "https://rafikeybot.onrender.com"), "/"),
		BackendTimeout: getdur("BACKEND_TIMEOUT", 15*time.Second),
		UploadTimeout:  getdur("UPLOAD_TIMEOUT", 5*time.Minute),

		CookieDomain: getenv("COOKIE_DOMAIN", ""),
		CookieSecure: getbool("COOKIE_SECURE", false),

		GatePublicPaths: getenv("GATE_PUBLIC_PATHS", "/,/static,/api"),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		RedisAddr:         getenv("REDIS_ADDR", ""),
		RedisPassword:     getenv("REDIS_PASSWORD", ""),
		RedisDB:           getint("REDIS_DB", 0),
		UploadProgressTTL: getdur("UPLOAD_PROGRESS_TTL", 30*time.Minute),

		GCSBucket:              getenv("GCS_BUCKET", ""),
		GCSCredentialsJSONPath: getenv("GCS_CREDENTIALS_JSON", ""),

		MaxUploadBytes: int64(getint("MAX_UPLOAD_BYTES", 10*1024*1024)),

		// Debug metrics toggle (default true to preserve existing behavior)
		DebugMetricsEnabled: getbool("DEBUG_METRICS_ENABLED", true),

		// HTTP access log toggle (default false; enable when needed)
		HTTPLogEnabled: getbool("HTTP_LOG_ENABLED", false),
	}
}

// PublicPaths returns the edge gate allow-list as slice
func (c *Config) PublicPaths() []string {
	return splitList(c.GatePublicPaths)
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	return splitList(c.CORSAllowedOrigins)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
