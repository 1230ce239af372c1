package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer      string // Required: issuer claim for tokens
	AgentAPIKey string // Required: shared secret for the agent discovery/webhook channel

	AdminEmail    string // Optional: seeds an agi_admin user on first boot
	AdminPassword string // Required when AdminEmail is set
	AdminName     string // Optional: display name for the seeded admin
	RootOrgName   string // Optional: name of the seeded root organization

	DatabaseFile        string        // Optional: path to SQLite database file (default: ./medfleet.db)
	PepperFile          string        // Optional: path to file containing pepper for password hashing (default: ./pepper)
	AccessTokenTTL      time.Duration // Optional: access token lifetime (default: 24h)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
	RequestTimeout      time.Duration // Per-request context deadline (default: 15s)
	AuditBuffer         int           // Audit recorder channel capacity (default: 256)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:              os.Getenv("FLEET_ISSUER"),
		AgentAPIKey:         os.Getenv("FLEET_AGENT_API_KEY"),
		AdminEmail:          os.Getenv("FLEET_ADMIN_EMAIL"),
		AdminPassword:       os.Getenv("FLEET_ADMIN_PASSWORD"),
		AdminName:           getEnvOrDefault("FLEET_ADMIN_NAME", "Platform Admin"),
		RootOrgName:         getEnvOrDefault("FLEET_ROOT_ORG", "AGI Health"),
		DatabaseFile:        getEnvOrDefault("FLEET_DATABASE_FILE", "medfleet.db"),
		PepperFile:          getEnvOrDefault("FLEET_PEPPER_FILE", "pepper"),
		AccessTokenTTL:      getEnvDurationOrDefault("FLEET_ACCESS_TOKEN_TTL", 24*time.Hour),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		RequestTimeout:      getEnvDurationOrDefault("REQUEST_TIMEOUT", 15*time.Second),
		AuditBuffer:         getEnvIntOrDefault("FLEET_AUDIT_BUFFER", 256),
	}

	if cfg.Issuer == "" {
		cfg.Issuer = "medfleet"
	}

	return cfg
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

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are read as seconds.
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
