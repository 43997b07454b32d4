package config

import (
	"os"
	"strconv"
	"time"
)

// Policy pins the business rules that shifted across revisions of the
// product. Each flag gates exactly one check in the service layer; defaults
// match the behavior currently in production.
type Policy struct {
	// ProducerOnlyBandCreation requires the PRODUCER role to create a band.
	ProducerOnlyBandCreation bool
	// SingleProducerPerBand rejects adding a second PRODUCER to a roster
	// (the administrator being the first).
	SingleProducerPerBand bool
	// UniqueCollaborationTitles enforces case-insensitive title uniqueness
	// on collaboration creation.
	UniqueCollaborationTitles bool
}

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret string
	JWTExpiry time.Duration

	// AI chat relay
	AIAPIKey  string
	AIAPIURL  string
	AIModel   string
	AITimeout time.Duration

	// Admin
	AdminToken string

	// Server
	Port        string
	CORSOrigins string

	Policy Policy
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "musiconnect"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTExpiry: parseDuration(getEnv("JWT_EXPIRY", "24h")),

		AIAPIKey:  getEnv("AI_API_KEY", ""),
		AIAPIURL:  getEnv("AI_API_URL", "https://generativelanguage.googleapis.com/v1beta/models"),
		AIModel:   getEnv("AI_MODEL", "gemini-2.0-flash"),
		AITimeout: parseDuration(getEnv("AI_TIMEOUT", "60s")),

		AdminToken: getEnv("ADMIN_TOKEN", ""),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		Policy: Policy{
			ProducerOnlyBandCreation:  parseBool(getEnv("POLICY_PRODUCER_ONLY_BANDS", "true")),
			SingleProducerPerBand:     parseBool(getEnv("POLICY_SINGLE_PRODUCER_PER_BAND", "true")),
			UniqueCollaborationTitles: parseBool(getEnv("POLICY_UNIQUE_COLLABORATION_TITLES", "true")),
		},
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 15 * time.Minute
	}
	return d
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false
	}
	return b
}
