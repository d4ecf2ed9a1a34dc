package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(LevelForEnvironment(GetEnvWithDefault("APP_ENV", "development")))
}

// DefaultDatabaseURI points at a file-backed SQLite database in the working directory
const DefaultDatabaseURI = "sqlite:///app.db"

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Port        int    `json:"port"`
	Host        string `json:"host"`
	Environment string `json:"environment"`

	// Database connection string, see database.ParseDatabaseURI for accepted forms
	DatabaseURI string `json:"database_uri"`
	SeedOnStart bool   `json:"seed_on_start"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Security Configuration
	// An empty JWTSecret leaves the write routes open
	JWTSecret   string   `json:"jwt_secret"`
	CORSOrigins []string `json:"cors_origins"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	secret := ""
	if c.JWTSecret != "" {
		secret = "[REDACTED]"
	}
	return fmt.Sprintf("Config{Port: %d, Host: %s, Environment: %s, DatabaseURI: %s, SeedOnStart: %t, LogLevel: %s, JWTSecret: %s, CORSOrigins: %v}",
		c.Port, c.Host, c.Environment, maskDatabaseURI(c.DatabaseURI), c.SeedOnStart, c.LogLevel, secret, c.CORSOrigins)
}

// WriteGuardEnabled reports whether mutating routes require a bearer token
func (c *Config) WriteGuardEnabled() bool {
	return c.JWTSecret != ""
}

// maskDatabaseURI masks password in database URI
func maskDatabaseURI(dbURI string) string {
	if dbURI == "" {
		return ""
	}

	parsed, err := url.Parse(dbURI)
	if err != nil {
		return "[REDACTED_INVALID_URI]"
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "REDACTED")
		}
	}

	return parsed.String()
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if any environment variable is present but invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid APP_PORT: %d out of range", port)
	}

	dbURI := GetEnvWithDefault("DB_URI", DefaultDatabaseURI)
	if _, err := url.Parse(dbURI); err != nil {
		return nil, fmt.Errorf("invalid DB_URI format: %w", err)
	}

	config := &Config{
		Port:        port,
		Host:        GetEnvWithDefault("APP_HOST", "localhost"),
		Environment: GetEnvWithDefault("APP_ENV", "development"),
		DatabaseURI: dbURI,
		SeedOnStart: GetEnvAsType("DB_SEED", true),
		LogLevel:    GetEnvWithDefault("LOG_LEVEL", "info"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		CORSOrigins: splitList(GetEnvWithDefault("CORS_ALLOWED_ORIGINS", "*")),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// LevelForEnvironment maps APP_ENV to the default log level
func LevelForEnvironment(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		// Default to info level for other environments
		return logrus.InfoLevel
	}
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
