package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Store    StoreConfig
	GPS      GPSConfig
	Rewards  RewardsConfig
	Tracking TrackingConfig
	Tracker  TrackerConfig
	OTEL     OTELConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds PostgreSQL configuration for the external user store
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// StoreConfig selects the user store backend and test-mode seeding
type StoreConfig struct {
	// Backend is either "memory" or "postgres"
	Backend string

	// InternalUserCount seeds that many internal test users into the memory
	// store at startup; zero disables seeding
	InternalUserCount int
}

// GPSConfig holds the simulated geolocation provider configuration
type GPSConfig struct {
	// MaxLatency bounds the simulated lookup delay; zero disables it
	MaxLatency time.Duration
}

// RewardsConfig holds reward engine configuration
type RewardsConfig struct {
	// ProximityBufferMiles is the distance within which a visit earns a
	// reward for an attraction
	ProximityBufferMiles float64
}

// TrackingConfig holds worker pool sizing for the tracking coordinator
type TrackingConfig struct {
	// PoolSize is the shared tracking pool size
	PoolSize int

	// BulkRewardWorkers is the pool size for bulk reward recalculation
	BulkRewardWorkers int

	// BulkRewardTimeout caps how long a bulk reward run may block
	BulkRewardTimeout time.Duration
}

// TrackerConfig holds the background tracker loop configuration
type TrackerConfig struct {
	Enabled  bool
	Interval time.Duration
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "tourguide"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Store: StoreConfig{
			Backend:           getEnv("USER_STORE_BACKEND", "memory"),
			InternalUserCount: getEnvAsInt("INTERNAL_USER_COUNT", 100),
		},
		GPS: GPSConfig{
			MaxLatency: getEnvAsDuration("GPS_MAX_LATENCY", 100*time.Millisecond),
		},
		Rewards: RewardsConfig{
			ProximityBufferMiles: getEnvAsFloat("REWARD_PROXIMITY_BUFFER_MILES", 10),
		},
		Tracking: TrackingConfig{
			PoolSize:          getEnvAsInt("TRACKING_POOL_SIZE", 50),
			BulkRewardWorkers: getEnvAsInt("BULK_REWARD_WORKERS", 100),
			BulkRewardTimeout: getEnvAsDuration("BULK_REWARD_TIMEOUT", 20*time.Minute),
		},
		Tracker: TrackerConfig{
			Enabled:  getEnvAsBool("TRACKER_ENABLED", true),
			Interval: getEnvAsDuration("TRACKER_INTERVAL", 5*time.Minute),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "tourguide-backend"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}, nil
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
