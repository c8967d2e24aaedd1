package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_TrackingConfig(t *testing.T) {
	// Setup environment variables
	os.Setenv("TRACKING_POOL_SIZE", "8")
	os.Setenv("BULK_REWARD_WORKERS", "16")
	os.Setenv("BULK_REWARD_TIMEOUT", "90s")
	defer func() {
		os.Unsetenv("TRACKING_POOL_SIZE")
		os.Unsetenv("BULK_REWARD_WORKERS")
		os.Unsetenv("BULK_REWARD_TIMEOUT")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, 8, cfg.Tracking.PoolSize)
	assert.Equal(t, 16, cfg.Tracking.BulkRewardWorkers)
	assert.Equal(t, 90*time.Second, cfg.Tracking.BulkRewardTimeout)
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("TRACKING_POOL_SIZE")
	os.Unsetenv("BULK_REWARD_WORKERS")
	os.Unsetenv("REWARD_PROXIMITY_BUFFER_MILES")
	os.Unsetenv("TRACKER_INTERVAL")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, 50, cfg.Tracking.PoolSize)
	assert.Equal(t, 100, cfg.Tracking.BulkRewardWorkers)
	assert.Equal(t, 20*time.Minute, cfg.Tracking.BulkRewardTimeout)
	assert.Equal(t, 10.0, cfg.Rewards.ProximityBufferMiles)
	assert.Equal(t, 5*time.Minute, cfg.Tracker.Interval)
	assert.Equal(t, "memory", cfg.Store.Backend)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	os.Setenv("TRACKING_POOL_SIZE", "not-a-number")
	os.Setenv("TRACKER_ENABLED", "definitely")
	defer func() {
		os.Unsetenv("TRACKING_POOL_SIZE")
		os.Unsetenv("TRACKER_ENABLED")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, 50, cfg.Tracking.PoolSize)
	assert.True(t, cfg.Tracker.Enabled)
}

func TestDatabaseDSN(t *testing.T) {
	c := DatabaseConfig{Host: "db", Port: 5432, User: "tg", Password: "pw", Database: "tourguide", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=tg password=pw dbname=tourguide sslmode=disable", c.DatabaseDSN())
}
