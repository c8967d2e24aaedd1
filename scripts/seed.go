package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/roamly/tourguide-backend/internal/adapters/store"
	"github.com/roamly/tourguide-backend/internal/infrastructure/clients/postgres"
	"github.com/roamly/tourguide-backend/internal/infrastructure/observability"
	"github.com/roamly/tourguide-backend/pkg/config"
)

// Seeds internal test users into the PostgreSQL user store. RESET_DB=true
// truncates the user tables first.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger("tourguide-seed", "development")
	logger := observability.GetLogger()

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pgClient.Close()

	ctx := context.Background()

	if os.Getenv("RESET_DB") == "true" {
		logger.Info().Msg("RESET_DB=true detected, truncating user tables before seeding")
		_, err := pgClient.DB().ExecContext(ctx, `
			TRUNCATE TABLE
				user_rewards,
				visited_locations,
				users
			CASCADE
		`)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to truncate user tables")
		}
	}

	count := cfg.Store.InternalUserCount
	if v := os.Getenv("SEED_USER_COUNT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			count = parsed
		}
	}

	repo := store.NewPostgresUserStore(pgClient)
	if err := store.SeedInternalUsers(ctx, repo, count); err != nil {
		logger.Fatal().Err(err).Msg("Failed to seed internal users")
	}

	logger.Info().Int("count", count).Msg("Seeded internal users")
}
