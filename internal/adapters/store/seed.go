package store

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/roamly/tourguide-backend/internal/domain/entities"
	"github.com/roamly/tourguide-backend/internal/domain/repositories"
)

const (
	minLatitude = -85.05112878
	maxLatitude = 85.05112878
)

// SeedInternalUsers registers count internal test users, each with three
// random visited locations from the last month. Used in test mode until the
// external user store carries real users.
func SeedInternalUsers(ctx context.Context, repo repositories.UserRepository, count int) error {
	for i := 0; i < count; i++ {
		userName := fmt.Sprintf("internalUser%d", i)
		user := entities.NewUser(uuid.New(), userName, "000", userName+"@tourGuide.com")
		user.VisitedLocations = randomLocationHistory(user.ID, 3)
		if last := user.LastVisitedLocation(); last != nil {
			user.LatestLocationTimestamp = last.TimeVisited
		}
		if err := repo.Add(ctx, user); err != nil {
			return fmt.Errorf("seeding internal user %s: %w", userName, err)
		}
	}
	return nil
}

func randomLocationHistory(userID uuid.UUID, n int) []entities.VisitedLocation {
	history := make([]entities.VisitedLocation, 0, n)
	for i := 0; i < n; i++ {
		history = append(history, entities.VisitedLocation{
			UserID: userID,
			Location: entities.Location{
				Latitude:  minLatitude + rand.Float64()*(maxLatitude-minLatitude),
				Longitude: -180 + rand.Float64()*360,
			},
			TimeVisited: randomPastTime(),
		})
	}
	return history
}

func randomPastTime() time.Time {
	return time.Now().UTC().AddDate(0, 0, -rand.Intn(30))
}
