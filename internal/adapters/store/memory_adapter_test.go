package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/roamly/tourguide-backend/internal/domain/entities"
	apperrors "github.com/roamly/tourguide-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(name string) *entities.User {
	return entities.NewUser(uuid.New(), name, "000", name+"@tourGuide.com")
}

func testVisit(userID uuid.UUID, lat, lon float64) entities.VisitedLocation {
	return entities.VisitedLocation{
		UserID:      userID,
		Location:    entities.Location{Latitude: lat, Longitude: lon},
		TimeVisited: time.Now().UTC(),
	}
}

func TestAddAndGetByUserName(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryUserStore()
	user := newTestUser("jon")

	require.NoError(t, s.Add(ctx, user))

	got, err := s.GetByUserName(ctx, "jon")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, "jon", got.UserName)
}

func TestAddDuplicateUserIsConflict(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryUserStore()
	require.NoError(t, s.Add(ctx, newTestUser("jon")))

	err := s.Add(ctx, newTestUser("jon"))
	assert.True(t, apperrors.IsConflict(err))
}

func TestGetUnknownUserIsNotFound(t *testing.T) {
	s := NewMemoryUserStore()
	_, err := s.GetByUserName(context.Background(), "ghost")
	assert.True(t, apperrors.IsNotFound(err))
}

func TestAddVisitedLocationReturnsUpdatedUser(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryUserStore()
	user := newTestUser("jon")
	require.NoError(t, s.Add(ctx, user))

	updated, err := s.AddVisitedLocation(ctx, "jon", testVisit(user.ID, 1, 2))
	require.NoError(t, err)
	assert.Len(t, updated.VisitedLocations, 1)
	assert.False(t, updated.LatestLocationTimestamp.IsZero())
}

func TestSnapshotsAreCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryUserStore()
	user := newTestUser("jon")
	require.NoError(t, s.Add(ctx, user))

	snapshot, err := s.GetByUserName(ctx, "jon")
	require.NoError(t, err)
	snapshot.VisitedLocations = append(snapshot.VisitedLocations, testVisit(user.ID, 1, 2))

	fresh, err := s.GetByUserName(ctx, "jon")
	require.NoError(t, err)
	assert.Empty(t, fresh.VisitedLocations)
}

func TestConcurrentAppendsForDifferentUsers(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryUserStore()

	const users = 20
	const visitsPerUser = 25
	ids := make([]uuid.UUID, users)
	for i := 0; i < users; i++ {
		u := newTestUser(fmt.Sprintf("user%d", i))
		ids[i] = u.ID
		require.NoError(t, s.Add(ctx, u))
	}

	var wg sync.WaitGroup
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for v := 0; v < visitsPerUser; v++ {
				_, err := s.AddVisitedLocation(ctx, fmt.Sprintf("user%d", i), testVisit(ids[i], float64(v), float64(v)))
				assert.NoError(t, err)
			}
		}(i)
	}

	// Snapshot while appends are running.
	for i := 0; i < 10; i++ {
		_, err := s.GetAll(ctx)
		assert.NoError(t, err)
	}
	wg.Wait()

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, users)
	for _, u := range all {
		assert.Len(t, u.VisitedLocations, visitsPerUser)
	}
}

func TestAddRewardDeduplicatesUnderConcurrency(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryUserStore()
	user := newTestUser("jon")
	require.NoError(t, s.Add(ctx, user))

	attraction := entities.Attraction{
		AttractionName: "Disneyland",
		Location:       entities.Location{Latitude: 33.817595, Longitude: -117.922008},
	}
	reward := entities.UserReward{
		VisitedLocation: testVisit(user.ID, 33.8, -117.9),
		Attraction:      attraction,
		RewardPoints:    100,
	}

	const attempts = 50
	added := make(chan bool, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := s.AddReward(ctx, "jon", reward)
			assert.NoError(t, err)
			added <- ok
		}()
	}
	wg.Wait()
	close(added)

	wins := 0
	for ok := range added {
		if ok {
			wins++
		}
	}
	assert.Equal(t, 1, wins)

	rewards, err := s.GetRewards(ctx, "jon")
	require.NoError(t, err)
	assert.Len(t, rewards, 1)
}

func TestSeedInternalUsers(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryUserStore()

	require.NoError(t, SeedInternalUsers(ctx, s, 5))

	all, err := s.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)

	user, err := s.GetByUserName(ctx, "internalUser0")
	require.NoError(t, err)
	assert.Len(t, user.VisitedLocations, 3)
	for _, v := range user.VisitedLocations {
		assert.GreaterOrEqual(t, v.Location.Latitude, minLatitude)
		assert.LessOrEqual(t, v.Location.Latitude, maxLatitude)
		assert.GreaterOrEqual(t, v.Location.Longitude, -180.0)
		assert.LessOrEqual(t, v.Location.Longitude, 180.0)
	}
}
