package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/roamly/tourguide-backend/internal/adapters/store"
	"github.com/roamly/tourguide-backend/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubLocationProvider returns a fixed location, optionally failing for
// selected users, and counts lookups
type stubLocationProvider struct {
	mu       sync.Mutex
	location entities.Location
	failFor  map[uuid.UUID]error
	calls    int
}

func (s *stubLocationProvider) CurrentLocation(_ context.Context, userID uuid.UUID) (*entities.VisitedLocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if err, ok := s.failFor[userID]; ok {
		return nil, err
	}
	return &entities.VisitedLocation{
		UserID:      userID,
		Location:    s.location,
		TimeVisited: time.Now(),
	}, nil
}

func (s *stubLocationProvider) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type trackingFixture struct {
	svc      *TrackingService
	repo     *store.MemoryUserStore
	provider *stubLocationProvider
	pool     *WorkerPool
}

func newTrackingFixture(t *testing.T, attractions []entities.Attraction) *trackingFixture {
	t.Helper()
	repo := store.NewMemoryUserStore()
	provider := &stubLocationProvider{location: entities.Location{Latitude: 33.9, Longitude: -117.9}}
	rewardsSvc := NewRewardsService(repo, &stubCatalogProvider{attractions: attractions}, &stubRewardScorer{points: 10}, nil)
	pool := NewWorkerPool(4)
	t.Cleanup(pool.Shutdown)
	return &trackingFixture{
		svc:      NewTrackingService(repo, provider, rewardsSvc, nil, pool, nil),
		repo:     repo,
		provider: provider,
		pool:     pool,
	}
}

func addUser(t *testing.T, repo *store.MemoryUserStore, userName string) *entities.User {
	t.Helper()
	user := entities.NewUser(uuid.New(), userName, "000", userName+"@tourGuide.com")
	require.NoError(t, repo.Add(context.Background(), user))
	return user
}

// waitForVisits polls until the user's history reaches the wanted length
func waitForVisits(t *testing.T, repo *store.MemoryUserStore, userName string, want int) *entities.User {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		user, err := repo.GetByUserName(context.Background(), userName)
		require.NoError(t, err)
		if len(user.VisitedLocations) >= want {
			return user
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("user %s never reached %d visited locations", userName, want)
	return nil
}

func TestTrackUserReturnsLocationAndAppendsAsync(t *testing.T) {
	f := newTrackingFixture(t, nil)
	user := addUser(t, f.repo, "alice")

	visited, err := f.svc.TrackUser(context.Background(), user)
	require.NoError(t, err)
	require.NotNil(t, visited)
	assert.Equal(t, user.ID, visited.UserID)
	assert.Equal(t, f.provider.location, visited.Location)

	updated := waitForVisits(t, f.repo, "alice", 1)
	assert.Equal(t, visited.Location, updated.VisitedLocations[0].Location)
}

func TestTrackUserChainsRewardCalculation(t *testing.T) {
	attractions := []entities.Attraction{{
		AttractionName: "Disneyland",
		Location:       entities.Location{Latitude: 33.9, Longitude: -117.9},
	}}
	f := newTrackingFixture(t, attractions)
	user := addUser(t, f.repo, "alice")

	_, err := f.svc.TrackUser(context.Background(), user)
	require.NoError(t, err)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		got, err := f.repo.GetRewards(context.Background(), "alice")
		require.NoError(t, err)
		if len(got) == 1 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("reward was never granted after tracking")
}

func TestTrackUserPropagatesProviderError(t *testing.T) {
	f := newTrackingFixture(t, nil)
	user := addUser(t, f.repo, "alice")
	providerErr := errors.New("gps down")
	f.provider.failFor = map[uuid.UUID]error{user.ID: providerErr}

	_, err := f.svc.TrackUser(context.Background(), user)
	assert.ErrorIs(t, err, providerErr)
}

func TestTrackAllUsersBlocksUntilAppendsComplete(t *testing.T) {
	f := newTrackingFixture(t, nil)
	users := make([]*entities.User, 0, 10)
	for i := 0; i < 10; i++ {
		users = append(users, addUser(t, f.repo, "user"+string(rune('a'+i))))
	}

	f.svc.TrackAllUsers(context.Background(), users)

	for _, u := range users {
		got, err := f.repo.GetByUserName(context.Background(), u.UserName)
		require.NoError(t, err)
		assert.Len(t, got.VisitedLocations, 1)
	}
}

func TestTrackAllUsersEmptySliceIsNoOp(t *testing.T) {
	f := newTrackingFixture(t, nil)

	f.svc.TrackAllUsers(context.Background(), nil)
	f.svc.TrackAllUsersAndProcess(context.Background(), nil)

	assert.Equal(t, 0, f.provider.callCount())
}

func TestTrackAllUsersIsolatesPerUserFailures(t *testing.T) {
	f := newTrackingFixture(t, nil)
	alice := addUser(t, f.repo, "alice")
	bob := addUser(t, f.repo, "bob")
	f.provider.failFor = map[uuid.UUID]error{alice.ID: errors.New("gps down")}

	f.svc.TrackAllUsers(context.Background(), []*entities.User{alice, bob})

	gotAlice, err := f.repo.GetByUserName(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, gotAlice.VisitedLocations)

	gotBob, err := f.repo.GetByUserName(context.Background(), "bob")
	require.NoError(t, err)
	assert.Len(t, gotBob.VisitedLocations, 1)
}

func TestTrackAllUsersAndProcessGrantsRewards(t *testing.T) {
	attractions := []entities.Attraction{{
		AttractionName: "Disneyland",
		Location:       entities.Location{Latitude: 33.9, Longitude: -117.9},
	}}
	f := newTrackingFixture(t, attractions)
	users := []*entities.User{addUser(t, f.repo, "alice"), addUser(t, f.repo, "bob")}

	f.svc.TrackAllUsersAndProcess(context.Background(), users)

	for _, u := range users {
		got, err := f.repo.GetRewards(context.Background(), u.UserName)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	}
}

func TestTrackAllUsersDuplicatesTrackedIndependently(t *testing.T) {
	f := newTrackingFixture(t, nil)
	user := addUser(t, f.repo, "alice")

	f.svc.TrackAllUsers(context.Background(), []*entities.User{user, user, user})

	got, err := f.repo.GetByUserName(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, got.VisitedLocations, 3)
}

func TestCalculateRewardsBulkProcessesAllUsers(t *testing.T) {
	attractions := []entities.Attraction{{
		AttractionName: "Disneyland",
		Location:       entities.Location{Latitude: 33.9, Longitude: -117.9},
	}}
	f := newTrackingFixture(t, attractions)

	users := make([]*entities.User, 0, 20)
	for i := 0; i < 20; i++ {
		u := addUserWithVisit(t, f.repo, "bulk"+string(rune('a'+i)), entities.Location{Latitude: 33.9, Longitude: -117.9})
		users = append(users, u)
	}

	f.svc.CalculateRewardsBulk(context.Background(), users)

	for _, u := range users {
		got, err := f.repo.GetRewards(context.Background(), u.UserName)
		require.NoError(t, err)
		assert.Len(t, got, 1)
	}
}

func TestCalculateRewardsBulkReturnsOnTimeout(t *testing.T) {
	slowCatalog := &blockingCatalogProvider{release: make(chan struct{})}
	repo := store.NewMemoryUserStore()
	rewardsSvc := NewRewardsService(repo, slowCatalog, &stubRewardScorer{points: 10}, nil)
	pool := NewWorkerPool(2)
	t.Cleanup(pool.Shutdown)
	svc := NewTrackingService(repo, &stubLocationProvider{}, rewardsSvc, nil, pool, nil)
	svc.SetBulkRewardWorkers(2)
	svc.SetBulkRewardTimeout(50 * time.Millisecond)

	user := addUser(t, repo, "alice")

	start := time.Now()
	done := make(chan struct{})
	go func() {
		svc.CalculateRewardsBulk(context.Background(), []*entities.User{user})
		close(done)
	}()

	select {
	case <-done:
		assert.Less(t, time.Since(start), time.Second, "bulk call must return at the timeout")
	case <-time.After(2 * time.Second):
		t.Fatal("bulk call did not return after the timeout elapsed")
	}
	close(slowCatalog.release)
}

// blockingCatalogProvider blocks ListAttractions until released
type blockingCatalogProvider struct {
	release chan struct{}
}

func (b *blockingCatalogProvider) ListAttractions(_ context.Context) ([]entities.Attraction, error) {
	<-b.release
	return nil, nil
}
