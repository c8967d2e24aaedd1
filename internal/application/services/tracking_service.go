package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/roamly/tourguide-backend/internal/domain/entities"
	"github.com/roamly/tourguide-backend/internal/domain/providers"
	"github.com/roamly/tourguide-backend/internal/domain/repositories"
	"github.com/roamly/tourguide-backend/internal/infrastructure/observability"
)

const (
	// DefaultTrackingPoolSize bounds the shared tracking pool
	DefaultTrackingPoolSize = 50

	// DefaultBulkRewardWorkers bounds the per-call pool used by bulk reward
	// recalculation
	DefaultBulkRewardWorkers = 100

	// DefaultBulkRewardTimeout caps how long a bulk reward recalculation
	// waits before abandoning outstanding tasks
	DefaultBulkRewardTimeout = 20 * time.Minute
)

// TrackingService coordinates the location pipeline: fetch a user's current
// position from the location provider, append it to the user's history, then
// recalculate rewards. Per-user ordering is strict; across users there is no
// ordering. Batch operations isolate per-user failures and never return them.
type TrackingService struct {
	userRepo          repositories.UserRepository
	locationProvider  providers.LocationProvider
	rewardsService    *RewardsService
	eventBus          providers.EventBus
	pool              *WorkerPool
	metrics           *observability.Metrics
	bulkRewardWorkers int
	bulkRewardTimeout time.Duration
}

// NewTrackingService creates a tracking service over the given pool. The
// caller owns the pool's lifetime. eventBus may be nil when live location
// feeds are disabled.
func NewTrackingService(
	userRepo repositories.UserRepository,
	locationProvider providers.LocationProvider,
	rewardsService *RewardsService,
	eventBus providers.EventBus,
	pool *WorkerPool,
	metrics *observability.Metrics,
) *TrackingService {
	return &TrackingService{
		userRepo:          userRepo,
		locationProvider:  locationProvider,
		rewardsService:    rewardsService,
		eventBus:          eventBus,
		pool:              pool,
		metrics:           metrics,
		bulkRewardWorkers: DefaultBulkRewardWorkers,
		bulkRewardTimeout: DefaultBulkRewardTimeout,
	}
}

// SetBulkRewardWorkers overrides the per-call pool size used by
// CalculateRewardsBulk
func (s *TrackingService) SetBulkRewardWorkers(workers int) {
	if workers > 0 {
		s.bulkRewardWorkers = workers
	}
}

// SetBulkRewardTimeout overrides the completion deadline used by
// CalculateRewardsBulk
func (s *TrackingService) SetBulkRewardTimeout(timeout time.Duration) {
	if timeout > 0 {
		s.bulkRewardTimeout = timeout
	}
}

// TrackUser fetches the user's current location synchronously and returns
// it. The append and reward recalculation run afterwards on the tracking
// pool, so the caller sees the new location before it is visible in the
// user's history.
func (s *TrackingService) TrackUser(ctx context.Context, user *entities.User) (*entities.VisitedLocation, error) {
	start := time.Now()

	visited, err := s.locationProvider.CurrentLocation(ctx, user.ID)
	if err != nil {
		observability.RecordTrackMetric(ctx, s.metrics, "error", time.Since(start))
		return nil, err
	}
	observability.RecordTrackMetric(ctx, s.metrics, "ok", time.Since(start))

	userName := user.UserName
	// The append must survive the caller's request lifetime.
	bg := context.WithoutCancel(ctx)
	if err := s.pool.Submit(func() {
		s.processVisit(bg, userName, *visited)
	}); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).
			Str("user_name", userName).
			Msg("Tracking pool rejected visit processing")
	}

	return visited, nil
}

// TrackAllUsers fetches and appends a location for every user on the
// tracking pool and blocks until each per-user task finishes. Per-user
// failures are logged, never returned.
func (s *TrackingService) TrackAllUsers(ctx context.Context, users []*entities.User) {
	s.trackAll(ctx, users, false)
}

// TrackAllUsersAndProcess is TrackAllUsers with reward recalculation chained
// after each append
func (s *TrackingService) TrackAllUsersAndProcess(ctx context.Context, users []*entities.User) {
	s.trackAll(ctx, users, true)
}

func (s *TrackingService) trackAll(ctx context.Context, users []*entities.User, recalculate bool) {
	if len(users) == 0 {
		return
	}

	logger := observability.LoggerFromContext(ctx)
	var wg sync.WaitGroup
	for _, user := range users {
		wg.Add(1)
		if err := s.pool.Submit(func() {
			defer wg.Done()
			s.trackAndProcess(ctx, user, recalculate)
		}); err != nil {
			wg.Done()
			logger.Warn().Err(err).
				Str("user_name", user.UserName).
				Msg("Tracking pool rejected track task")
		}
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn().Err(ctx.Err()).
			Int("user_count", len(users)).
			Msg("Track-all interrupted before completion")
	}
}

func (s *TrackingService) trackAndProcess(ctx context.Context, user *entities.User, recalculate bool) {
	start := time.Now()
	logger := observability.LoggerFromContext(ctx)

	visited, err := s.locationProvider.CurrentLocation(ctx, user.ID)
	if err != nil {
		observability.RecordTrackMetric(ctx, s.metrics, "error", time.Since(start))
		logger.Warn().Err(err).
			Str("user_name", user.UserName).
			Msg("Failed to fetch current location")
		return
	}
	observability.RecordTrackMetric(ctx, s.metrics, "ok", time.Since(start))

	updated, err := s.userRepo.AddVisitedLocation(ctx, user.UserName, *visited)
	if err != nil {
		logger.Warn().Err(err).
			Str("user_name", user.UserName).
			Msg("Failed to append visited location")
		return
	}
	s.publishLocation(ctx, updated, *visited)

	if recalculate {
		if err := s.rewardsService.CalculateRewards(ctx, updated); err != nil {
			logger.Warn().Err(err).
				Str("user_name", user.UserName).
				Msg("Failed to recalculate rewards after tracking")
		}
	}
}

// CalculateRewardsBulk recalculates rewards for every given user on a
// dedicated pool created for this call. It returns when all users are
// processed or the bulk timeout elapses, whichever comes first; on timeout
// the outstanding tasks are abandoned and the pool drains in the background.
func (s *TrackingService) CalculateRewardsBulk(ctx context.Context, users []*entities.User) {
	if len(users) == 0 {
		return
	}

	logger := observability.LoggerFromContext(ctx)
	pool := NewWorkerPool(s.bulkRewardWorkers)

	var wg sync.WaitGroup
	for _, user := range users {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			if err := s.rewardsService.CalculateRewards(ctx, user); err != nil {
				logger.Warn().Err(err).
					Str("user_name", user.UserName).
					Msg("Failed to calculate rewards in bulk run")
			}
		}); err != nil {
			wg.Done()
			logger.Warn().Err(err).
				Str("user_name", user.UserName).
				Msg("Bulk reward pool rejected task")
		}
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		pool.Shutdown()
	case <-time.After(s.bulkRewardTimeout):
		logger.Warn().
			Int("user_count", len(users)).
			Dur("timeout", s.bulkRewardTimeout).
			Msg("Bulk reward calculation timed out")
		go pool.Shutdown()
	case <-ctx.Done():
		logger.Warn().Err(ctx.Err()).
			Int("user_count", len(users)).
			Msg("Bulk reward calculation interrupted")
		go pool.Shutdown()
	}
}

func (s *TrackingService) processVisit(ctx context.Context, userName string, visited entities.VisitedLocation) {
	logger := observability.LoggerFromContext(ctx)

	updated, err := s.userRepo.AddVisitedLocation(ctx, userName, visited)
	if err != nil {
		logger.Warn().Err(err).
			Str("user_name", userName).
			Msg("Failed to append visited location")
		return
	}
	s.publishLocation(ctx, updated, visited)

	if err := s.rewardsService.CalculateRewards(ctx, updated); err != nil {
		logger.Warn().Err(err).
			Str("user_name", userName).
			Msg("Failed to recalculate rewards after tracking")
	}
}

func (s *TrackingService) publishLocation(ctx context.Context, user *entities.User, visited entities.VisitedLocation) {
	if s.eventBus == nil {
		return
	}

	event := &entities.LocationEvent{
		ID:          uuid.New().String(),
		Type:        entities.LocationEventTracked,
		UserID:      user.ID,
		UserName:    user.UserName,
		Location:    visited.Location,
		TimeVisited: visited.TimeVisited,
		PublishedAt: time.Now(),
	}
	if err := s.eventBus.Publish(ctx, providers.EventChannelLocationUpdates, event); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).
			Str("user_name", user.UserName).
			Msg("Failed to publish location event")
	}
	if err := s.eventBus.Publish(ctx, providers.GetUserChannel(user.UserName), event); err != nil {
		observability.LoggerFromContext(ctx).Warn().Err(err).
			Str("user_name", user.UserName).
			Msg("Failed to publish per-user location event")
	}
}
