package services

import (
	"context"
	"sync"
	"time"

	"github.com/roamly/tourguide-backend/internal/domain/repositories"
	"github.com/roamly/tourguide-backend/internal/infrastructure/observability"
)

// DefaultTrackingInterval is the pause between background tracking rounds
const DefaultTrackingInterval = 5 * time.Minute

// Tracker periodically runs the full tracking pipeline over every known
// user. Stop prevents new rounds from starting; tasks already submitted to
// the tracking pool are allowed to finish.
type Tracker struct {
	trackingService *TrackingService
	userRepo        repositories.UserRepository
	interval        time.Duration

	mu      sync.Mutex
	started bool
	stop    chan struct{}
	done    chan struct{}
}

// NewTracker creates a background tracker. A non-positive interval falls
// back to the default.
func NewTracker(trackingService *TrackingService, userRepo repositories.UserRepository, interval time.Duration) *Tracker {
	if interval <= 0 {
		interval = DefaultTrackingInterval
	}
	return &Tracker{
		trackingService: trackingService,
		userRepo:        userRepo,
		interval:        interval,
	}
}

// Start launches the tracking loop. Calling Start on a running tracker is a
// no-op.
func (t *Tracker) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.started {
		return
	}
	t.started = true
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go t.run()
}

// StopTracking signals the loop to stop and waits for the current round, if
// any, to complete. Safe to call more than once and before Start.
func (t *Tracker) StopTracking() {
	t.mu.Lock()
	if !t.started {
		t.mu.Unlock()
		return
	}
	t.started = false
	close(t.stop)
	done := t.done
	t.mu.Unlock()

	<-done
}

func (t *Tracker) run() {
	defer close(t.done)

	logger := observability.GetLogger()
	for {
		select {
		case <-t.stop:
			return
		case <-time.After(t.interval):
		}

		ctx := context.Background()
		users, err := t.userRepo.GetAll(ctx)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to load users for tracking round")
			continue
		}

		logger.Debug().Int("user_count", len(users)).Msg("Starting tracking round")
		start := time.Now()
		t.trackingService.TrackAllUsersAndProcess(ctx, users)
		logger.Debug().
			Int("user_count", len(users)).
			Dur("duration", time.Since(start)).
			Msg("Tracking round complete")
	}
}
