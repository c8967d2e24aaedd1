package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerRunsRoundsUntilStopped(t *testing.T) {
	f := newTrackingFixture(t, nil)
	addUser(t, f.repo, "alice")

	tracker := NewTracker(f.svc, f.repo, 10*time.Millisecond)
	tracker.Start()

	waitForVisits(t, f.repo, "alice", 2)
	tracker.StopTracking()
}

func TestTrackerStopPreventsFurtherFetches(t *testing.T) {
	f := newTrackingFixture(t, nil)
	addUser(t, f.repo, "alice")

	tracker := NewTracker(f.svc, f.repo, 10*time.Millisecond)
	tracker.Start()
	waitForVisits(t, f.repo, "alice", 1)
	tracker.StopTracking()

	calls := f.provider.callCount()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, calls, f.provider.callCount(), "no location fetches may start after stop")
}

func TestTrackerStopBeforeStartIsNoOp(t *testing.T) {
	f := newTrackingFixture(t, nil)
	tracker := NewTracker(f.svc, f.repo, time.Minute)

	assert.NotPanics(t, func() {
		tracker.StopTracking()
	})
}

func TestTrackerStopReturnsPromptlyWithLongInterval(t *testing.T) {
	f := newTrackingFixture(t, nil)
	tracker := NewTracker(f.svc, f.repo, time.Hour)
	tracker.Start()

	done := make(chan struct{})
	go func() {
		tracker.StopTracking()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stop did not return while the tracker was waiting out its interval")
	}
	require.Equal(t, 0, f.provider.callCount())
}

func TestTrackerStartIsIdempotent(t *testing.T) {
	f := newTrackingFixture(t, nil)
	tracker := NewTracker(f.svc, f.repo, time.Hour)
	tracker.Start()
	tracker.Start()
	tracker.StopTracking()
}
