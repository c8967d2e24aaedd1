package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/roamly/tourguide-backend/internal/domain/entities"
	"github.com/roamly/tourguide-backend/internal/domain/repositories"
	apperrors "github.com/roamly/tourguide-backend/pkg/errors"
)

// MemoryUserStore is an in-memory UserRepository. A map-level RWMutex guards
// registration and lookup; each user carries its own mutex so appends and the
// reward check-then-append sequence are atomic per user while different users
// proceed in parallel.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]*userRecord
}

type userRecord struct {
	mu   sync.Mutex
	user *entities.User
}

// NewMemoryUserStore creates an empty in-memory user store
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{
		users: make(map[string]*userRecord),
	}
}

var _ repositories.UserRepository = (*MemoryUserStore)(nil)

// GetByUserName retrieves a copy of the user by name
func (s *MemoryUserStore) GetByUserName(_ context.Context, userName string) (*entities.User, error) {
	record, err := s.record(userName)
	if err != nil {
		return nil, err
	}

	record.mu.Lock()
	defer record.mu.Unlock()
	return copyUser(record.user), nil
}

// GetAll returns a snapshot copy of every known user. Appends running
// elsewhere are not blocked for the whole snapshot, only per user.
func (s *MemoryUserStore) GetAll(_ context.Context) ([]*entities.User, error) {
	s.mu.RLock()
	records := make([]*userRecord, 0, len(s.users))
	for _, record := range s.users {
		records = append(records, record)
	}
	s.mu.RUnlock()

	users := make([]*entities.User, 0, len(records))
	for _, record := range records {
		record.mu.Lock()
		users = append(users, copyUser(record.user))
		record.mu.Unlock()
	}
	return users, nil
}

// Add registers a new user
func (s *MemoryUserStore) Add(_ context.Context, user *entities.User) error {
	if user == nil || user.UserName == "" {
		return apperrors.NewValidationError("user name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[user.UserName]; exists {
		return apperrors.NewConflictError(fmt.Sprintf("user %s already exists", user.UserName))
	}
	s.users[user.UserName] = &userRecord{user: copyUser(user)}
	return nil
}

// AddVisitedLocation appends a visited location and returns the updated user
func (s *MemoryUserStore) AddVisitedLocation(_ context.Context, userName string, visited entities.VisitedLocation) (*entities.User, error) {
	record, err := s.record(userName)
	if err != nil {
		return nil, err
	}

	record.mu.Lock()
	defer record.mu.Unlock()
	record.user.VisitedLocations = append(record.user.VisitedLocations, visited)
	if visited.TimeVisited.After(record.user.LatestLocationTimestamp) {
		record.user.LatestLocationTimestamp = visited.TimeVisited
	}
	return copyUser(record.user), nil
}

// AddReward appends a reward unless the attraction is already rewarded. The
// check and the append run under the user's lock, so concurrent
// recalculations for the same user cannot double-award an attraction.
func (s *MemoryUserStore) AddReward(_ context.Context, userName string, reward entities.UserReward) (bool, error) {
	record, err := s.record(userName)
	if err != nil {
		return false, err
	}

	record.mu.Lock()
	defer record.mu.Unlock()
	if record.user.HasRewardFor(reward.Attraction.AttractionName) {
		return false, nil
	}
	record.user.Rewards = append(record.user.Rewards, reward)
	return true, nil
}

// GetRewards returns a copy of the user's earned rewards
func (s *MemoryUserStore) GetRewards(_ context.Context, userName string) ([]entities.UserReward, error) {
	record, err := s.record(userName)
	if err != nil {
		return nil, err
	}

	record.mu.Lock()
	defer record.mu.Unlock()
	rewards := make([]entities.UserReward, len(record.user.Rewards))
	copy(rewards, record.user.Rewards)
	return rewards, nil
}

func (s *MemoryUserStore) record(userName string) (*userRecord, error) {
	s.mu.RLock()
	record, exists := s.users[userName]
	s.mu.RUnlock()
	if !exists {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("user %s not found", userName))
	}
	return record, nil
}

// copyUser deep-copies the slices so callers only ever hold transient
// snapshots, never the authoritative record.
func copyUser(u *entities.User) *entities.User {
	c := *u
	c.VisitedLocations = make([]entities.VisitedLocation, len(u.VisitedLocations))
	copy(c.VisitedLocations, u.VisitedLocations)
	c.Rewards = make([]entities.UserReward, len(u.Rewards))
	copy(c.Rewards, u.Rewards)
	return &c
}
