package repositories

import (
	"context"

	"github.com/roamly/tourguide-backend/internal/domain/entities"
)

// UserRepository defines the interface for the user store. Implementations
// must tolerate concurrent appends for different users and concurrent
// snapshots while appends proceed, and must make AddReward atomic per user
// so that one attraction can never be rewarded twice.
type UserRepository interface {
	// GetByUserName retrieves a user by name; absence is reported as a
	// not-found application error
	GetByUserName(ctx context.Context, userName string) (*entities.User, error)

	// GetAll returns a snapshot of every known user
	GetAll(ctx context.Context) ([]*entities.User, error)

	// Add registers a new user; adding an existing user name is a conflict
	Add(ctx context.Context, user *entities.User) error

	// AddVisitedLocation appends a visited location to the user's history
	// and returns the updated user so callers can chain reward recalculation
	AddVisitedLocation(ctx context.Context, userName string, visited entities.VisitedLocation) (*entities.User, error)

	// AddReward appends a reward unless the user already holds one for the
	// same attraction. It reports whether the reward was added. The
	// check-then-append sequence is atomic with respect to the user.
	AddReward(ctx context.Context, userName string, reward entities.UserReward) (bool, error)

	// GetRewards returns the user's earned rewards
	GetRewards(ctx context.Context, userName string) ([]entities.UserReward, error)
}
