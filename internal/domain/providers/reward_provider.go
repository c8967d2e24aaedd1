package providers

import (
	"context"

	"github.com/google/uuid"
	"github.com/roamly/tourguide-backend/internal/domain/entities"
)

// RewardProvider defines the interface for the external reward scoring
// capability. Scoring may be slow.
type RewardProvider interface {
	// RewardPoints returns the reward value the provider assigns for the
	// given attraction and user
	RewardPoints(ctx context.Context, attraction entities.Attraction, userID uuid.UUID) (int, error)
}
