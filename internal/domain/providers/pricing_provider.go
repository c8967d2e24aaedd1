package providers

import (
	"context"

	"github.com/google/uuid"
	"github.com/roamly/tourguide-backend/internal/domain/entities"
)

// PricingProvider defines the interface for the external trip pricing
// capability, consumed only by the trip-deals feature.
type PricingProvider interface {
	// Quote returns priced trip deals for the user given their accumulated
	// reward points
	Quote(ctx context.Context, apiKey string, userID uuid.UUID, params entities.TripParameters, rewardPoints int) ([]entities.TripDeal, error)
}
