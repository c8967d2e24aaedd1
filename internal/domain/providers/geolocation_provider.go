package providers

import (
	"context"

	"github.com/google/uuid"
	"github.com/roamly/tourguide-backend/internal/domain/entities"
)

// LocationProvider defines the interface for the external geolocation
// capability. Lookups may be slow; callers must treat failures as isolated
// task failures and no retry contract is assumed.
type LocationProvider interface {
	// CurrentLocation returns the user's current position, timestamped at
	// lookup time
	CurrentLocation(ctx context.Context, userID uuid.UUID) (*entities.VisitedLocation, error)
}

// CatalogProvider defines the interface for the attraction catalog. The
// catalog is static for the lifetime of the process and cheap to cache.
type CatalogProvider interface {
	// ListAttractions returns every attraction in the catalog
	ListAttractions(ctx context.Context) ([]entities.Attraction, error)
}
