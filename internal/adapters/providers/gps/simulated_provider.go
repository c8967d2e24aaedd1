package gps

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/roamly/tourguide-backend/internal/domain/entities"
)

const (
	minLatitude = -85.05112878
	maxLatitude = 85.05112878
)

// SimulatedProvider implements both LocationProvider and CatalogProvider.
// Lookups return a random position and sleep up to maxLatency to mimic the
// unspecified, possibly nontrivial latency of a real geolocation service.
type SimulatedProvider struct {
	maxLatency time.Duration
}

// NewSimulatedProvider creates a simulated geolocation provider. A zero
// maxLatency disables the artificial delay.
func NewSimulatedProvider(maxLatency time.Duration) *SimulatedProvider {
	return &SimulatedProvider{maxLatency: maxLatency}
}

// CurrentLocation returns a random position for the user, timestamped now
func (p *SimulatedProvider) CurrentLocation(ctx context.Context, userID uuid.UUID) (*entities.VisitedLocation, error) {
	if err := p.sleep(ctx); err != nil {
		return nil, err
	}
	return &entities.VisitedLocation{
		UserID: userID,
		Location: entities.Location{
			Latitude:  minLatitude + rand.Float64()*(maxLatitude-minLatitude),
			Longitude: -180 + rand.Float64()*360,
		},
		TimeVisited: time.Now().UTC(),
	}, nil
}

// ListAttractions returns a copy of the fixed attraction catalog
func (p *SimulatedProvider) ListAttractions(_ context.Context) ([]entities.Attraction, error) {
	attractions := make([]entities.Attraction, len(attractionCatalog))
	copy(attractions, attractionCatalog)
	return attractions, nil
}

func (p *SimulatedProvider) sleep(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.maxLatency <= 0 {
		return nil
	}
	delay := time.Duration(rand.Int63n(int64(p.maxLatency)))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}
