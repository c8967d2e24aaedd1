package rewards

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/roamly/tourguide-backend/internal/domain/entities"
	"github.com/roamly/tourguide-backend/internal/domain/providers"
)

// SimulatedProvider implements RewardProvider with random reward values and
// an optional artificial delay mimicking a slow external scoring service.
type SimulatedProvider struct {
	maxLatency time.Duration
}

// NewSimulatedProvider creates a simulated reward scoring provider. A zero
// maxLatency disables the artificial delay.
func NewSimulatedProvider(maxLatency time.Duration) providers.RewardProvider {
	return &SimulatedProvider{maxLatency: maxLatency}
}

// RewardPoints returns a random reward value between 1 and 1000
func (p *SimulatedProvider) RewardPoints(ctx context.Context, _ entities.Attraction, _ uuid.UUID) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if p.maxLatency > 0 {
		delay := time.Duration(rand.Int63n(int64(p.maxLatency)))
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(delay):
		}
	}
	return rand.Intn(1000) + 1, nil
}
