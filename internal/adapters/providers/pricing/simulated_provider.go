package pricing

import (
	"context"
	"math/rand"

	"github.com/google/uuid"
	"github.com/roamly/tourguide-backend/internal/domain/entities"
	"github.com/roamly/tourguide-backend/internal/domain/providers"
)

// dealCount is how many offers a quote returns
const dealCount = 5

var providerNames = []string{
	"Holiday Travels",
	"Enterprize Ventures Limited",
	"Sunny Days",
	"FlyAway Trips",
	"United Partners Vacations",
	"Dream Trips",
	"Live Free",
	"Dancing Waves Cruselines and Partners",
	"AdventureCo",
	"Cure-Your-Blues",
}

// SimulatedProvider implements PricingProvider with randomized offers in the
// shape a real trip pricing service would return.
type SimulatedProvider struct{}

// NewSimulatedProvider creates a simulated trip pricing provider
func NewSimulatedProvider() providers.PricingProvider {
	return &SimulatedProvider{}
}

// Quote returns five priced deals. Accumulated reward points discount the
// price; a larger party and a longer stay raise it.
func (p *SimulatedProvider) Quote(ctx context.Context, _ string, _ uuid.UUID, params entities.TripParameters, rewardPoints int) ([]entities.TripDeal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	deals := make([]entities.TripDeal, 0, dealCount)
	for i := 0; i < dealCount; i++ {
		base := float64(rand.Intn(450) + 50)
		price := base +
			float64(params.NightsStay)*120 +
			float64(params.NumberOfAdults)*60 +
			float64(params.NumberOfChildren)*25 -
			float64(rewardPoints)
		if price < 0 {
			price = 0
		}
		deals = append(deals, entities.TripDeal{
			Name:   providerNames[rand.Intn(len(providerNames))],
			TripID: uuid.New(),
			Price:  price,
		})
	}
	return deals, nil
}
