package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/roamly/tourguide-backend/internal/domain/entities"
	"github.com/roamly/tourguide-backend/internal/domain/geo"
	"github.com/roamly/tourguide-backend/internal/domain/providers"
	"github.com/roamly/tourguide-backend/internal/domain/repositories"
	"github.com/roamly/tourguide-backend/internal/infrastructure/observability"
)

const (
	// DefaultProximityBufferMiles is the reward-qualifying distance between
	// a visited location and an attraction
	DefaultProximityBufferMiles = 10.0

	// AttractionProximityRangeMiles bounds the coarse is-near-attraction
	// check used outside reward calculation
	AttractionProximityRangeMiles = 200.0
)

// RewardsService grants rewards for visited locations that fall within the
// proximity buffer of a catalog attraction. The store performs the
// check-then-append atomically per user, so concurrent calculations for the
// same user never double-grant.
type RewardsService struct {
	userRepo       repositories.UserRepository
	catalog        providers.CatalogProvider
	rewardProvider providers.RewardProvider
	metrics        *observability.Metrics
	proximityMiles float64
}

// NewRewardsService creates a rewards service with the default proximity
// buffer
func NewRewardsService(
	userRepo repositories.UserRepository,
	catalog providers.CatalogProvider,
	rewardProvider providers.RewardProvider,
	metrics *observability.Metrics,
) *RewardsService {
	return &RewardsService{
		userRepo:       userRepo,
		catalog:        catalog,
		rewardProvider: rewardProvider,
		metrics:        metrics,
		proximityMiles: DefaultProximityBufferMiles,
	}
}

// SetProximityBuffer overrides the reward-qualifying distance in miles
func (s *RewardsService) SetProximityBuffer(miles float64) {
	s.proximityMiles = miles
}

// SetDefaultProximityBuffer restores the default reward-qualifying distance
func (s *RewardsService) SetDefaultProximityBuffer() {
	s.proximityMiles = DefaultProximityBufferMiles
}

// ProximityBuffer returns the current reward-qualifying distance in miles
func (s *RewardsService) ProximityBuffer() float64 {
	return s.proximityMiles
}

// CalculateRewards grants a reward for every (visited location, attraction)
// pair within the proximity buffer that the user has not been rewarded for
// yet. Scoring or append failures for individual pairs are logged and
// skipped; the method fails only when the attraction catalog is unavailable.
func (s *RewardsService) CalculateRewards(ctx context.Context, user *entities.User) error {
	start := time.Now()
	logger := observability.LoggerFromContext(ctx)

	attractions, err := s.catalog.ListAttractions(ctx)
	if err != nil {
		return err
	}

	visits := user.VisitedLocations
	granted := 0
	for _, visit := range visits {
		for _, attraction := range attractions {
			if user.HasRewardFor(attraction.AttractionName) {
				continue
			}
			if !s.nearAttraction(visit, attraction) {
				continue
			}

			points, err := s.rewardProvider.RewardPoints(ctx, attraction, user.ID)
			if err != nil {
				logger.Warn().Err(err).
					Str("user_name", user.UserName).
					Str("attraction", attraction.AttractionName).
					Msg("Failed to score reward")
				continue
			}

			reward := entities.UserReward{
				VisitedLocation: visit,
				Attraction:      attraction,
				RewardPoints:    points,
			}
			added, err := s.userRepo.AddReward(ctx, user.UserName, reward)
			if err != nil {
				logger.Warn().Err(err).
					Str("user_name", user.UserName).
					Str("attraction", attraction.AttractionName).
					Msg("Failed to append reward")
				continue
			}
			if added {
				granted++
				user.Rewards = append(user.Rewards, reward)
			}
		}
	}

	observability.RecordRewardCalculation(ctx, s.metrics, granted, time.Since(start))
	return nil
}

// IsWithinAttractionProximity reports whether a location falls inside the
// coarse attraction range, independent of the reward buffer
func (s *RewardsService) IsWithinAttractionProximity(attraction entities.Attraction, location entities.Location) bool {
	return geo.Distance(attraction.Location, location) <= AttractionProximityRangeMiles
}

// RewardPoints returns the provider's score for the attraction and user
func (s *RewardsService) RewardPoints(ctx context.Context, attraction entities.Attraction, userID uuid.UUID) (int, error) {
	return s.rewardProvider.RewardPoints(ctx, attraction, userID)
}

func (s *RewardsService) nearAttraction(visit entities.VisitedLocation, attraction entities.Attraction) bool {
	return geo.Distance(attraction.Location, visit.Location) <= s.proximityMiles
}
