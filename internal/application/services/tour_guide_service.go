package services

import (
	"context"
	"sort"

	"github.com/roamly/tourguide-backend/internal/domain/entities"
	"github.com/roamly/tourguide-backend/internal/domain/geo"
	"github.com/roamly/tourguide-backend/internal/domain/providers"
	"github.com/roamly/tourguide-backend/internal/domain/repositories"
)

const (
	// NearbyAttractionLimit caps how many attractions the nearby query
	// returns
	NearbyAttractionLimit = 5

	// tripPricerAPIKey identifies this deployment to the pricing provider
	tripPricerAPIKey = "test-server-api-key"
)

// TourGuideService exposes the user-facing operations: user lookups, live
// location queries, nearby attractions, and trip deals.
type TourGuideService struct {
	userRepo        repositories.UserRepository
	catalog         providers.CatalogProvider
	pricingProvider providers.PricingProvider
	trackingService *TrackingService
	rewardsService  *RewardsService
}

// NewTourGuideService creates the user-facing service
func NewTourGuideService(
	userRepo repositories.UserRepository,
	catalog providers.CatalogProvider,
	pricingProvider providers.PricingProvider,
	trackingService *TrackingService,
	rewardsService *RewardsService,
) *TourGuideService {
	return &TourGuideService{
		userRepo:        userRepo,
		catalog:         catalog,
		pricingProvider: pricingProvider,
		trackingService: trackingService,
		rewardsService:  rewardsService,
	}
}

// GetUser retrieves a user by name
func (s *TourGuideService) GetUser(ctx context.Context, userName string) (*entities.User, error) {
	return s.userRepo.GetByUserName(ctx, userName)
}

// GetAllUsers returns a snapshot of every known user
func (s *TourGuideService) GetAllUsers(ctx context.Context) ([]*entities.User, error) {
	return s.userRepo.GetAll(ctx)
}

// AddUser registers a new user
func (s *TourGuideService) AddUser(ctx context.Context, user *entities.User) error {
	return s.userRepo.Add(ctx, user)
}

// GetUserRewards returns the rewards the user has earned so far
func (s *TourGuideService) GetUserRewards(ctx context.Context, userName string) ([]entities.UserReward, error) {
	return s.userRepo.GetRewards(ctx, userName)
}

// TrackUser runs the tracking pipeline for the named user and returns the
// freshly fetched location
func (s *TourGuideService) TrackUser(ctx context.Context, userName string) (*entities.VisitedLocation, error) {
	user, err := s.userRepo.GetByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}
	return s.trackingService.TrackUser(ctx, user)
}

// GetUserLocation returns the user's last visited location, fetching a fresh
// one through the tracking pipeline when the user has no history yet
func (s *TourGuideService) GetUserLocation(ctx context.Context, userName string) (*entities.VisitedLocation, error) {
	user, err := s.userRepo.GetByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}
	if last := user.LastVisitedLocation(); last != nil {
		return last, nil
	}
	return s.trackingService.TrackUser(ctx, user)
}

// GetAllCurrentLocations returns the last known position of every user that
// has location history. Users without history are omitted.
func (s *TourGuideService) GetAllCurrentLocations(ctx context.Context) ([]entities.UserLocation, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	locations := make([]entities.UserLocation, 0, len(users))
	for _, user := range users {
		last := user.LastVisitedLocation()
		if last == nil {
			continue
		}
		locations = append(locations, entities.UserLocation{
			UserID:   user.ID,
			Location: last.Location,
		})
	}
	return locations, nil
}

// GetNearbyAttractions returns the attractions closest to the visited
// location, at most NearbyAttractionLimit of them, ordered by distance with
// ties broken by attraction name. Each entry carries the live reward points
// the provider would grant for that attraction.
func (s *TourGuideService) GetNearbyAttractions(ctx context.Context, visited entities.VisitedLocation) ([]entities.NearbyAttraction, error) {
	attractions, err := s.catalog.ListAttractions(ctx)
	if err != nil {
		return nil, err
	}

	type rankedAttraction struct {
		attraction entities.Attraction
		distance   float64
	}
	ranked := make([]rankedAttraction, 0, len(attractions))
	for _, attraction := range attractions {
		ranked = append(ranked, rankedAttraction{
			attraction: attraction,
			distance:   geo.Distance(attraction.Location, visited.Location),
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].distance != ranked[j].distance {
			return ranked[i].distance < ranked[j].distance
		}
		return ranked[i].attraction.AttractionName < ranked[j].attraction.AttractionName
	})

	limit := NearbyAttractionLimit
	if len(ranked) < limit {
		limit = len(ranked)
	}

	nearby := make([]entities.NearbyAttraction, 0, limit)
	for _, r := range ranked[:limit] {
		points, err := s.rewardsService.RewardPoints(ctx, r.attraction, visited.UserID)
		if err != nil {
			return nil, err
		}
		nearby = append(nearby, entities.NearbyAttraction{
			AttractionName:     r.attraction.AttractionName,
			AttractionLocation: r.attraction.Location,
			UserLocation:       visited.Location,
			DistanceMiles:      r.distance,
			RewardPoints:       points,
		})
	}
	return nearby, nil
}

// GetTripDeals quotes trip deals for the user, discounted by their
// accumulated reward points
func (s *TourGuideService) GetTripDeals(ctx context.Context, userName string, params entities.TripParameters) ([]entities.TripDeal, error) {
	user, err := s.userRepo.GetByUserName(ctx, userName)
	if err != nil {
		return nil, err
	}
	return s.pricingProvider.Quote(ctx, tripPricerAPIKey, user.ID, params, user.TotalRewardPoints())
}
