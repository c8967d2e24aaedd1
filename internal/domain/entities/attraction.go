package entities

// Attraction is a catalog entry supplied by the attraction catalog
// provider. Attractions are immutable and read-only to this service.
type Attraction struct {
	AttractionName string   `json:"attraction_name" db:"attraction_name"`
	City           string   `json:"city" db:"city"`
	State          string   `json:"state" db:"state"`
	Location       Location `json:"location" db:"-"`
}

// NearbyAttraction is a derived, non-persisted projection of an attraction
// relative to a visited location
type NearbyAttraction struct {
	AttractionName     string   `json:"attraction_name"`
	AttractionLocation Location `json:"attraction_location"`
	UserLocation       Location `json:"user_location"`
	DistanceMiles      float64  `json:"distance_miles"`
	RewardPoints       int      `json:"reward_points"`
}
