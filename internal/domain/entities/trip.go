package entities

import "github.com/google/uuid"

// TripParameters describes the trip a user wants priced
type TripParameters struct {
	NumberOfAdults   int `json:"number_of_adults"`
	NumberOfChildren int `json:"number_of_children"`
	NightsStay       int `json:"nights_stay"`
}

// DefaultTripParameters returns the parameters used when a caller does not
// supply any
func DefaultTripParameters() TripParameters {
	return TripParameters{NumberOfAdults: 1, NumberOfChildren: 0, NightsStay: 1}
}

// TripDeal is a priced trip offer returned by the pricing provider
type TripDeal struct {
	Name   string    `json:"name"`
	TripID uuid.UUID `json:"trip_id"`
	Price  float64   `json:"price"`
}
