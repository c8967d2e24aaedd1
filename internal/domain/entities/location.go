package entities

import (
	"time"

	"github.com/google/uuid"
)

// Location represents geographical coordinates in decimal degrees
type Location struct {
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
}

// VisitedLocation is a single timestamped position recorded for a user.
// It is immutable once created; the user store only ever appends them.
type VisitedLocation struct {
	UserID      uuid.UUID `json:"user_id" db:"user_id"`
	Location    Location  `json:"location" db:"-"`
	TimeVisited time.Time `json:"time_visited" db:"time_visited"`
}

// UserLocation is a projection of a user's last known position, used by
// the all-current-locations operation
type UserLocation struct {
	UserID   uuid.UUID `json:"user_id"`
	Location Location  `json:"location"`
}
