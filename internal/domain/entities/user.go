package entities

import (
	"time"

	"github.com/google/uuid"
)

// User represents a tracked user in the system. The user store owns the
// authoritative copy; visited locations and rewards are append-only and
// chronological.
type User struct {
	ID                      uuid.UUID         `json:"id" db:"id"`
	UserName                string            `json:"user_name" db:"user_name"`
	PhoneNumber             string            `json:"phone_number" db:"phone_number"`
	EmailAddress            string            `json:"email_address" db:"email_address"`
	LatestLocationTimestamp time.Time         `json:"latest_location_timestamp" db:"latest_location_timestamp"`
	VisitedLocations        []VisitedLocation `json:"visited_locations" db:"-"`
	Rewards                 []UserReward      `json:"rewards" db:"-"`
}

// NewUser creates a user with the given identity fields
func NewUser(id uuid.UUID, userName, phoneNumber, emailAddress string) *User {
	return &User{
		ID:           id,
		UserName:     userName,
		PhoneNumber:  phoneNumber,
		EmailAddress: emailAddress,
	}
}

// LastVisitedLocation returns the most recently appended visited location,
// or nil when the user has no location history yet
func (u *User) LastVisitedLocation() *VisitedLocation {
	if len(u.VisitedLocations) == 0 {
		return nil
	}
	return &u.VisitedLocations[len(u.VisitedLocations)-1]
}

// HasRewardFor reports whether the user already earned a reward for the
// named attraction
func (u *User) HasRewardFor(attractionName string) bool {
	for _, r := range u.Rewards {
		if r.Attraction.AttractionName == attractionName {
			return true
		}
	}
	return false
}

// TotalRewardPoints sums the points across all earned rewards
func (u *User) TotalRewardPoints() int {
	total := 0
	for _, r := range u.Rewards {
		total += r.RewardPoints
	}
	return total
}

// UserReward records a reward earned for visiting near an attraction.
// A user holds at most one reward per attraction.
type UserReward struct {
	VisitedLocation VisitedLocation `json:"visited_location"`
	Attraction      Attraction      `json:"attraction"`
	RewardPoints    int             `json:"reward_points"`
}
