package entities

import (
	"time"

	"github.com/google/uuid"
)

// LocationEventType identifies the kind of location event
type LocationEventType string

const (
	// LocationEventTracked is published after a visited location is appended
	LocationEventTracked LocationEventType = "location.tracked"
)

// LocationEvent is published on the event bus whenever a user's visited
// location history grows. Consumers (SSE streams, external listeners) use it
// for live location feeds.
type LocationEvent struct {
	ID          string            `json:"id"`
	Type        LocationEventType `json:"type"`
	UserID      uuid.UUID         `json:"user_id"`
	UserName    string            `json:"user_name"`
	Location    Location          `json:"location"`
	TimeVisited time.Time         `json:"time_visited"`
	PublishedAt time.Time         `json:"published_at"`
}
