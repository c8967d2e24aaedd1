package providers

import (
	"context"

	"github.com/roamly/tourguide-backend/internal/domain/entities"
)

// EventBus defines the interface for publishing and subscribing to location
// events
type EventBus interface {
	// Publish publishes an event to all subscribers of the channel
	Publish(ctx context.Context, channel string, event *entities.LocationEvent) error

	// Subscribe subscribes to events on a channel; the returned channel is
	// closed when the subscription ends
	Subscribe(ctx context.Context, channel string) (<-chan *entities.LocationEvent, error)

	// Unsubscribe unsubscribes from a channel
	Unsubscribe(ctx context.Context, channel string) error

	// Close closes the event bus and all subscriptions
	Close() error
}

// Event channel names
const (
	// EventChannelLocationUpdates carries every tracked location
	EventChannelLocationUpdates = "locations:updates"

	// EventChannelUserPrefix is the prefix for per-user location channels
	EventChannelUserPrefix = "locations:user:"
)

// GetUserChannel returns the channel name carrying a single user's location
// events
func GetUserChannel(userName string) string {
	return EventChannelUserPrefix + userName
}
