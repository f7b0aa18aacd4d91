package core

import "context"

// EventPublisher pushes domain events to a message broker. Publishing
// is best effort: callers must not fail their operation when the
// broker is unavailable.
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
	Close() error
}
