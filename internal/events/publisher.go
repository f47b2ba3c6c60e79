package events

import "context"

// Publisher is the interface the application layer depends on, so a
// misconfigured or absent Kafka cluster degrades to a no-op instead of
// blocking route optimization.
type Publisher interface {
	PublishRouteEvent(ctx context.Context, routeID, eventType string, data interface{}) error
	Close() error
}

// NoOpPublisher discards every event. Used when no Kafka brokers are
// configured.
type NoOpPublisher struct{}

// NewNoOpPublisher constructs a publisher that does nothing.
func NewNoOpPublisher() *NoOpPublisher {
	return &NoOpPublisher{}
}

func (NoOpPublisher) PublishRouteEvent(ctx context.Context, routeID, eventType string, data interface{}) error {
	return nil
}

func (NoOpPublisher) Close() error { return nil }
