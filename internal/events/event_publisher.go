// Package events publishes domain events (route optimized, route rerouted)
// to Kafka for downstream consumers.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

const source = "routing-service"

// EventPublisher publishes events to a Kafka topic.
type EventPublisher struct {
	writer *kafka.Writer
	topic  string
}

// NewEventPublisher configures a low-latency writer: small batch timeout so
// route events reach consumers promptly instead of waiting on a full batch.
func NewEventPublisher(brokers []string, topic string) *EventPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
		Async:        false,
		BatchTimeout: 10 * time.Millisecond,
		BatchSize:    100,
	}

	return &EventPublisher{writer: writer, topic: topic}
}

// PublishRouteEvent publishes a route-scoped event, e.g. "route.optimized"
// or "route.rerouted".
func (p *EventPublisher) PublishRouteEvent(ctx context.Context, routeID, eventType string, data interface{}) error {
	event := map[string]interface{}{
		"event_type": eventType,
		"route_id":   routeID,
		"data":       data,
		"timestamp":  time.Now().UTC(),
		"source":     source,
	}

	eventData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(routeID),
		Value: eventData,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(eventType)},
			{Key: "route-id", Value: []byte(routeID)},
			{Key: "source", Value: []byte(source)},
		},
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}

	return nil
}

// Close closes the Kafka writer.
func (p *EventPublisher) Close() error {
	return p.writer.Close()
}

// Health checks whether Kafka is reachable.
func (p *EventPublisher) Health(ctx context.Context) error {
	conn, err := kafka.DialContext(ctx, "tcp", p.writer.Addr.String())
	if err != nil {
		return fmt.Errorf("kafka health check failed: %w", err)
	}
	defer conn.Close()
	return nil
}
