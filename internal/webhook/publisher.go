package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/accident_responder_system/internal/models"
)

const (
	eventQueueKey = "incident_webhook_events"
)

// Event types mirrored to the external webhook consumer.
const (
	EventNewIncident  = "new_incident"
	EventStatusUpdate = "status_update"
)

// Event is the payload enqueued for outbound webhook delivery.
type Event struct {
	EventType  string           `json:"event_type"`
	IncidentID string           `json:"incident_id"`
	Status     string           `json:"status"`
	Severity   string           `json:"severity"`
	Timestamp  time.Time        `json:"timestamp"`
	Incident   *models.Incident `json:"incident,omitempty"`
}

// Publisher enqueues incident events for the delivery worker.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher pushes events onto a Redis list consumed by the worker.
type RedisPublisher struct {
	redisClient *redis.Client
}

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{redisClient: client}
}

// Publish appends the event to the left side of the queue list.
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	if err := p.redisClient.LPush(ctx, eventQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
