package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"sharenotes-be/internal/pkg/logger"
	"sharenotes-be/pkg/events"
	pkgNats "sharenotes-be/pkg/nats"
)

type IPublisherService interface {
	Publish(ctx context.Context, event events.Event)
}

type eventEnvelope struct {
	Type       string                 `json:"type"`
	Payload    map[string]interface{} `json:"payload"`
	OccurredAt time.Time              `json:"occurred_at"`
}

// publisherService puts domain events on the in-process bus and, when a
// NATS publisher is configured, mirrors them to JetStream. Events are
// auxiliary, so failures are logged and swallowed.
type publisherService struct {
	pubSub        *gochannel.GoChannel
	topicName     string
	natsPublisher *pkgNats.Publisher
	log           logger.ILogger
}

func NewPublisherService(
	pubSub *gochannel.GoChannel,
	topicName string,
	natsPublisher *pkgNats.Publisher,
	log logger.ILogger,
) IPublisherService {
	return &publisherService{
		pubSub:        pubSub,
		topicName:     topicName,
		natsPublisher: natsPublisher,
		log:           log,
	}
}

func (s *publisherService) Publish(ctx context.Context, event events.Event) {
	payload, err := json.Marshal(eventEnvelope{
		Type:       event.EventType(),
		Payload:    event.Payload(),
		OccurredAt: event.Timestamp(),
	})
	if err != nil {
		s.log.Error("events", "Failed to marshal event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(s.topicName, msg); err != nil {
		s.log.Error("events", "Failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}

	if s.natsPublisher != nil {
		if err := s.natsPublisher.Publish(ctx, event); err != nil {
			s.log.Warn("events", "Failed to mirror event to NATS", map[string]interface{}{
				"type":  event.EventType(),
				"error": err.Error(),
			})
		}
	}
}
