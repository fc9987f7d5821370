package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"sharenotes-be/internal/pkg/logger"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the in-process event bus and writes each domain
// event to the audit log. It is the default subscriber, keeping the bus
// from backing up when no other consumer is attached.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	log       logger.ILogger
}

func NewConsumerService(pubSub *gochannel.GoChannel, topicName string, log logger.ILogger) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		log:       log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var envelope eventEnvelope
	if err := json.Unmarshal(msg.Payload, &envelope); err != nil {
		cs.log.Error("audit", "Failed to unmarshal event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		// Ack malformed messages to prevent infinite redelivery.
		msg.Ack()
		return
	}

	cs.log.Info("audit", envelope.Type, map[string]interface{}{
		"payload":     envelope.Payload,
		"occurred_at": envelope.OccurredAt,
	})
	msg.Ack()
}
