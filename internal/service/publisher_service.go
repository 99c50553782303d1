package service

import (
	"context"
	"encoding/json"

	"qa-live-be/internal/dto"
	"qa-live-be/internal/pkg/logger"
	"qa-live-be/pkg/events"
	pktNats "qa-live-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	Publish(ctx context.Context, event events.Event) error
}

type publisherService struct {
	topicName string
	pubSub    *gochannel.GoChannel
	natsPub   *pktNats.Publisher // optional external mirror, may be nil
	sysLogger logger.ILogger
}

func NewPublisherService(
	topicName string,
	pubSub *gochannel.GoChannel,
	natsPub *pktNats.Publisher,
	sysLogger logger.ILogger,
) IPublisherService {
	return &publisherService{
		topicName: topicName,
		pubSub:    pubSub,
		natsPub:   natsPub,
		sysLogger: sysLogger,
	}
}

func (s *publisherService) Publish(ctx context.Context, event events.Event) error {
	msg := dto.ActivityEventMessage{
		EventType:  event.EventType(),
		Details:    event.Payload(),
		OccurredAt: event.Timestamp(),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	if err := s.pubSub.Publish(s.topicName, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		return err
	}

	if s.natsPub != nil {
		if err := s.natsPub.Publish(ctx, event); err != nil {
			// The in-process bus is the source of truth; the mirror is best
			// effort.
			s.sysLogger.Warn("publisher", "Failed to mirror event to NATS", map[string]interface{}{
				"event": event.EventType(),
				"error": err.Error(),
			})
		}
	}

	return nil
}
