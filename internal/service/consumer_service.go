package service

import (
	"context"
	"encoding/json"
	"time"

	"qa-live-be/internal/dto"
	"qa-live-be/internal/entity"
	"qa-live-be/internal/pkg/logger"
	"qa-live-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains activity events off the in-process bus and persists
// them as activity_logs rows.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
	sysLogger  logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
		sysLogger:  sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ActivityEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.sysLogger.Error("consumer", "Failed to unmarshal activity event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	occurredAt := payload.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	err := uow.ActivityLogRepository().Create(ctx, &entity.ActivityLog{
		Id:        uuid.New(),
		EventType: payload.EventType,
		Details:   payload.Details,
		CreatedAt: occurredAt,
	})
	if err != nil {
		cs.sysLogger.Error("consumer", "Failed to persist activity event", map[string]interface{}{
			"event": payload.EventType,
			"error": err.Error(),
		})
	}

	msg.Ack()
}
