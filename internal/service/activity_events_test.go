package service

import (
	"context"
	"testing"
	"time"

	"qa-live-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// Round trip over the in-process bus: publish a domain event, let the
// consumer drain it, and check the activity log row it writes.
func TestActivityEventRoundTrip(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	factory := newFakeUowFactory()
	const topic = "QA_ACTIVITY_TEST"

	consumer := NewConsumerService(pubSub, topic, factory, nopLogger{})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	assert.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService(topic, pubSub, nil, nopLogger{})
	event := events.QuestionAsked{
		QuestionId: uuid.New(),
		QaId:       uuid.New(),
		UserId:     uuid.New(),
		OccurredAt: time.Now(),
	}
	assert.NoError(t, publisher.Publish(ctx, event))

	assert.Eventually(t, func() bool {
		factory.uow.activityLog.mu.Lock()
		defer factory.uow.activityLog.mu.Unlock()
		return len(factory.uow.activityLog.logs) == 1
	}, 2*time.Second, 10*time.Millisecond)

	factory.uow.activityLog.mu.Lock()
	logged := factory.uow.activityLog.logs[0]
	factory.uow.activityLog.mu.Unlock()

	assert.Equal(t, "question.asked", logged.EventType)
	assert.Equal(t, event.QuestionId.String(), logged.Details["question_id"])
	assert.Equal(t, event.QaId.String(), logged.Details["qa_id"])
	assert.False(t, logged.CreatedAt.IsZero())
}
