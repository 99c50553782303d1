package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "qa.created").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type QACreated struct {
	QaId       uuid.UUID
	HostId     uuid.UUID
	Name       string
	OccurredAt time.Time
}

func (e QACreated) EventType() string { return "qa.created" }

func (e QACreated) Payload() map[string]interface{} {
	return map[string]interface{}{
		"qa_id":   e.QaId.String(),
		"host_id": e.HostId.String(),
		"name":    e.Name,
	}
}

func (e QACreated) Timestamp() time.Time { return e.OccurredAt }

type QuestionAsked struct {
	QuestionId uuid.UUID
	QaId       uuid.UUID
	UserId     uuid.UUID
	OccurredAt time.Time
}

func (e QuestionAsked) EventType() string { return "question.asked" }

func (e QuestionAsked) Payload() map[string]interface{} {
	return map[string]interface{}{
		"question_id": e.QuestionId.String(),
		"qa_id":       e.QaId.String(),
		"user_id":     e.UserId.String(),
	}
}

func (e QuestionAsked) Timestamp() time.Time { return e.OccurredAt }

type AnswerPosted struct {
	AnswerId   uuid.UUID
	QuestionId uuid.UUID
	UserId     uuid.UUID
	HasText    bool
	HasImage   bool
	OccurredAt time.Time
}

func (e AnswerPosted) EventType() string { return "answer.posted" }

func (e AnswerPosted) Payload() map[string]interface{} {
	return map[string]interface{}{
		"answer_id":   e.AnswerId.String(),
		"question_id": e.QuestionId.String(),
		"user_id":     e.UserId.String(),
		"has_text":    e.HasText,
		"has_image":   e.HasImage,
	}
}

func (e AnswerPosted) Timestamp() time.Time { return e.OccurredAt }
