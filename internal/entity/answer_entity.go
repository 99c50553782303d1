package entity

import (
	"time"

	"github.com/google/uuid"
)

// Answer carries text, an image URL, or both. Nothing constrains a question
// to a single answer; readers of the thread must tolerate fan-out.
type Answer struct {
	Id              uuid.UUID
	QuestionId      uuid.UUID
	AnsweringUserId uuid.UUID
	Text            *string
	ImageURL        *string
	DateCreated     time.Time
}
