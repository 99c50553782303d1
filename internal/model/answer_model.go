package model

import (
	"time"

	"github.com/google/uuid"
)

// No uniqueness on QuestionId: the schema permits several answers per
// question, and the thread query fans out accordingly.
type Answer struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QuestionId      uuid.UUID `gorm:"type:uuid;not null;index"`
	AnsweringUserId uuid.UUID `gorm:"type:uuid;not null;index"`
	Text            *string   `gorm:"type:text"`
	ImageURL        *string   `gorm:"type:text"`
	DateCreated     time.Time `gorm:"autoCreateTime"`
}

func (Answer) TableName() string {
	return "answers"
}
