package model

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	QaId        uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId      uuid.UUID `gorm:"type:uuid;not null;index"`
	Text        string    `gorm:"type:text;not null"`
	DateCreated time.Time `gorm:"autoCreateTime;index"`
}

func (Question) TableName() string {
	return "questions"
}
