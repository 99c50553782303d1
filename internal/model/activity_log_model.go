package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ActivityLog struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EventType string         `gorm:"type:varchar(50);not null;index"`
	Details   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time      `gorm:"default:now();not null;index"`
}

func (ActivityLog) TableName() string {
	return "activity_logs"
}
