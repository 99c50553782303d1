package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLog struct {
	Id        uuid.UUID
	EventType string
	Details   map[string]interface{}
	CreatedAt time.Time
}
