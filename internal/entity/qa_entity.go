package entity

import (
	"time"

	"github.com/google/uuid"
)

type QA struct {
	Id        uuid.UUID
	HostId    uuid.UUID
	Name      string
	StartDate time.Time
	EndDate   time.Time
	CreatedAt time.Time
}

// QADetail is a QA row joined with its host user.
type QADetail struct {
	Id        uuid.UUID
	Name      string
	StartDate time.Time
	EndDate   time.Time
	HostId    uuid.UUID
	HostName  string
}
