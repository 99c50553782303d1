package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is created lazily the first time a display name shows up and is never
// updated or deleted afterwards. Names are unique and case-sensitive.
type User struct {
	Id        uuid.UUID
	Name      string
	IsHost    bool
	CreatedAt time.Time
}
