package dto

import "github.com/google/uuid"

// UserRef is the {id, name} pair attached to every write response.
type UserRef struct {
	Id   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// NullableUserRef is the answer-side user in a thread entry; both fields are
// null when the question has no answer.
type NullableUserRef struct {
	Id   *uuid.UUID `json:"id"`
	Name *string    `json:"name"`
}
