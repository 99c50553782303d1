package dto

import "github.com/google/uuid"

type CreateQuestionRequest struct {
	AskedByName string `json:"asked_by_name" validate:"required" errmsg:"Name of Asking User is Missing"`
	Text        string `json:"text" validate:"required" errmsg:"Question is Missing"`
}

type CreateQuestionResponse struct {
	User    UserRef               `json:"user"`
	Details CreateQuestionDetails `json:"details"`
}

type CreateQuestionDetails struct {
	Id   uuid.UUID `json:"id"`
	QaId uuid.UUID `json:"qaId"`
	Text string    `json:"text"`
}

// ThreadEntry is one (question, answer-or-absent) pairing. A question with
// several answers appears once per answer; callers must not assume one entry
// per question.
type ThreadEntry struct {
	Question  ThreadQuestion `json:"question"`
	Answer    ThreadAnswer   `json:"answer"`
	HasAnswer bool           `json:"hasAnswer"`
}

type ThreadQuestion struct {
	User    UserRef               `json:"user"`
	Details ThreadQuestionDetails `json:"details"`
}

type ThreadQuestionDetails struct {
	Id          uuid.UUID `json:"id"`
	Text        string    `json:"text"`
	DateCreated int64     `json:"dateCreated"`
}

type ThreadAnswer struct {
	User    NullableUserRef     `json:"user"`
	Details ThreadAnswerDetails `json:"details"`
}

type ThreadAnswerDetails struct {
	Id          *uuid.UUID `json:"id"`
	Text        *string    `json:"text"`
	ImageURL    *string    `json:"imageURL"`
	DateCreated *int64     `json:"dateCreated"`
}
