package dto

import "github.com/google/uuid"

type CreateAnswerRequest struct {
	AnsweredBy string  `json:"answered_by" validate:"required" errmsg:"Name of Answering User is Missing"`
	Text       *string `json:"text"`
	ImageURL   *string `json:"image_url"`
}

type CreateAnswerResponse struct {
	User    UserRef             `json:"user"`
	Details CreateAnswerDetails `json:"details"`
}

type CreateAnswerDetails struct {
	AnswerId   uuid.UUID `json:"answerId"`
	QuestionId uuid.UUID `json:"questionId"`
	Text       *string   `json:"text"`
	ImageURL   *string   `json:"imageURL"`
}
