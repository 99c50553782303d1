package mapper

import (
	"qa-live-be/internal/entity"
	"qa-live-be/internal/model"
)

type AnswerMapper struct{}

func NewAnswerMapper() *AnswerMapper {
	return &AnswerMapper{}
}

func (m *AnswerMapper) ToEntity(a *model.Answer) *entity.Answer {
	if a == nil {
		return nil
	}
	return &entity.Answer{
		Id:              a.Id,
		QuestionId:      a.QuestionId,
		AnsweringUserId: a.AnsweringUserId,
		Text:            a.Text,
		ImageURL:        a.ImageURL,
		DateCreated:     a.DateCreated,
	}
}

func (m *AnswerMapper) ToModel(a *entity.Answer) *model.Answer {
	if a == nil {
		return nil
	}
	return &model.Answer{
		Id:              a.Id,
		QuestionId:      a.QuestionId,
		AnsweringUserId: a.AnsweringUserId,
		Text:            a.Text,
		ImageURL:        a.ImageURL,
		DateCreated:     a.DateCreated,
	}
}
