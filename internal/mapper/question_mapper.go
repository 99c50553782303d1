package mapper

import (
	"qa-live-be/internal/entity"
	"qa-live-be/internal/model"
)

type QuestionMapper struct{}

func NewQuestionMapper() *QuestionMapper {
	return &QuestionMapper{}
}

func (m *QuestionMapper) ToEntity(q *model.Question) *entity.Question {
	if q == nil {
		return nil
	}
	return &entity.Question{
		Id:          q.Id,
		QaId:        q.QaId,
		UserId:      q.UserId,
		Text:        q.Text,
		DateCreated: q.DateCreated,
	}
}

func (m *QuestionMapper) ToModel(q *entity.Question) *model.Question {
	if q == nil {
		return nil
	}
	return &model.Question{
		Id:          q.Id,
		QaId:        q.QaId,
		UserId:      q.UserId,
		Text:        q.Text,
		DateCreated: q.DateCreated,
	}
}
