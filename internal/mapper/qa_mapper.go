package mapper

import (
	"qa-live-be/internal/entity"
	"qa-live-be/internal/model"
)

type QAMapper struct{}

func NewQAMapper() *QAMapper {
	return &QAMapper{}
}

func (m *QAMapper) ToEntity(q *model.QA) *entity.QA {
	if q == nil {
		return nil
	}
	return &entity.QA{
		Id:        q.Id,
		HostId:    q.HostId,
		Name:      q.Name,
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		CreatedAt: q.CreatedAt,
	}
}

func (m *QAMapper) ToModel(q *entity.QA) *model.QA {
	if q == nil {
		return nil
	}
	return &model.QA{
		Id:        q.Id,
		HostId:    q.HostId,
		Name:      q.Name,
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		CreatedAt: q.CreatedAt,
	}
}
