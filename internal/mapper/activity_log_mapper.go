package mapper

import (
	"encoding/json"

	"qa-live-be/internal/entity"
	"qa-live-be/internal/model"

	"gorm.io/datatypes"
)

type ActivityLogMapper struct{}

func NewActivityLogMapper() *ActivityLogMapper {
	return &ActivityLogMapper{}
}

func (m *ActivityLogMapper) ToModel(l *entity.ActivityLog) *model.ActivityLog {
	if l == nil {
		return nil
	}
	var details datatypes.JSON
	if l.Details != nil {
		if raw, err := json.Marshal(l.Details); err == nil {
			details = raw
		}
	}
	return &model.ActivityLog{
		Id:        l.Id,
		EventType: l.EventType,
		Details:   details,
		CreatedAt: l.CreatedAt,
	}
}

func (m *ActivityLogMapper) ToEntity(l *model.ActivityLog) *entity.ActivityLog {
	if l == nil {
		return nil
	}
	details := make(map[string]interface{})
	if len(l.Details) > 0 {
		_ = json.Unmarshal(l.Details, &details)
	}
	return &entity.ActivityLog{
		Id:        l.Id,
		EventType: l.EventType,
		Details:   details,
		CreatedAt: l.CreatedAt,
	}
}
