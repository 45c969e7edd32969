package mapper

import (
	"edge-journal-be/internal/entity"
	"edge-journal-be/internal/model"

	"gorm.io/datatypes"
)

type RawEventMapper struct{}

func NewRawEventMapper() *RawEventMapper {
	return &RawEventMapper{}
}

func (m *RawEventMapper) ToEntity(e *model.RawEvent) *entity.RawEvent {
	if e == nil {
		return nil
	}

	return &entity.RawEvent{
		Id:        e.Id,
		SessionId: e.SessionId,
		Source:    e.Source,
		Timestamp: e.Timestamp,
		Text:      e.Text,
		Metadata:  map[string]interface{}(e.Metadata),
		CreatedAt: e.CreatedAt,
	}
}

func (m *RawEventMapper) ToModel(e *entity.RawEvent) *model.RawEvent {
	if e == nil {
		return nil
	}

	return &model.RawEvent{
		Id:        e.Id,
		SessionId: e.SessionId,
		Source:    e.Source,
		Timestamp: e.Timestamp,
		Text:      e.Text,
		Metadata:  datatypes.JSONMap(e.Metadata),
		CreatedAt: e.CreatedAt,
	}
}

func (m *RawEventMapper) ToEntities(events []*model.RawEvent) []*entity.RawEvent {
	entities := make([]*entity.RawEvent, len(events))
	for i, e := range events {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
