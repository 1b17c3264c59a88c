package mapper

import (
	"chat-history-be/internal/entity"
	"chat-history-be/internal/model"

	"gorm.io/datatypes"
)

type ElementMapper struct{}

func NewElementMapper() *ElementMapper {
	return &ElementMapper{}
}

func (m *ElementMapper) ToEntity(e *model.Element) *entity.Element {
	if e == nil {
		return nil
	}
	return &entity.Element{
		Id:             e.Id,
		ConversationId: e.ConversationId,
		Type:           e.Type,
		Name:           e.Name,
		Mime:           e.Mime,
		Url:            e.Url,
		Display:        e.Display,
		Language:       e.Language,
		Size:           e.Size,
		ForIds:         tagsFromModel(e.ForIds),
		ObjectKey:      e.ObjectKey,
	}
}

func (m *ElementMapper) ToModel(e *entity.Element) *model.Element {
	if e == nil {
		return nil
	}
	return &model.Element{
		Id:             e.Id,
		ConversationId: e.ConversationId,
		Type:           e.Type,
		Name:           e.Name,
		Mime:           e.Mime,
		Url:            e.Url,
		Display:        e.Display,
		Language:       e.Language,
		Size:           e.Size,
		ForIds:         datatypes.NewJSONSlice(tagsOrEmpty(e.ForIds)),
		ObjectKey:      e.ObjectKey,
	}
}

func (m *ElementMapper) ToEntities(elements []*model.Element) []*entity.Element {
	entities := make([]*entity.Element, len(elements))
	for i, e := range elements {
		entities[i] = m.ToEntity(e)
	}
	return entities
}
