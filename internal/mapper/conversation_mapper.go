package mapper

import (
	"chat-history-be/internal/entity"
	"chat-history-be/internal/model"

	"gorm.io/datatypes"
)

type ConversationMapper struct {
	userMapper    *AppUserMapper
	messageMapper *MessageMapper
	elementMapper *ElementMapper
}

func NewConversationMapper() *ConversationMapper {
	return &ConversationMapper{
		userMapper:    NewAppUserMapper(),
		messageMapper: NewMessageMapper(),
		elementMapper: NewElementMapper(),
	}
}

func (m *ConversationMapper) ToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}
	e := &entity.Conversation{
		Id:        c.Id,
		CreatedAt: c.CreatedAt,
		IsError:   c.IsError,
		AppUserId: c.AppUserId,
		Tags:      tagsFromModel(c.Tags),
	}
	if c.AppUser.Id != 0 {
		e.AppUser = m.userMapper.ToEntity(&c.AppUser)
	}
	e.Messages = make([]*entity.Message, len(c.Messages))
	for i := range c.Messages {
		e.Messages[i] = m.messageMapper.ToEntity(&c.Messages[i])
	}
	e.Elements = make([]*entity.Element, len(c.Elements))
	for i := range c.Elements {
		e.Elements[i] = m.elementMapper.ToEntity(&c.Elements[i])
	}
	return e
}

func (m *ConversationMapper) ToModel(c *entity.Conversation) *model.Conversation {
	if c == nil {
		return nil
	}
	return &model.Conversation{
		Id:        c.Id,
		CreatedAt: c.CreatedAt,
		IsError:   c.IsError,
		AppUserId: c.AppUserId,
		Tags:      datatypes.NewJSONSlice(tagsOrEmpty(c.Tags)),
	}
}

func (m *ConversationMapper) ToEntities(conversations []*model.Conversation) []*entity.Conversation {
	entities := make([]*entity.Conversation, len(conversations))
	for i, c := range conversations {
		entities[i] = m.ToEntity(c)
	}
	return entities
}
