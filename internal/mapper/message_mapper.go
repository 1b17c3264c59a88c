package mapper

import (
	"chat-history-be/internal/entity"
	"chat-history-be/internal/model"
)

type MessageMapper struct{}

func NewMessageMapper() *MessageMapper {
	return &MessageMapper{}
}

func (m *MessageMapper) ToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}
	return &entity.Message{
		Id:                   msg.Id,
		Content:              msg.Content,
		CreatedAt:            msg.CreatedAt,
		IsError:              msg.IsError,
		Author:               msg.Author,
		Language:             msg.Language,
		Prompt:               msg.Prompt,
		ParentId:             msg.ParentId,
		Indent:               msg.Indent,
		AuthorIsUser:         msg.AuthorIsUser,
		DisableHumanFeedback: msg.DisableHumanFeedback,
		WaitForAnswer:        msg.WaitForAnswer,
		ConversationId:       msg.ConversationId,
		HumanFeedback:        msg.HumanFeedback,
		HumanFeedbackComment: msg.HumanFeedbackComment,
	}
}

func (m *MessageMapper) ToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}
	return &model.Message{
		Id:                   msg.Id,
		Content:              msg.Content,
		CreatedAt:            msg.CreatedAt,
		IsError:              msg.IsError,
		Author:               msg.Author,
		Language:             msg.Language,
		Prompt:               msg.Prompt,
		ParentId:             msg.ParentId,
		Indent:               msg.Indent,
		AuthorIsUser:         msg.AuthorIsUser,
		DisableHumanFeedback: msg.DisableHumanFeedback,
		WaitForAnswer:        msg.WaitForAnswer,
		ConversationId:       msg.ConversationId,
		HumanFeedback:        msg.HumanFeedback,
		HumanFeedbackComment: msg.HumanFeedbackComment,
	}
}

func (m *MessageMapper) ToEntities(messages []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(messages))
	for i, msg := range messages {
		entities[i] = m.ToEntity(msg)
	}
	return entities
}
