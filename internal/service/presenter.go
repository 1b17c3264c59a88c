package service

import (
	"strconv"

	"chat-history-be/internal/dto"
	"chat-history-be/internal/entity"
	"chat-history-be/internal/pkg/timeutil"
)

// Presentation helpers shared by the read and write paths. Timestamp
// encodings are per-field: users and conversations carry epoch millis,
// messages carry ISO strings.

func toAppUserPayload(u *entity.AppUser) dto.AppUserPayload {
	return dto.AppUserPayload{
		Id:        strconv.FormatInt(u.Id, 10),
		Username:  u.Username,
		CreatedAt: timeutil.UnixMillis(u.CreatedAt),
		Role:      string(u.Role),
		Image:     u.Image,
		Provider:  u.Provider,
		Tags:      u.Tags,
	}
}

func toMessagePayload(m *entity.Message) dto.MessagePayload {
	var parentId *string
	if m.ParentId != nil {
		s := m.ParentId.String()
		parentId = &s
	}
	return dto.MessagePayload{
		Id:                   m.Id.String(),
		IsError:              m.IsError,
		ParentId:             parentId,
		Indent:               m.Indent,
		Author:               m.Author,
		Content:              m.Content,
		WaitForAnswer:        m.WaitForAnswer,
		HumanFeedback:        m.HumanFeedback,
		HumanFeedbackComment: m.HumanFeedbackComment,
		DisableHumanFeedback: m.DisableHumanFeedback,
		Language:             m.Language,
		Prompt:               m.Prompt,
		AuthorIsUser:         m.AuthorIsUser,
		CreatedAt:            timeutil.ExportISO(m.CreatedAt),
	}
}

func toElementPayload(e *entity.Element) dto.ElementPayload {
	return dto.ElementPayload{
		Id:             strconv.FormatInt(e.Id, 10),
		ConversationId: e.ConversationId,
		Type:           e.Type,
		Name:           e.Name,
		Mime:           e.Mime,
		Url:            e.Url,
		Display:        e.Display,
		Language:       e.Language,
		Size:           e.Size,
		ForIds:         e.ForIds,
		ObjectKey:      e.ObjectKey,
	}
}

func toConversationPayload(c *entity.Conversation, user *entity.AppUser, messages []*entity.Message, elements []*entity.Element) dto.ConversationPayload {
	payload := dto.ConversationPayload{
		Id:        strconv.FormatInt(c.Id, 10),
		CreatedAt: timeutil.UnixMillis(c.CreatedAt),
		Tags:      c.Tags,
		Metadata:  map[string]interface{}{},
		Messages:  make([]dto.MessagePayload, len(messages)),
		Elements:  make([]dto.ElementPayload, len(elements)),
	}
	if user != nil {
		payload.AppUser = toAppUserPayload(user)
	}
	for i, m := range messages {
		payload.Messages[i] = toMessagePayload(m)
	}
	for i, e := range elements {
		payload.Elements[i] = toElementPayload(e)
	}
	return payload
}
