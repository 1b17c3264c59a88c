package dto

import (
	"gorm.io/datatypes"
)

type CreateMessageRequest struct {
	// The caller supplies the message id; it must be a UUID-format token.
	Id             string    `json:"id" validate:"required"`
	Author         string    `json:"author" validate:"required"`
	Content        string    `json:"content" validate:"required"`
	ConversationId NumericID `json:"conversationId" validate:"required"`
	// CreatedAt accepts a fractional Unix timestamp (seconds) or an
	// ISO-8601 string; nil defaults to the insert time.
	CreatedAt            interface{}    `json:"createdAt"`
	Language             *string        `json:"language"`
	Prompt               datatypes.JSON `json:"prompt"`
	IsError              bool           `json:"isError"`
	ParentId             *string        `json:"parentId"`
	Indent               int            `json:"indent"`
	AuthorIsUser         bool           `json:"authorIsUser"`
	DisableHumanFeedback bool           `json:"disableHumanFeedback"`
	WaitForAnswer        bool           `json:"waitForAnswer"`
}

type UpdateMessageRequest struct {
	MessageId            string         `json:"messageId" validate:"required"`
	Author               string         `json:"author" validate:"required"`
	Content              string         `json:"content" validate:"required"`
	ParentId             *string        `json:"parentId"`
	Language             *string        `json:"language"`
	Prompt               datatypes.JSON `json:"prompt"`
	DisableHumanFeedback *bool          `json:"disableHumanFeedback"`
}

type DeleteMessageRequest struct {
	Id string `json:"id" validate:"required"`
}

type SetHumanFeedbackRequest struct {
	MessageId            string  `json:"messageId" validate:"required"`
	HumanFeedback        *int    `json:"humanFeedback" validate:"required"`
	HumanFeedbackComment *string `json:"humanFeedbackComment"`
}

// MessagePayload is the wire shape of a message. CreatedAt is an ISO-8601
// string with an explicit +00:00 offset, unlike user and conversation
// timestamps which are epoch milliseconds.
type MessagePayload struct {
	Id                   string         `json:"id"`
	IsError              bool           `json:"isError"`
	ParentId             *string        `json:"parentId"`
	Indent               int            `json:"indent"`
	Author               *string        `json:"author"`
	Content              string         `json:"content"`
	WaitForAnswer        bool           `json:"waitForAnswer"`
	HumanFeedback        *int           `json:"humanFeedback"`
	HumanFeedbackComment *string        `json:"humanFeedbackComment"`
	DisableHumanFeedback bool           `json:"disableHumanFeedback"`
	Language             *string        `json:"language"`
	Prompt               datatypes.JSON `json:"prompt,omitempty"`
	AuthorIsUser         bool           `json:"authorIsUser"`
	CreatedAt            string         `json:"createdAt"`
}

type SimpleMessagePayload struct {
	Id string `json:"id"`
}

type HumanFeedbackPayload struct {
	Id                   string  `json:"id"`
	HumanFeedback        *int    `json:"humanFeedback"`
	HumanFeedbackComment *string `json:"humanFeedbackComment"`
}
