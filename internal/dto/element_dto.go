package dto

type CreateElementRequest struct {
	ConversationId NumericID `json:"conversationId" validate:"required"`
	Type           string    `json:"type" validate:"required"`
	Name           string    `json:"name" validate:"required"`
	Display        string    `json:"display" validate:"required"`
	ForIds         []string  `json:"forIds"`
	Url            *string   `json:"url"`
	ObjectKey      *string   `json:"objectKey"`
	Size           *string   `json:"size"`
	Language       *string   `json:"language"`
	Mime           *string   `json:"mime"`
}

type ElementPayload struct {
	Id             string   `json:"id"`
	ConversationId int64    `json:"conversationId"`
	Type           string   `json:"type"`
	Name           string   `json:"name"`
	Mime           *string  `json:"mime"`
	Url            *string  `json:"url"`
	Display        *string  `json:"display"`
	Language       *string  `json:"language"`
	Size           *string  `json:"size"`
	ForIds         []string `json:"forIds"`
	ObjectKey      *string  `json:"objectKey"`
}
