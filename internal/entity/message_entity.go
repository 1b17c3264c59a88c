package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Message struct {
	Id                   uuid.UUID
	Content              string
	CreatedAt            time.Time
	IsError              bool
	Author               *string
	Language             *string
	Prompt               datatypes.JSON
	ParentId             *uuid.UUID
	Indent               int
	AuthorIsUser         bool
	DisableHumanFeedback bool
	WaitForAnswer        bool
	ConversationId       int64
	HumanFeedback        *int
	HumanFeedbackComment *string
}
