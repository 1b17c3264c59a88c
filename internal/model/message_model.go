package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Message struct {
	Id                   uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Content              string         `gorm:"type:text;not null"`
	CreatedAt            time.Time      `gorm:"autoCreateTime"`
	IsError              bool           `gorm:"default:false"`
	Author               *string        `gorm:"type:text"`
	Language             *string        `gorm:"type:text"`
	Prompt               datatypes.JSON `gorm:"type:jsonb"`
	ParentId             *uuid.UUID     `gorm:"type:uuid;index"`
	Indent               int            `gorm:"default:0"`
	AuthorIsUser         bool           `gorm:"default:false"`
	DisableHumanFeedback bool           `gorm:"default:false"`
	WaitForAnswer        bool           `gorm:"default:false"`
	ConversationId       int64          `gorm:"not null;index"`
	HumanFeedback        *int
	HumanFeedbackComment *string `gorm:"type:text"`
}

func (Message) TableName() string {
	return "message"
}
