package model

import (
	"time"

	"gorm.io/datatypes"
)

type Conversation struct {
	Id        int64                       `gorm:"primaryKey;autoIncrement"`
	CreatedAt time.Time                   `gorm:"autoCreateTime"`
	IsError   bool                        `gorm:"default:false"`
	AppUserId int64                       `gorm:"not null;index"`
	Tags      datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`

	AppUser  AppUser   `gorm:"foreignKey:AppUserId"`
	Messages []Message `gorm:"foreignKey:ConversationId"`
	// Elements reference conversations by id only; the association exists
	// for eager loading, there is no FK constraint in the schema.
	Elements []Element `gorm:"foreignKey:ConversationId;constraint:-"`
}

func (Conversation) TableName() string {
	return "conversation"
}
