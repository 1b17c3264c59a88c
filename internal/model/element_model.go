package model

import (
	"gorm.io/datatypes"
)

type Element struct {
	Id             int64   `gorm:"primaryKey;autoIncrement"`
	ConversationId int64   `gorm:"not null;index"`
	Type           string  `gorm:"type:varchar(50);not null"`
	Name           string  `gorm:"type:varchar(255);not null"`
	Mime           *string `gorm:"type:varchar(100)"`
	Url            *string `gorm:"type:text"`
	Display        *string `gorm:"type:varchar(50)"`
	Language       *string `gorm:"type:varchar(50)"`
	// Size is string-typed on the wire despite being conceptually numeric.
	Size      *string                     `gorm:"type:varchar(50)"`
	ForIds    datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
	ObjectKey *string                     `gorm:"type:text"`
}

func (Element) TableName() string {
	return "element"
}
