package model

import (
	"time"

	"gorm.io/datatypes"
)

type AppUser struct {
	Id        int64                       `gorm:"primaryKey;autoIncrement"`
	Username  string                      `gorm:"type:varchar(50);uniqueIndex;not null"`
	CreatedAt time.Time                   `gorm:"autoCreateTime"`
	Role      string                      `gorm:"type:varchar(50);not null;default:'USER'"`
	Image     *string                     `gorm:"type:varchar(255)"`
	Provider  *string                     `gorm:"type:varchar(50)"`
	Tags      datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'"`
}

func (AppUser) TableName() string {
	return "app_user"
}
