package database

import (
	"gorm.io/gorm"

	"chat-history-be/internal/model"
)

// Migrate creates or updates the schema for every persisted table. It is
// idempotent and safe to run at every startup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.AppUser{},
		&model.Conversation{},
		&model.Message{},
		&model.Element{},
	)
}
