package specification

import "gorm.io/gorm"

// OwnedByUsername narrows conversations to those owned by the named user
// via a join on app_user. Exact match only.
type OwnedByUsername struct {
	Username string
}

func (s OwnedByUsername) Apply(db *gorm.DB) *gorm.DB {
	// Select only conversation columns; the joined user columns would
	// otherwise shadow id and created_at during the scan.
	return db.Select("conversation.*").
		Joins("JOIN app_user ON app_user.id = conversation.app_user_id").
		Where("app_user.username = ?", s.Username)
}

// ByUsername filters users by their unique username.
type ByUsername struct {
	Username string
}

func (s ByUsername) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("username = ?", s.Username)
}
