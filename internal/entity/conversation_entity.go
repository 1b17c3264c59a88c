package entity

import (
	"time"
)

type Conversation struct {
	Id        int64
	CreatedAt time.Time
	IsError   bool
	AppUserId int64
	Tags      []string

	AppUser  *AppUser
	Messages []*Message
	Elements []*Element
}
