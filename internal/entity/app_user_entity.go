package entity

import (
	"time"
)

type Role string

const (
	RoleUser      Role = "USER"
	RoleAdmin     Role = "ADMIN"
	RoleOwner     Role = "OWNER"
	RoleAnonymous Role = "ANONYMOUS"
)

// Valid reports whether the role is one of the four declared values.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleOwner, RoleAnonymous:
		return true
	}
	return false
}

type AppUser struct {
	Id        int64
	Username  string
	CreatedAt time.Time
	Role      Role
	Image     *string
	Provider  *string
	Tags      []string
}
