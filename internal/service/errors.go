package service

import "errors"

// Per-operation error policy is deliberately uneven: most lookups return an
// absent result (nil, nil) for missing rows, while setHumanFeedback and the
// create mutations surface real errors. Callers match on these sentinels.
var (
	ErrDuplicateUsername = errors.New("username is already taken")
	ErrMissingAppUserID  = errors.New("appUserId must be provided")
	ErrInvalidAppUserID  = errors.New("invalid appUserId")
	ErrMessageNotFound   = errors.New("message not found")
	ErrInvalidMessageID  = errors.New("invalid message id: expected a UUID")
	ErrInvalidParentID   = errors.New("invalid parentId: expected a UUID")
	ErrInvalidCreatedAt  = errors.New("invalid createdAt")
	ErrInvalidRole       = errors.New("invalid role")
)
