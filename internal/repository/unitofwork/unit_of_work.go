package unitofwork

import (
	"context"

	"chat-history-be/internal/repository/contract"
)

// UnitOfWork scopes repository access to a single logical unit of work.
// Begin/Commit/Rollback wrap the repositories in one transaction; without
// Begin, each statement runs on the shared pool.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	AppUserRepository() contract.AppUserRepository
	ConversationRepository() contract.ConversationRepository
	MessageRepository() contract.MessageRepository
	ElementRepository() contract.ElementRepository
}
