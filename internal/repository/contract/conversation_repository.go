package contract

import (
	"context"

	"chat-history-be/internal/entity"
	"chat-history-be/internal/repository/specification"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error

	// UpdateTags overwrites the tags list. Reports whether a row matched.
	UpdateTags(ctx context.Context, id int64, tags []string) (bool, error)

	Delete(ctx context.Context, id int64) error

	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error)

	// FindOneWithUser loads a conversation with its owning user eager-loaded.
	FindOneWithUser(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error)

	// FindAllHydrated loads conversations with owner, messages and elements
	// eager-loaded, for the listing read path.
	FindAllHydrated(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error)

	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
