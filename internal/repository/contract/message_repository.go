package contract

import (
	"context"

	"chat-history-be/internal/entity"
	"chat-history-be/internal/repository/specification"

	"github.com/google/uuid"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error

	// Replace overwrites author, content, parentId, language, prompt and
	// disableHumanFeedback on the message with the given id. Reports whether
	// a row was affected.
	Replace(ctx context.Context, message *entity.Message) (bool, error)

	// SetHumanFeedback updates the feedback score and, when comment is
	// non-nil, the feedback comment.
	SetHumanFeedback(ctx context.Context, id uuid.UUID, score int, comment *string) error

	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByConversation(ctx context.Context, conversationId int64) error

	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
