package contract

import (
	"context"

	"chat-history-be/internal/entity"
	"chat-history-be/internal/repository/specification"
)

type ElementRepository interface {
	Create(ctx context.Context, element *entity.Element) error
	DeleteByConversation(ctx context.Context, conversationId int64) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Element, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
