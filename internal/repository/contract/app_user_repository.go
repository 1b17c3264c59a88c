package contract

import (
	"context"

	"chat-history-be/internal/entity"
	"chat-history-be/internal/repository/specification"
)

type AppUserRepository interface {
	// Create inserts the user and backfills the server-assigned id and
	// creation timestamp. A duplicate username surfaces as
	// gorm.ErrDuplicatedKey via the driver's error translation.
	Create(ctx context.Context, user *entity.AppUser) error

	// Replace overwrites username, role, image and provider on the row with
	// the given id. Reports whether a row was affected.
	Replace(ctx context.Context, user *entity.AppUser) (bool, error)

	Delete(ctx context.Context, id int64) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AppUser, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AppUser, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
