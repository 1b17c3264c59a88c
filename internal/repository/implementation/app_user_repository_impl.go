package implementation

import (
	"context"
	"errors"

	"chat-history-be/internal/entity"
	"chat-history-be/internal/mapper"
	"chat-history-be/internal/model"
	"chat-history-be/internal/repository/contract"
	"chat-history-be/internal/repository/specification"

	"gorm.io/gorm"
)

type AppUserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AppUserMapper
}

func NewAppUserRepository(db *gorm.DB) contract.AppUserRepository {
	return &AppUserRepositoryImpl{
		db:     db,
		mapper: mapper.NewAppUserMapper(),
	}
}

func (r *AppUserRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AppUserRepositoryImpl) Create(ctx context.Context, user *entity.AppUser) error {
	modelUser := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(modelUser).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(modelUser)
	return nil
}

func (r *AppUserRepositoryImpl) Replace(ctx context.Context, user *entity.AppUser) (bool, error) {
	// Full replace of the four mutable fields. Omitted optionals are
	// written as NULL, matching the update contract.
	result := r.db.WithContext(ctx).Model(&model.AppUser{}).
		Where("id = ?", user.Id).
		Updates(map[string]interface{}{
			"username": user.Username,
			"role":     string(user.Role),
			"image":    user.Image,
			"provider": user.Provider,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *AppUserRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AppUser{}).Error
}

func (r *AppUserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AppUser, error) {
	var modelUser model.AppUser
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelUser).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelUser), nil
}

func (r *AppUserRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AppUser, error) {
	var modelUsers []*model.AppUser
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelUsers).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelUsers), nil
}

func (r *AppUserRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AppUser{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
