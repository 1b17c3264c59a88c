package implementation

import (
	"context"

	"chat-history-be/internal/entity"
	"chat-history-be/internal/mapper"
	"chat-history-be/internal/model"
	"chat-history-be/internal/repository/contract"
	"chat-history-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ElementRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ElementMapper
}

func NewElementRepository(db *gorm.DB) contract.ElementRepository {
	return &ElementRepositoryImpl{
		db:     db,
		mapper: mapper.NewElementMapper(),
	}
}

func (r *ElementRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ElementRepositoryImpl) Create(ctx context.Context, element *entity.Element) error {
	modelElement := r.mapper.ToModel(element)
	if err := r.db.WithContext(ctx).Create(modelElement).Error; err != nil {
		return err
	}
	*element = *r.mapper.ToEntity(modelElement)
	return nil
}

func (r *ElementRepositoryImpl) DeleteByConversation(ctx context.Context, conversationId int64) error {
	return r.db.WithContext(ctx).Where("conversation_id = ?", conversationId).Delete(&model.Element{}).Error
}

func (r *ElementRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Element, error) {
	var modelElements []*model.Element
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelElements).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelElements), nil
}

func (r *ElementRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Element{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
