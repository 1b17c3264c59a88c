package implementation

import (
	"context"
	"errors"

	"chat-history-be/internal/entity"
	"chat-history-be/internal/mapper"
	"chat-history-be/internal/model"
	"chat-history-be/internal/repository/contract"
	"chat-history-be/internal/repository/specification"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ConversationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ConversationMapper
}

func NewConversationRepository(db *gorm.DB) contract.ConversationRepository {
	return &ConversationRepositoryImpl{
		db:     db,
		mapper: mapper.NewConversationMapper(),
	}
}

func (r *ConversationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ConversationRepositoryImpl) Create(ctx context.Context, conversation *entity.Conversation) error {
	modelConversation := r.mapper.ToModel(conversation)
	if err := r.db.WithContext(ctx).Create(modelConversation).Error; err != nil {
		return err
	}
	conversation.Id = modelConversation.Id
	conversation.CreatedAt = modelConversation.CreatedAt
	conversation.Tags = []string(modelConversation.Tags)
	return nil
}

func (r *ConversationRepositoryImpl) UpdateTags(ctx context.Context, id int64, tags []string) (bool, error) {
	if tags == nil {
		tags = []string{}
	}
	result := r.db.WithContext(ctx).Model(&model.Conversation{}).
		Where("id = ?", id).
		Update("tags", datatypes.NewJSONSlice(tags))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ConversationRepositoryImpl) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Conversation{}).Error
}

func (r *ConversationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error) {
	var modelConversation model.Conversation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelConversation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelConversation), nil
}

func (r *ConversationRepositoryImpl) FindOneWithUser(ctx context.Context, specs ...specification.Specification) (*entity.Conversation, error) {
	var modelConversation model.Conversation
	query := r.applySpecifications(r.db.WithContext(ctx).Preload("AppUser"), specs...)

	if err := query.First(&modelConversation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelConversation), nil
}

func (r *ConversationRepositoryImpl) FindAllHydrated(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error) {
	var modelConversations []*model.Conversation
	query := r.db.WithContext(ctx).
		Preload("AppUser").
		Preload("Messages").
		Preload("Elements")
	query = r.applySpecifications(query, specs...)

	if err := query.Find(&modelConversations).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelConversations), nil
}

func (r *ConversationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Conversation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
