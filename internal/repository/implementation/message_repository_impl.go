package implementation

import (
	"context"
	"errors"

	"chat-history-be/internal/entity"
	"chat-history-be/internal/mapper"
	"chat-history-be/internal/model"
	"chat-history-be/internal/repository/contract"
	"chat-history-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MessageMapper
}

func NewMessageRepository(db *gorm.DB) contract.MessageRepository {
	return &MessageRepositoryImpl{
		db:     db,
		mapper: mapper.NewMessageMapper(),
	}
}

func (r *MessageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MessageRepositoryImpl) Create(ctx context.Context, message *entity.Message) error {
	modelMessage := r.mapper.ToModel(message)
	if err := r.db.WithContext(ctx).Create(modelMessage).Error; err != nil {
		return err
	}
	message.CreatedAt = modelMessage.CreatedAt
	return nil
}

func (r *MessageRepositoryImpl) Replace(ctx context.Context, message *entity.Message) (bool, error) {
	// Full replace of the listed fields. Omitted optionals become NULL.
	result := r.db.WithContext(ctx).Model(&model.Message{}).
		Where("id = ?", message.Id).
		Updates(map[string]interface{}{
			"author":                 message.Author,
			"content":                message.Content,
			"parent_id":              message.ParentId,
			"language":               message.Language,
			"prompt":                 message.Prompt,
			"disable_human_feedback": message.DisableHumanFeedback,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *MessageRepositoryImpl) SetHumanFeedback(ctx context.Context, id uuid.UUID, score int, comment *string) error {
	values := map[string]interface{}{
		"human_feedback": score,
	}
	if comment != nil {
		values["human_feedback_comment"] = *comment
	}
	return r.db.WithContext(ctx).Model(&model.Message{}).
		Where("id = ?", id).
		Updates(values).Error
}

func (r *MessageRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Message{}).Error
}

func (r *MessageRepositoryImpl) DeleteByConversation(ctx context.Context, conversationId int64) error {
	return r.db.WithContext(ctx).Where("conversation_id = ?", conversationId).Delete(&model.Message{}).Error
}

func (r *MessageRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error) {
	var modelMessage model.Message
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelMessage).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelMessage), nil
}

func (r *MessageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	var modelMessages []*model.Message
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelMessages).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelMessages), nil
}

func (r *MessageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Message{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
