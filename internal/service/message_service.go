package service

import (
	"context"
	"fmt"

	"chat-history-be/internal/dto"
	"chat-history-be/internal/entity"
	"chat-history-be/internal/pkg/timeutil"
	"chat-history-be/internal/repository/specification"
	"chat-history-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IMessageService interface {
	// CreateMessage inserts a message under a caller-supplied UUID and
	// returns only the id. A malformed id or createdAt is a format error.
	CreateMessage(ctx context.Context, req *dto.CreateMessageRequest) (*dto.SimpleMessagePayload, error)

	// UpdateMessage fully replaces the listed fields. Returns nil when no
	// row matched.
	UpdateMessage(ctx context.Context, req *dto.UpdateMessageRequest) (*dto.SimpleMessagePayload, error)

	// DeleteMessage always succeeds, whether or not the row existed.
	DeleteMessage(ctx context.Context, id string) (bool, error)

	// SetHumanFeedback errors with ErrMessageNotFound for an unknown id;
	// this is the one lookup that raises instead of returning absent.
	SetHumanFeedback(ctx context.Context, req *dto.SetHumanFeedbackRequest) (*dto.HumanFeedbackPayload, error)
}

type messageService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMessageService(uowFactory unitofwork.RepositoryFactory) IMessageService {
	return &messageService{
		uowFactory: uowFactory,
	}
}

func (s *messageService) CreateMessage(ctx context.Context, req *dto.CreateMessageRequest) (*dto.SimpleMessagePayload, error) {
	id, err := uuid.Parse(req.Id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMessageID, req.Id)
	}

	var parentId *uuid.UUID
	if req.ParentId != nil && *req.ParentId != "" {
		parsed, err := uuid.Parse(*req.ParentId)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidParentID, *req.ParentId)
		}
		parentId = &parsed
	}

	createdAt, err := timeutil.ParseCreatedAt(req.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCreatedAt, err)
	}

	author := req.Author
	message := &entity.Message{
		Id:                   id,
		Content:              req.Content,
		CreatedAt:            createdAt,
		IsError:              req.IsError,
		Author:               &author,
		Language:             req.Language,
		Prompt:               req.Prompt,
		ParentId:             parentId,
		Indent:               req.Indent,
		AuthorIsUser:         req.AuthorIsUser,
		DisableHumanFeedback: req.DisableHumanFeedback,
		WaitForAnswer:        req.WaitForAnswer,
		ConversationId:       req.ConversationId.Int64(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MessageRepository().Create(ctx, message); err != nil {
		return nil, err
	}

	return &dto.SimpleMessagePayload{Id: message.Id.String()}, nil
}

func (s *messageService) UpdateMessage(ctx context.Context, req *dto.UpdateMessageRequest) (*dto.SimpleMessagePayload, error) {
	id, err := uuid.Parse(req.MessageId)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMessageID, req.MessageId)
	}

	var parentId *uuid.UUID
	if req.ParentId != nil && *req.ParentId != "" {
		parsed, err := uuid.Parse(*req.ParentId)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidParentID, *req.ParentId)
		}
		parentId = &parsed
	}

	author := req.Author
	disableHumanFeedback := false
	if req.DisableHumanFeedback != nil {
		disableHumanFeedback = *req.DisableHumanFeedback
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	affected, err := uow.MessageRepository().Replace(ctx, &entity.Message{
		Id:                   id,
		Author:               &author,
		Content:              req.Content,
		ParentId:             parentId,
		Language:             req.Language,
		Prompt:               req.Prompt,
		DisableHumanFeedback: disableHumanFeedback,
	})
	if err != nil {
		return nil, err
	}
	if !affected {
		return nil, nil
	}

	return &dto.SimpleMessagePayload{Id: id.String()}, nil
}

func (s *messageService) DeleteMessage(ctx context.Context, id string) (bool, error) {
	// Deletion is idempotent; an unparsable id cannot match a row and
	// still reports success.
	parsed, err := uuid.Parse(id)
	if err != nil {
		return true, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MessageRepository().Delete(ctx, parsed); err != nil {
		return false, err
	}
	return true, nil
}

func (s *messageService) SetHumanFeedback(ctx context.Context, req *dto.SetHumanFeedbackRequest) (*dto.HumanFeedbackPayload, error) {
	id, err := uuid.Parse(req.MessageId)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMessageID, req.MessageId)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.MessageRepository()

	if err := repo.SetHumanFeedback(ctx, id, *req.HumanFeedback, req.HumanFeedbackComment); err != nil {
		return nil, err
	}

	// Re-fetch after the update; a missing row is an error here, unlike
	// the other lookups.
	message, err := repo.FindOne(ctx, specification.ByUUID{ID: id})
	if err != nil {
		return nil, err
	}
	if message == nil {
		return nil, fmt.Errorf("%w: %q", ErrMessageNotFound, req.MessageId)
	}

	return &dto.HumanFeedbackPayload{
		Id:                   message.Id.String(),
		HumanFeedback:        message.HumanFeedback,
		HumanFeedbackComment: message.HumanFeedbackComment,
	}, nil
}
