package service

import (
	"context"
	"strconv"

	"chat-history-be/internal/dto"
	"chat-history-be/internal/entity"
	"chat-history-be/internal/pkg/logger"
	"chat-history-be/internal/repository/specification"
	"chat-history-be/internal/repository/unitofwork"
)

type IConversationService interface {
	// ListConversations never surfaces a query failure: errors are logged
	// and an empty page is returned. Pagination arguments are accepted but
	// the page always reports hasNextPage=false.
	ListConversations(ctx context.Context, req *dto.ListConversationsRequest) *dto.PaginatedConversations

	// GetConversation returns nil for an unknown id.
	GetConversation(ctx context.Context, id int64) (*dto.ConversationPayload, error)

	// CreateConversation fails with ErrMissingAppUserID / ErrInvalidAppUserID.
	CreateConversation(ctx context.Context, req *dto.CreateConversationRequest) (*dto.ConversationPayload, error)

	// UpdateConversation overwrites tags only when supplied. Returns nil
	// when no row matched.
	UpdateConversation(ctx context.Context, req *dto.UpdateConversationRequest) (*dto.ConversationPayload, error)

	// DeleteConversation removes the conversation's messages and elements,
	// then the conversation, and always reports the requested id back.
	DeleteConversation(ctx context.Context, id int64) (*dto.DeleteConversationPayload, error)
}

type conversationService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConversationService(uowFactory unitofwork.RepositoryFactory, sysLogger logger.ILogger) IConversationService {
	return &conversationService{
		uowFactory: uowFactory,
		logger:     sysLogger,
	}
}

func (s *conversationService) ListConversations(ctx context.Context, req *dto.ListConversationsRequest) *dto.PaginatedConversations {
	emptyPage := &dto.PaginatedConversations{
		PageInfo: dto.PageInfo{EndCursor: nil, HasNextPage: false},
		Edges:    []dto.ConversationEdge{},
	}

	specs := []specification.Specification{
		specification.OrderBy{Field: "conversation.created_at", Desc: true},
	}
	if req.Username != nil && *req.Username != "" {
		specs = append(specs, specification.OwnedByUsername{Username: *req.Username})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	conversations, err := uow.ConversationRepository().FindAllHydrated(ctx, specs...)
	if err != nil {
		// Listing failures are swallowed: log and return an empty page.
		s.logger.Error("conversation", "listing query failed", map[string]interface{}{
			"error": err.Error(),
		})
		return emptyPage
	}
	if len(conversations) == 0 {
		return emptyPage
	}

	edges := make([]dto.ConversationEdge, len(conversations))
	for i, c := range conversations {
		edges[i] = dto.ConversationEdge{
			Node:   toConversationPayload(c, c.AppUser, c.Messages, c.Elements),
			Cursor: strconv.FormatInt(c.Id, 10),
		}
	}

	endCursor := strconv.FormatInt(conversations[len(conversations)-1].Id, 10)
	return &dto.PaginatedConversations{
		PageInfo: dto.PageInfo{EndCursor: &endCursor, HasNextPage: false},
		Edges:    edges,
	}
}

func (s *conversationService) GetConversation(ctx context.Context, id int64) (*dto.ConversationPayload, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	conversation, err := uow.ConversationRepository().FindOneWithUser(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, nil
	}

	messages, err := uow.MessageRepository().FindAll(ctx,
		specification.Filter("conversation_id", conversation.Id),
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	elements, err := uow.ElementRepository().FindAll(ctx,
		specification.Filter("conversation_id", conversation.Id),
	)
	if err != nil {
		return nil, err
	}

	payload := toConversationPayload(conversation, conversation.AppUser, messages, elements)
	return &payload, nil
}

func (s *conversationService) CreateConversation(ctx context.Context, req *dto.CreateConversationRequest) (*dto.ConversationPayload, error) {
	if req.AppUserId == nil {
		return nil, ErrMissingAppUserID
	}
	appUserId := req.AppUserId.Int64()

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.AppUserRepository().FindOne(ctx, specification.ByID{ID: appUserId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidAppUserID
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	conversation := &entity.Conversation{
		AppUserId: appUserId,
		Tags:      tags,
	}
	if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
		return nil, err
	}

	payload := toConversationPayload(conversation, user, nil, nil)
	return &payload, nil
}

func (s *conversationService) UpdateConversation(ctx context.Context, req *dto.UpdateConversationRequest) (*dto.ConversationPayload, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ConversationRepository()

	if req.Tags != nil {
		affected, err := repo.UpdateTags(ctx, req.Id.Int64(), *req.Tags)
		if err != nil {
			return nil, err
		}
		if !affected {
			return nil, nil
		}
	}

	conversation, err := repo.FindOneWithUser(ctx, specification.ByID{ID: req.Id.Int64()})
	if err != nil {
		return nil, err
	}
	if conversation == nil {
		return nil, nil
	}

	payload := toConversationPayload(conversation, conversation.AppUser, nil, nil)
	return &payload, nil
}

func (s *conversationService) DeleteConversation(ctx context.Context, id int64) (*dto.DeleteConversationPayload, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	if err := uow.MessageRepository().DeleteByConversation(ctx, id); err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.ElementRepository().DeleteByConversation(ctx, id); err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.ConversationRepository().Delete(ctx, id); err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.DeleteConversationPayload{Id: strconv.FormatInt(id, 10)}, nil
}
