package service

import (
	"context"

	"chat-history-be/internal/dto"
	"chat-history-be/internal/entity"
	"chat-history-be/internal/repository/unitofwork"
)

type IElementService interface {
	CreateElement(ctx context.Context, req *dto.CreateElementRequest) (*dto.ElementPayload, error)
}

type elementService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewElementService(uowFactory unitofwork.RepositoryFactory) IElementService {
	return &elementService{
		uowFactory: uowFactory,
	}
}

func (s *elementService) CreateElement(ctx context.Context, req *dto.CreateElementRequest) (*dto.ElementPayload, error) {
	forIds := req.ForIds
	if forIds == nil {
		forIds = []string{}
	}

	display := req.Display
	element := &entity.Element{
		ConversationId: req.ConversationId.Int64(),
		Type:           req.Type,
		Name:           req.Name,
		Display:        &display,
		Url:            req.Url,
		ObjectKey:      req.ObjectKey,
		Size:           req.Size,
		Language:       req.Language,
		Mime:           req.Mime,
		ForIds:         forIds,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ElementRepository().Create(ctx, element); err != nil {
		return nil, err
	}

	payload := toElementPayload(element)
	return &payload, nil
}
