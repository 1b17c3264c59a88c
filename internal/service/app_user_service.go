package service

import (
	"context"
	"errors"
	"fmt"

	"chat-history-be/internal/dto"
	"chat-history-be/internal/entity"
	"chat-history-be/internal/repository/specification"
	"chat-history-be/internal/repository/unitofwork"

	"gorm.io/gorm"
)

type IAppUserService interface {
	// GetAppUser returns nil for an unknown username, not an error.
	GetAppUser(ctx context.Context, username string) (*dto.AppUserPayload, error)

	// CreateAppUser fails with ErrDuplicateUsername when the username is
	// taken; uniqueness is enforced by the database index, not a prior
	// lookup.
	CreateAppUser(ctx context.Context, req *dto.CreateAppUserRequest) (*dto.AppUserPayload, error)

	// UpdateUser fully replaces username, role, image and provider.
	// Returns nil when no row matched the id.
	UpdateUser(ctx context.Context, req *dto.UpdateUserRequest) (*dto.AppUserPayload, error)

	// DeleteUser always succeeds, whether or not the row existed.
	DeleteUser(ctx context.Context, id int64) (bool, error)
}

type appUserService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewAppUserService(uowFactory unitofwork.RepositoryFactory) IAppUserService {
	return &appUserService{
		uowFactory: uowFactory,
	}
}

func (s *appUserService) GetAppUser(ctx context.Context, username string) (*dto.AppUserPayload, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.AppUserRepository().FindOne(ctx, specification.ByUsername{Username: username})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	payload := toAppUserPayload(user)
	return &payload, nil
}

func (s *appUserService) CreateAppUser(ctx context.Context, req *dto.CreateAppUserRequest) (*dto.AppUserPayload, error) {
	role := entity.Role(req.Role)
	if req.Role == "" {
		role = entity.RoleUser
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, req.Role)
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	user := &entity.AppUser{
		Username: req.Username,
		Role:     role,
		Image:    req.Image,
		Provider: req.Provider,
		Tags:     tags,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.AppUserRepository().Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateUsername, req.Username)
		}
		return nil, err
	}

	payload := toAppUserPayload(user)
	return &payload, nil
}

func (s *appUserService) UpdateUser(ctx context.Context, req *dto.UpdateUserRequest) (*dto.AppUserPayload, error) {
	role := entity.Role(req.Role)
	if req.Role == "" {
		role = entity.RoleUser
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, req.Role)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.AppUserRepository()

	affected, err := repo.Replace(ctx, &entity.AppUser{
		Id:       req.Id.Int64(),
		Username: req.Username,
		Role:     role,
		Image:    req.Image,
		Provider: req.Provider,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateUsername, req.Username)
		}
		return nil, err
	}
	if !affected {
		return nil, nil
	}

	user, err := repo.FindOne(ctx, specification.ByID{ID: req.Id.Int64()})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	payload := toAppUserPayload(user)
	return &payload, nil
}

func (s *appUserService) DeleteUser(ctx context.Context, id int64) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.AppUserRepository().Delete(ctx, id); err != nil {
		return false, err
	}
	return true, nil
}
