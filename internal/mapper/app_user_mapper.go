package mapper

import (
	"chat-history-be/internal/entity"
	"chat-history-be/internal/model"

	"gorm.io/datatypes"
)

type AppUserMapper struct{}

func NewAppUserMapper() *AppUserMapper {
	return &AppUserMapper{}
}

func (m *AppUserMapper) ToEntity(u *model.AppUser) *entity.AppUser {
	if u == nil {
		return nil
	}
	return &entity.AppUser{
		Id:        u.Id,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		Role:      entity.Role(u.Role),
		Image:     u.Image,
		Provider:  u.Provider,
		Tags:      tagsFromModel(u.Tags),
	}
}

func (m *AppUserMapper) ToModel(u *entity.AppUser) *model.AppUser {
	if u == nil {
		return nil
	}
	return &model.AppUser{
		Id:        u.Id,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		Role:      string(u.Role),
		Image:     u.Image,
		Provider:  u.Provider,
		Tags:      datatypes.NewJSONSlice(tagsOrEmpty(u.Tags)),
	}
}

func (m *AppUserMapper) ToEntities(users []*model.AppUser) []*entity.AppUser {
	entities := make([]*entity.AppUser, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

// tags are always a list on the wire, never null.
func tagsFromModel(tags datatypes.JSONSlice[string]) []string {
	if tags == nil {
		return []string{}
	}
	return []string(tags)
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
