package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chat-history-be/internal/dto"
)

func TestCreateAppUserDefaults(t *testing.T) {
	svc := NewAppUserService(newTestFactory(t))
	ctx := context.Background()

	user, err := svc.CreateAppUser(ctx, &dto.CreateAppUserRequest{Username: "alice"})
	require.NoError(t, err)
	require.NotNil(t, user)

	assert.NotEmpty(t, user.Id)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "USER", user.Role)
	assert.NotZero(t, user.CreatedAt)
	assert.NotNil(t, user.Tags)
	assert.Empty(t, user.Tags)
	assert.Nil(t, user.Image)
	assert.Nil(t, user.Provider)
}

func TestCreateAppUserDuplicateUsername(t *testing.T) {
	factory := newTestFactory(t)
	svc := NewAppUserService(factory)
	ctx := context.Background()

	_, err := svc.CreateAppUser(ctx, &dto.CreateAppUserRequest{Username: "alice"})
	require.NoError(t, err)

	_, err = svc.CreateAppUser(ctx, &dto.CreateAppUserRequest{Username: "alice"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	// The rejected attempt must not leave a row behind.
	count, err := factory.NewUnitOfWork(ctx).AppUserRepository().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCreateAppUserRejectsUnknownRole(t *testing.T) {
	svc := NewAppUserService(newTestFactory(t))

	_, err := svc.CreateAppUser(context.Background(), &dto.CreateAppUserRequest{
		Username: "alice",
		Role:     "SUPERUSER",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestGetAppUserMissingIsNil(t *testing.T) {
	svc := NewAppUserService(newTestFactory(t))

	user, err := svc.GetAppUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestGetAppUserRoundTrip(t *testing.T) {
	svc := NewAppUserService(newTestFactory(t))
	ctx := context.Background()

	created, err := svc.CreateAppUser(ctx, &dto.CreateAppUserRequest{
		Username: "bob",
		Role:     "ADMIN",
		Image:    strPtr("https://example.com/bob.png"),
		Tags:     []string{"beta"},
	})
	require.NoError(t, err)

	fetched, err := svc.GetAppUser(ctx, "bob")
	require.NoError(t, err)
	require.NotNil(t, fetched)

	assert.Equal(t, created.Id, fetched.Id)
	assert.Equal(t, "ADMIN", fetched.Role)
	assert.Equal(t, created.CreatedAt, fetched.CreatedAt)
	require.NotNil(t, fetched.Image)
	assert.Equal(t, "https://example.com/bob.png", *fetched.Image)
	assert.Equal(t, []string{"beta"}, fetched.Tags)
}

func TestUpdateUserFullReplace(t *testing.T) {
	svc := NewAppUserService(newTestFactory(t))
	ctx := context.Background()

	created, err := svc.CreateAppUser(ctx, &dto.CreateAppUserRequest{
		Username: "carol",
		Image:    strPtr("https://example.com/carol.png"),
		Provider: strPtr("github"),
	})
	require.NoError(t, err)

	var id dto.NumericID
	require.NoError(t, id.UnmarshalJSON([]byte(created.Id)))

	// Omitted optional fields are cleared, not preserved.
	updated, err := svc.UpdateUser(ctx, &dto.UpdateUserRequest{
		Id:       id,
		Username: "carol2",
		Role:     "ADMIN",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "carol2", updated.Username)
	assert.Equal(t, "ADMIN", updated.Role)
	assert.Nil(t, updated.Image)
	assert.Nil(t, updated.Provider)
}

func TestUpdateUserUnknownIdIsNil(t *testing.T) {
	svc := NewAppUserService(newTestFactory(t))

	updated, err := svc.UpdateUser(context.Background(), &dto.UpdateUserRequest{
		Id:       dto.NumericID(9999),
		Username: "ghost",
	})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestDeleteUserIsIdempotent(t *testing.T) {
	svc := NewAppUserService(newTestFactory(t))
	ctx := context.Background()

	ok, err := svc.DeleteUser(ctx, 424242)
	require.NoError(t, err)
	assert.True(t, ok)

	created, err := svc.CreateAppUser(ctx, &dto.CreateAppUserRequest{Username: "dave"})
	require.NoError(t, err)

	var id dto.NumericID
	require.NoError(t, id.UnmarshalJSON([]byte(created.Id)))

	ok, err = svc.DeleteUser(ctx, id.Int64())
	require.NoError(t, err)
	assert.True(t, ok)

	fetched, err := svc.GetAppUser(ctx, "dave")
	require.NoError(t, err)
	assert.Nil(t, fetched)
}
