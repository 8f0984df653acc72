package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datecourse/internal/model"
)

func TestAuthTelegramUser(t *testing.T) {
	tid := int64(42)
	users := &fakeUsers{byID: map[string]model.User{"u1": {ID: "u1", TelegramID: &tid, FirstName: "Jo"}}}
	svc := NewUserService(users)
	ctx := context.Background()

	u, err := svc.AuthTelegramUser(ctx, 42, "jo", "Jo", "")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, 0, users.created)

	u, err = svc.AuthTelegramUser(ctx, 7, "sam", "Sam", "Lee")
	require.NoError(t, err)
	assert.Equal(t, "new-user", u.ID)
	assert.Equal(t, "user", u.Role)
	assert.Equal(t, 1, users.created)
}

func TestAuthTelegramUser_CreateFails(t *testing.T) {
	svc := NewUserService(&fakeUsers{byID: map[string]model.User{}, createErr: errStorage})

	_, err := svc.AuthTelegramUser(context.Background(), 7, "", "", "")
	assert.ErrorIs(t, err, errStorage)
}

func TestUserService_GetByID(t *testing.T) {
	svc := NewUserService(&fakeUsers{byID: map[string]model.User{}})

	_, err := svc.GetByID(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
