package service

import (
	"context"
	"errors"
	"fmt"

	"datecourse/internal/model"
	"datecourse/internal/repository"
)

var ErrUserNotFound = errors.New("user not found")

// UserStore persists users.
type UserStore interface {
	Create(ctx context.Context, user *model.User) (string, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
}

// UserService contains user lookup and registration.
type UserService struct {
	users UserStore
}

// NewUserService creates a user service.
func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// GetByID returns a user by ID.
func (s *UserService) GetByID(ctx context.Context, id string) (*model.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	return u, err
}

// AuthTelegramUser returns the user with the given Telegram ID, registering
// a new one on first contact.
func (s *UserService) AuthTelegramUser(ctx context.Context, telegramID int64, username, firstName, lastName string) (*model.User, error) {
	user, err := s.users.GetByTelegramID(ctx, telegramID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("find telegram user: %w", err)
	}
	tid := telegramID
	newUser := &model.User{
		TelegramID: &tid,
		Username:   username,
		FirstName:  firstName,
		LastName:   lastName,
		Role:       "user",
	}
	id, err := s.users.Create(ctx, newUser)
	if err != nil {
		return nil, err
	}
	newUser.ID = id
	return newUser, nil
}
