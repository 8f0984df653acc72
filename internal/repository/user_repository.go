package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"datecourse/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// UserRepository provides access to users.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a user repository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a user and returns its generated ID.
func (r *UserRepository) Create(ctx context.Context, user *model.User) (string, error) {
	id := uuid.NewString()
	query := `INSERT INTO users (id, email, telegram_id, username, first_name, last_name, role)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query, id, user.Email, user.TelegramID, user.Username, user.FirstName, user.LastName, user.Role)
	if err != nil {
		return "", fmt.Errorf("create user: %w", err)
	}
	return id, nil
}

// GetByTelegramID finds a user by Telegram ID. Returns ErrNotFound if there is none.
func (r *UserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, "SELECT * FROM users WHERE telegram_id=$1", telegramID)
	if err != nil {
		return nil, notFound(err, "get user by telegram id")
	}
	return &user, nil
}

// GetByID returns a user by its ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.GetContext(ctx, &user, "SELECT * FROM users WHERE id=$1", id)
	if err != nil {
		return nil, notFound(err, "get user")
	}
	return &user, nil
}

func notFound(err error, op string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return fmt.Errorf("%s: %w", op, err)
}
