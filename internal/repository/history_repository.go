package repository

import (
	"context"
	"fmt"

	"datecourse/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// HistoryRepository stores course edit history. Records are append-only.
type HistoryRepository struct {
	db *sqlx.DB
}

// NewHistoryRepository creates a history repository.
func NewHistoryRepository(db *sqlx.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

// Create appends a history record, filling in its ID and creation time.
func (r *HistoryRepository) Create(ctx context.Context, h *model.CourseEditHistory) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO course_edit_history (id, course_id, user_id, diff) VALUES ($1, $2, $3, $4) RETURNING created_at`,
		h.ID, h.CourseID, h.UserID, h.Diff).Scan(&h.CreatedAt)
	if err != nil {
		return fmt.Errorf("save course history: %w", err)
	}
	return nil
}

// ListByCourse returns the edits of a course, newest first.
func (r *HistoryRepository) ListByCourse(ctx context.Context, courseID string) ([]model.CourseEditHistory, error) {
	records := []model.CourseEditHistory{}
	err := r.db.SelectContext(ctx, &records,
		"SELECT * FROM course_edit_history WHERE course_id=$1 ORDER BY created_at DESC", courseID)
	if err != nil {
		return nil, fmt.Errorf("list course history: %w", err)
	}
	return records, nil
}
