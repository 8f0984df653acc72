package repository

import (
	"context"
	"fmt"

	"datecourse/internal/model"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// CourseRepository provides access to courses and their ordered places.
type CourseRepository struct {
	db *sqlx.DB
}

// NewCourseRepository creates a course repository.
func NewCourseRepository(db *sqlx.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

const coursePlacesQuery = `SELECT cp.id, cp.course_id, cp.suggested_duration, cp.order_index,
	p.id AS "place.id", p.name AS "place.name", p.category AS "place.category",
	p.address AS "place.address", p.tags AS "place.tags", p.accessibility AS "place.accessibility",
	p.latitude AS "place.latitude", p.longitude AS "place.longitude",
	p.rating AS "place.rating", p.price_level AS "place.price_level",
	ts.id AS "time_slot.id", ts.name AS "time_slot.name",
	ts.start_hour AS "time_slot.start_hour", ts.end_hour AS "time_slot.end_hour"
	FROM course_places cp
	JOIN places p ON p.id = cp.place_id
	JOIN time_slots ts ON ts.id = cp.time_slot_id
	WHERE cp.course_id=$1
	ORDER BY cp.order_index`

// GetByID returns a course together with its places in visit order.
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*model.Course, error) {
	var c model.Course
	err := r.db.GetContext(ctx, &c, "SELECT * FROM courses WHERE id=$1", id)
	if err != nil {
		return nil, notFound(err, "get course")
	}
	places := []model.CoursePlace{}
	if err := r.db.SelectContext(ctx, &places, coursePlacesQuery, id); err != nil {
		return nil, fmt.Errorf("get course places: %w", err)
	}
	c.Places = places
	return &c, nil
}

// ListByUser returns a user's courses, most recently updated first. Places are not loaded.
func (r *CourseRepository) ListByUser(ctx context.Context, userID string) ([]model.Course, error) {
	courses := []model.Course{}
	err := r.db.SelectContext(ctx, &courses,
		"SELECT * FROM courses WHERE user_id=$1 ORDER BY updated_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

// Replace overwrites the stored course and its places with c.
func (r *CourseRepository) Replace(ctx context.Context, c *model.Course) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `UPDATE courses SET title=$1, description=$2, total_duration=$3,
		total_distance=$4, estimated_cost_min=$5, estimated_cost_max=$6, difficulty=$7,
		weather_suitable=$8, tags=$9, updated_at=now() WHERE id=$10`,
		c.Title, c.Description, c.TotalDuration, c.TotalDistance, c.EstimatedCostMin, c.EstimatedCostMax,
		c.Difficulty, c.WeatherSuitable, c.Tags, c.ID)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("update course: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		tx.Rollback()
		return fmt.Errorf("update course: %w", ErrNotFound)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM course_places WHERE course_id=$1", c.ID); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear course places: %w", err)
	}
	for i := range c.Places {
		p := &c.Places[i]
		if p.ID == "" {
			p.ID = uuid.NewString()
		}
		_, err := tx.ExecContext(ctx, `INSERT INTO course_places
			(id, course_id, place_id, time_slot_id, suggested_duration, order_index)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			p.ID, c.ID, p.Place.ID, p.TimeSlot.ID, p.SuggestedDuration, p.OrderIndex)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("insert course place %d: %w", p.OrderIndex, err)
		}
	}
	return tx.Commit()
}
