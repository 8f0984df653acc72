package repository

import (
	"context"
	"fmt"
	"strings"

	"datecourse/internal/model"

	"github.com/jmoiron/sqlx"
)

// PlaceFilter narrows a place search. Empty fields match everything.
type PlaceFilter struct {
	Category string
	Tag      string
	Keyword  string
	Limit    int
}

// PlaceRepository provides access to places.
type PlaceRepository struct {
	db *sqlx.DB
}

// NewPlaceRepository creates a place repository.
func NewPlaceRepository(db *sqlx.DB) *PlaceRepository {
	return &PlaceRepository{db: db}
}

// FindByFilters searches places by category, tag and a keyword in the name or address.
func (r *PlaceRepository) FindByFilters(ctx context.Context, f PlaceFilter) ([]model.Place, error) {
	query := "SELECT * FROM places WHERE 1=1"
	args := []interface{}{}
	if f.Category != "" && strings.ToLower(f.Category) != "any" {
		query += " AND LOWER(category)=LOWER(?)"
		args = append(args, f.Category)
	}
	if f.Tag != "" {
		query += " AND ? = ANY(tags)"
		args = append(args, f.Tag)
	}
	if f.Keyword != "" {
		kw := "%" + strings.ToLower(f.Keyword) + "%"
		query += " AND (LOWER(name) LIKE ? OR LOWER(address) LIKE ?)"
		args = append(args, kw, kw)
	}
	query += " ORDER BY rating DESC, name"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}
	query = sqlx.Rebind(sqlx.DOLLAR, query)
	places := []model.Place{}
	if err := r.db.SelectContext(ctx, &places, query, args...); err != nil {
		return nil, fmt.Errorf("search places: %w", err)
	}
	return places, nil
}

// GetByID returns a place by its ID.
func (r *PlaceRepository) GetByID(ctx context.Context, id string) (*model.Place, error) {
	var place model.Place
	err := r.db.GetContext(ctx, &place, "SELECT * FROM places WHERE id=$1", id)
	if err != nil {
		return nil, notFound(err, "get place")
	}
	return &place, nil
}

// GetTimeSlot returns a time slot by its ID.
func (r *PlaceRepository) GetTimeSlot(ctx context.Context, id string) (*model.TimeSlot, error) {
	var slot model.TimeSlot
	err := r.db.GetContext(ctx, &slot, "SELECT * FROM time_slots WHERE id=$1", id)
	if err != nil {
		return nil, notFound(err, "get time slot")
	}
	return &slot, nil
}
