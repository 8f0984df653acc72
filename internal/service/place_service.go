package service

import (
	"context"
	"errors"

	"datecourse/internal/model"
	"datecourse/internal/repository"
)

var ErrPlaceNotFound = errors.New("place not found")

const maxPlaceResults = 50

// PlaceStore looks up places.
type PlaceStore interface {
	FindByFilters(ctx context.Context, f repository.PlaceFilter) ([]model.Place, error)
	GetByID(ctx context.Context, id string) (*model.Place, error)
	GetTimeSlot(ctx context.Context, id string) (*model.TimeSlot, error)
}

// PlaceService contains place lookup logic.
type PlaceService struct {
	places PlaceStore
}

// NewPlaceService creates a place service.
func NewPlaceService(places PlaceStore) *PlaceService {
	return &PlaceService{places: places}
}

// Search finds places by filter. The result count is capped.
func (s *PlaceService) Search(ctx context.Context, f repository.PlaceFilter) ([]model.Place, error) {
	if f.Limit <= 0 || f.Limit > maxPlaceResults {
		f.Limit = maxPlaceResults
	}
	return s.places.FindByFilters(ctx, f)
}

// Get returns one place.
func (s *PlaceService) Get(ctx context.Context, id string) (*model.Place, error) {
	p, err := s.places.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPlaceNotFound
	}
	return p, err
}
