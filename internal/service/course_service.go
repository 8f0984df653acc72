package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"datecourse/internal/course"
	"datecourse/internal/events"
	"datecourse/internal/model"
	"datecourse/internal/repository"

	"go.uber.org/zap"
)

var (
	ErrCourseNotFound = errors.New("course not found")
	ErrForbidden      = errors.New("course belongs to another user")
	ErrDuplicatePlace = errors.New("course lists a place more than once")
	ErrInvalidPlace   = errors.New("course entry references no known place or time slot")
)

// ValidationError carries every rule an edited course breaks.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "invalid course: " + strings.Join(e.Errors, "; ")
}

// CourseStore persists courses.
type CourseStore interface {
	GetByID(ctx context.Context, id string) (*model.Course, error)
	ListByUser(ctx context.Context, userID string) ([]model.Course, error)
	Replace(ctx context.Context, c *model.Course) error
}

// HistoryStore persists course edit history.
type HistoryStore interface {
	Create(ctx context.Context, h *model.CourseEditHistory) error
	ListByCourse(ctx context.Context, courseID string) ([]model.CourseEditHistory, error)
}

// EventPublisher sends domain events to a broker.
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// SaveResult is the outcome of a saved edit.
type SaveResult struct {
	Course *model.Course    `json:"course"`
	Diff   model.CourseDiff `json:"diff"`
}

// CourseService holds the course editing workflow.
type CourseService struct {
	courses CourseStore
	places  PlaceStore
	history HistoryStore
	events  EventPublisher
	log     *zap.Logger
	now     func() time.Time
}

// NewCourseService creates a course service. A nil publisher disables events.
func NewCourseService(courses CourseStore, places PlaceStore, history HistoryStore, pub EventPublisher, log *zap.Logger) *CourseService {
	if pub == nil {
		pub = events.Nop{}
	}
	return &CourseService{courses: courses, places: places, history: history, events: pub, log: log, now: time.Now}
}

// Get returns a course owned by userID.
func (s *CourseService) Get(ctx context.Context, userID, courseID string) (*model.Course, error) {
	c, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	if c.UserID != userID {
		return nil, ErrForbidden
	}
	return c, nil
}

// ListByUser returns the user's courses without their places.
func (s *CourseService) ListByUser(ctx context.Context, userID string) ([]model.Course, error) {
	return s.courses.ListByUser(ctx, userID)
}

// History returns the saved edits of a course owned by userID.
func (s *CourseService) History(ctx context.Context, userID, courseID string) ([]model.CourseEditHistory, error) {
	if _, err := s.Get(ctx, userID, courseID); err != nil {
		return nil, err
	}
	return s.history.ListByCourse(ctx, courseID)
}

// Check validates a course without saving it.
func (s *CourseService) Check(c model.Course) course.ValidationResult {
	return course.Validate(c)
}

// Suggestions returns advice for a stored course under the given constraints.
func (s *CourseService) Suggestions(ctx context.Context, userID, courseID string, cons course.Constraints) ([]string, error) {
	c, err := s.Get(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	return course.Suggest(*c, cons), nil
}

// SaveEdit validates an edited course, records the diff against the stored
// version and replaces the stored course. The history record and the course
// update are written separately; if the update fails the history record
// stays behind.
func (s *CourseService) SaveEdit(ctx context.Context, userID, courseID string, edited model.Course) (*SaveResult, error) {
	stored, err := s.Get(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if dups := course.DuplicatePlaces(edited); len(dups) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrDuplicatePlace, strings.Join(dups, ", "))
	}
	if err := checkReferences(edited); err != nil {
		return nil, err
	}
	if res := course.Validate(edited); !res.IsValid {
		return nil, &ValidationError{Errors: res.Errors}
	}
	if err := s.resolveReferences(ctx, &edited); err != nil {
		return nil, err
	}

	edited.ID = stored.ID
	edited.UserID = stored.UserID
	edited.CreatedAt = stored.CreatedAt
	diff := course.Diff(*stored, edited)

	rec := &model.CourseEditHistory{CourseID: courseID, UserID: userID, Diff: diff}
	if err := s.history.Create(ctx, rec); err != nil {
		return nil, fmt.Errorf("record edit: %w", err)
	}

	next := course.Normalize(edited)
	if err := s.courses.Replace(ctx, &next); err != nil {
		s.log.Error("course update failed after history write",
			zap.String("course_id", courseID), zap.String("history_id", rec.ID), zap.Error(err))
		return nil, fmt.Errorf("update course: %w", err)
	}
	next.UpdatedAt = s.now()

	evt := events.CourseEdited{CourseID: courseID, UserID: userID, Diff: diff, EditedAt: next.UpdatedAt.UTC()}
	if err := s.events.PublishJSON(ctx, events.KeyCourseEdited, evt); err != nil {
		s.log.Warn("publish course edited", zap.String("course_id", courseID), zap.Error(err))
	}

	s.log.Info("course edited",
		zap.String("course_id", courseID),
		zap.String("user_id", userID),
		zap.Int("added", len(diff.PlacesAdded)),
		zap.Int("removed", len(diff.PlacesRemoved)),
		zap.Bool("reordered", diff.PlacesReordered))
	return &SaveResult{Course: &next, Diff: diff}, nil
}

func checkReferences(c model.Course) error {
	for i, p := range c.Places {
		if strings.TrimSpace(p.Place.ID) == "" {
			return fmt.Errorf("%w: place %d has no place id", ErrInvalidPlace, i+1)
		}
		if strings.TrimSpace(p.TimeSlot.ID) == "" {
			return fmt.Errorf("%w: place %d has no time slot", ErrInvalidPlace, i+1)
		}
	}
	return nil
}

// resolveReferences replaces the place and time slot of every entry with the
// stored rows, so unknown IDs are rejected before anything is written.
func (s *CourseService) resolveReferences(ctx context.Context, c *model.Course) error {
	places := make([]model.CoursePlace, len(c.Places))
	copy(places, c.Places)
	for i := range places {
		p, err := s.places.GetByID(ctx, places[i].Place.ID)
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: place %d: unknown place %s", ErrInvalidPlace, i+1, places[i].Place.ID)
		}
		if err != nil {
			return fmt.Errorf("resolve place: %w", err)
		}
		slot, err := s.places.GetTimeSlot(ctx, places[i].TimeSlot.ID)
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: place %d: unknown time slot %s", ErrInvalidPlace, i+1, places[i].TimeSlot.ID)
		}
		if err != nil {
			return fmt.Errorf("resolve time slot: %w", err)
		}
		places[i].Place = *p
		places[i].TimeSlot = *slot
	}
	c.Places = places
	return nil
}
