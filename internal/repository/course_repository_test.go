package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datecourse/internal/model"
)

var courseColumns = []string{"id", "user_id", "title", "description", "total_duration", "total_distance",
	"estimated_cost_min", "estimated_cost_max", "difficulty", "weather_suitable", "tags", "created_at", "updated_at"}

var coursePlaceColumns = []string{"id", "course_id", "suggested_duration", "order_index",
	"place.id", "place.name", "place.category", "place.address", "place.tags", "place.accessibility",
	"place.latitude", "place.longitude", "place.rating", "place.price_level",
	"time_slot.id", "time_slot.name", "time_slot.start_hour", "time_slot.end_hour"}

func TestCourseRepository_GetByID(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCourseRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM courses WHERE id=\$1`).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows(courseColumns).
			AddRow("c1", "u1", "Seongsu walk", "", 150, 1200, 30000, 50000, "easy", "mixed", "{romantic,quiet}", now, now))
	mock.ExpectQuery(`FROM course_places cp`).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows(coursePlaceColumns).
			AddRow("cp1", "c1", 60, 1, "P1", "Cafe", "cafe", "", "{coffee}", "{}", 37.5, 127.0, 4.5, 2, "lunch", "lunch", 12, 14).
			AddRow("cp2", "c1", nil, 2, "P2", "Park", "park", "", "{}", "{wheelchair}", 37.6, 127.1, 4.1, 1, "afternoon", "afternoon", 14, 18))

	c, err := repo.GetByID(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, model.DifficultyEasy, c.Difficulty)
	assert.Equal(t, []string{"romantic", "quiet"}, []string(c.Tags))
	require.Len(t, c.Places, 2)
	assert.Equal(t, "P1", c.Places[0].Place.ID)
	assert.Equal(t, 60, *c.Places[0].SuggestedDuration)
	assert.Equal(t, "lunch", c.Places[0].TimeSlot.ID)
	assert.Nil(t, c.Places[1].SuggestedDuration)
	assert.Equal(t, []string{"wheelchair"}, []string(c.Places[1].Place.Accessibility))
}

func TestCourseRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCourseRepository(db)

	mock.ExpectQuery(`SELECT \* FROM courses WHERE id=\$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(courseColumns))

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCourseRepository_Replace(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCourseRepository(db)
	dur := 90
	c := &model.Course{
		ID:    "c1",
		Title: "Edited",
		Places: []model.CoursePlace{
			{Place: model.Place{ID: "P1"}, TimeSlot: model.TimeSlot{ID: "lunch"}, SuggestedDuration: &dur, OrderIndex: 1},
			{ID: "cp2", Place: model.Place{ID: "P2"}, TimeSlot: model.TimeSlot{ID: "night"}, OrderIndex: 2},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE courses SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM course_places WHERE course_id=\$1`).WithArgs("c1").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`INSERT INTO course_places`).
		WithArgs(sqlmock.AnyArg(), "c1", "P1", "lunch", 90, 1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO course_places`).
		WithArgs("cp2", "c1", "P2", "night", nil, 2).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Replace(context.Background(), c))
	assert.NotEmpty(t, c.Places[0].ID)
}

func TestCourseRepository_Replace_RollsBack(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCourseRepository(db)
	c := &model.Course{ID: "c1", Places: []model.CoursePlace{{Place: model.Place{ID: "P1"}, OrderIndex: 1}}}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE courses SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM course_places`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO course_places`).WillReturnError(errors.New("fk violation"))
	mock.ExpectRollback()

	err := repo.Replace(context.Background(), c)
	assert.ErrorContains(t, err, "fk violation")
}

func TestCourseRepository_Replace_Missing(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCourseRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE courses SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.Replace(context.Background(), &model.Course{ID: "gone"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCourseRepository_ListByUser(t *testing.T) {
	db, mock := newMock(t)
	repo := NewCourseRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT \* FROM courses WHERE user_id=\$1`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(courseColumns).
			AddRow("c2", "u1", "B", "", 0, 0, 0, 0, "hard", "indoor", "{}", now, now).
			AddRow("c1", "u1", "A", "", 0, 0, 0, 0, "easy", "outdoor", "{}", now, now))

	courses, err := repo.ListByUser(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "c2", courses[0].ID)
	assert.Equal(t, model.WeatherIndoor, courses[0].WeatherSuitable)
}
