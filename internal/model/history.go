package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// DurationChange is a before/after pair of minutes.
type DurationChange struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// CourseDiff records what an edit changed in a course.
type CourseDiff struct {
	PlacesAdded            []string                  `json:"places_added"`
	PlacesRemoved          []string                  `json:"places_removed"`
	PlacesReordered        bool                      `json:"places_reordered"`
	TimeAllocationsChanged map[string]DurationChange `json:"time_allocations_changed"`
	TotalDurationChanged   DurationChange            `json:"total_duration_changed"`
}

// IsEmpty reports whether the diff describes no change at all.
func (d CourseDiff) IsEmpty() bool {
	return len(d.PlacesAdded) == 0 &&
		len(d.PlacesRemoved) == 0 &&
		!d.PlacesReordered &&
		len(d.TimeAllocationsChanged) == 0 &&
		d.TotalDurationChanged.From == d.TotalDurationChanged.To
}

// Value stores the diff as JSONB.
func (d CourseDiff) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan reads the diff from a JSONB column.
func (d *CourseDiff) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, d)
	case string:
		return json.Unmarshal([]byte(v), d)
	case nil:
		*d = CourseDiff{}
		return nil
	}
	return errors.New("course diff: unsupported column type")
}

// CourseEditHistory is an immutable audit record of one saved edit.
type CourseEditHistory struct {
	ID        string     `db:"id" json:"id"`
	CourseID  string     `db:"course_id" json:"course_id"`
	UserID    string     `db:"user_id" json:"user_id"`
	Diff      CourseDiff `db:"diff" json:"diff"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}
