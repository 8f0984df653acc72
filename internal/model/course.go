package model

import (
	"time"

	"github.com/lib/pq"
)

// Difficulty of a course.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Weather describes which weather a course is suitable for.
type Weather string

const (
	WeatherIndoor  Weather = "indoor"
	WeatherOutdoor Weather = "outdoor"
	WeatherMixed   Weather = "mixed"
)

// Course is an ordered itinerary of place visits owned by a user.
type Course struct {
	ID               string         `db:"id" json:"id" yaml:"id"`
	UserID           string         `db:"user_id" json:"user_id" yaml:"user_id"`
	Title            string         `db:"title" json:"title" yaml:"title"`
	Description      string         `db:"description" json:"description" yaml:"description"`
	TotalDuration    int            `db:"total_duration" json:"total_duration" yaml:"total_duration"` // minutes
	TotalDistance    int            `db:"total_distance" json:"total_distance" yaml:"total_distance"` // meters
	EstimatedCostMin int            `db:"estimated_cost_min" json:"estimated_cost_min" yaml:"estimated_cost_min"`
	EstimatedCostMax int            `db:"estimated_cost_max" json:"estimated_cost_max" yaml:"estimated_cost_max"`
	Difficulty       Difficulty     `db:"difficulty" json:"difficulty" yaml:"difficulty"`
	WeatherSuitable  Weather        `db:"weather_suitable" json:"weather_suitable" yaml:"weather_suitable"`
	Tags             pq.StringArray `db:"tags" json:"tags" yaml:"tags"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at" yaml:"-"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updated_at" yaml:"-"`
	Places           []CoursePlace  `db:"-" json:"places" yaml:"places"`
}

// CoursePlace is one stop of a course. SuggestedDuration is nil when the
// generator did not set one.
type CoursePlace struct {
	ID                string   `db:"id" json:"id,omitempty" yaml:"id,omitempty"`
	CourseID          string   `db:"course_id" json:"course_id,omitempty" yaml:"course_id,omitempty"`
	Place             Place    `db:"place" json:"place" yaml:"place"`
	TimeSlot          TimeSlot `db:"time_slot" json:"time_slot" yaml:"time_slot"`
	SuggestedDuration *int     `db:"suggested_duration" json:"suggested_duration,omitempty" yaml:"suggested_duration,omitempty"`
	OrderIndex        int      `db:"order_index" json:"order_index" yaml:"order_index"`
}
