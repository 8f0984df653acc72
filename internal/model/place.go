package model

import "github.com/lib/pq"

// Place is a venue that can appear in a date course.
type Place struct {
	ID            string         `db:"id" json:"id" yaml:"id"`
	Name          string         `db:"name" json:"name" yaml:"name"`
	Category      string         `db:"category" json:"category" yaml:"category"` // cafe, restaurant, park, museum ...
	Address       string         `db:"address" json:"address,omitempty" yaml:"address,omitempty"`
	Tags          pq.StringArray `db:"tags" json:"tags" yaml:"tags"`
	Accessibility pq.StringArray `db:"accessibility" json:"accessibility" yaml:"accessibility"` // wheelchair, parking, pet_friendly ...
	Latitude      float64        `db:"latitude" json:"latitude" yaml:"latitude"`
	Longitude     float64        `db:"longitude" json:"longitude" yaml:"longitude"`
	Rating        float64        `db:"rating" json:"rating" yaml:"rating"`
	PriceLevel    int            `db:"price_level" json:"price_level" yaml:"price_level"` // 1..4
}

// TimeSlot is a named part of the day a place is visited in.
type TimeSlot struct {
	ID        string `db:"id" json:"id" yaml:"id"`
	Name      string `db:"name" json:"name" yaml:"name"`
	StartHour int    `db:"start_hour" json:"start_hour" yaml:"start_hour"`
	EndHour   int    `db:"end_hour" json:"end_hour" yaml:"end_hour"`
}
