// Package course holds the pure course editing logic: diffing two versions
// of a course, validating an edited course and producing edit suggestions.
package course

import "datecourse/internal/model"

// DefaultDurationMinutes is used for a place whose suggested duration is unset.
const DefaultDurationMinutes = 60

const (
	MinPlaces        = 2
	MaxPlaces        = 10
	MinPlaceDuration = 15
	MaxPlaceDuration = 480
	MaxTotalDuration = 720
)

// Duration returns the effective duration of a place in minutes.
func Duration(p model.CoursePlace) int {
	if p.SuggestedDuration == nil {
		return DefaultDurationMinutes
	}
	return *p.SuggestedDuration
}

// TotalDuration sums the effective durations of places.
func TotalDuration(places []model.CoursePlace) int {
	total := 0
	for _, p := range places {
		total += Duration(p)
	}
	return total
}

// Normalize returns a copy of c with order indexes renumbered 1..n in slice
// order and the total duration recomputed from its places. Entry row IDs are
// cleared so the store assigns fresh ones.
func Normalize(c model.Course) model.Course {
	places := make([]model.CoursePlace, len(c.Places))
	copy(places, c.Places)
	for i := range places {
		places[i].ID = ""
		places[i].OrderIndex = i + 1
		places[i].CourseID = c.ID
	}
	c.Places = places
	c.TotalDuration = TotalDuration(places)
	return c
}

// DuplicatePlaces returns place ids that occur more than once, in order of
// their second occurrence.
func DuplicatePlaces(c model.Course) []string {
	seen := make(map[string]bool, len(c.Places))
	var dups []string
	for _, p := range c.Places {
		if seen[p.Place.ID] {
			dups = append(dups, p.Place.ID)
			continue
		}
		seen[p.Place.ID] = true
	}
	return dups
}

func placeIDs(places []model.CoursePlace) []string {
	ids := make([]string, len(places))
	for i, p := range places {
		ids[i] = p.Place.ID
	}
	return ids
}

func idSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
