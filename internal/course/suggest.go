package course

import (
	"fmt"

	"datecourse/internal/model"
)

// Constraints narrows what a user wants from a course. Nil fields are ignored.
type Constraints struct {
	MaxDurationMinutes *int     `json:"max_duration" yaml:"max_duration"`
	Budget             *int     `json:"budget" yaml:"budget"`
	RequiredPlaceIDs   []string `json:"required_place_ids" yaml:"required_place_ids"`
}

// Suggest returns advisory messages for bringing c in line with the
// constraints and the structural bounds. It never changes c.
func Suggest(c model.Course, cons Constraints) []string {
	out := []string{}

	if n := len(c.Places); n < MinPlaces {
		out = append(out, fmt.Sprintf("add at least %d more place(s)", MinPlaces-n))
	} else if n > MaxPlaces {
		out = append(out, fmt.Sprintf("remove at least %d place(s)", n-MaxPlaces))
	}

	if cons.MaxDurationMinutes != nil {
		if total := TotalDuration(c.Places); total > *cons.MaxDurationMinutes {
			out = append(out, fmt.Sprintf("course exceeds max duration by %d minutes", total-*cons.MaxDurationMinutes))
		}
	}

	if cons.Budget != nil {
		budget := *cons.Budget
		switch {
		case c.EstimatedCostMin > budget:
			out = append(out, fmt.Sprintf("course exceeds budget by %d", c.EstimatedCostMin-budget))
		case c.EstimatedCostMax > budget:
			out = append(out, fmt.Sprintf("course may exceed budget by up to %d", c.EstimatedCostMax-budget))
		}
	}

	if len(cons.RequiredPlaceIDs) > 0 {
		have := idSet(placeIDs(c.Places))
		for _, id := range cons.RequiredPlaceIDs {
			if _, ok := have[id]; !ok {
				out = append(out, fmt.Sprintf("required place %s is missing", id))
			}
		}
	}

	return out
}
