package course

import (
	"fmt"

	"datecourse/internal/model"
)

// ValidationResult lists every rule an edited course breaks.
type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Errors  []string `json:"errors"`
}

// Validate checks the structural bounds of a course. All rules are evaluated
// so callers can show every problem at once.
func Validate(c model.Course) ValidationResult {
	errs := []string{}

	if len(c.Places) < MinPlaces {
		errs = append(errs, fmt.Sprintf("course needs at least %d places", MinPlaces))
	}
	if len(c.Places) > MaxPlaces {
		errs = append(errs, fmt.Sprintf("course allows at most %d places", MaxPlaces))
	}

	for i, p := range c.Places {
		d := Duration(p)
		if d < MinPlaceDuration {
			errs = append(errs, fmt.Sprintf("place %d: duration must be at least %d minutes", i+1, MinPlaceDuration))
		}
		if d > MaxPlaceDuration {
			errs = append(errs, fmt.Sprintf("place %d: duration must be at most %d minutes", i+1, MaxPlaceDuration))
		}
	}

	if TotalDuration(c.Places) > MaxTotalDuration {
		errs = append(errs, fmt.Sprintf("total duration exceeds 12 hours (%d minutes)", MaxTotalDuration))
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}
