package course

import (
	"fmt"

	"datecourse/internal/model"
)

func minutes(n int) *int { return &n }

func entry(id string, dur *int) model.CoursePlace {
	return model.CoursePlace{
		Place:             model.Place{ID: id, Name: "Place " + id},
		TimeSlot:          model.TimeSlot{ID: "afternoon"},
		SuggestedDuration: dur,
	}
}

func courseOf(places ...model.CoursePlace) model.Course {
	for i := range places {
		places[i].OrderIndex = i + 1
	}
	return model.Course{ID: "c1", UserID: "u1", Places: places}
}

func uniform(n, dur int) model.Course {
	places := make([]model.CoursePlace, n)
	for i := range places {
		places[i] = entry(fmt.Sprintf("P%d", i+1), minutes(dur))
	}
	return courseOf(places...)
}
