package main

import (
	"fmt"
	"strings"

	"datecourse/internal/course"
	"datecourse/internal/model"
)

func formatCourseList(courses []model.Course) string {
	if len(courses) == 0 {
		return "You have no courses yet."
	}
	var b strings.Builder
	b.WriteString("Your courses:\n")
	for _, c := range courses {
		fmt.Fprintf(&b, "• %s (%d min) /course %s\n", c.Title, c.TotalDuration, c.ID)
	}
	return b.String()
}

func formatCourse(c *model.Course) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s · %s · %d–%d\n", c.Title, c.Difficulty, c.WeatherSuitable, c.EstimatedCostMin, c.EstimatedCostMax)
	for i, p := range c.Places {
		fmt.Fprintf(&b, "%d. %s [%s] %d min\n", i+1, p.Place.Name, p.TimeSlot.Name, course.Duration(p))
	}
	fmt.Fprintf(&b, "Total: %d min", course.TotalDuration(c.Places))
	return b.String()
}

func formatHistory(records []model.CourseEditHistory) string {
	if len(records) == 0 {
		return "No edits yet."
	}
	var b strings.Builder
	for _, r := range records {
		d := r.Diff
		fmt.Fprintf(&b, "%s: +%d −%d places", r.CreatedAt.Format("2006-01-02 15:04"), len(d.PlacesAdded), len(d.PlacesRemoved))
		if d.PlacesReordered {
			b.WriteString(", reordered")
		}
		fmt.Fprintf(&b, ", %d→%d min\n", d.TotalDurationChanged.From, d.TotalDurationChanged.To)
	}
	return b.String()
}

func formatCheck(res course.ValidationResult, tips []string) string {
	var b strings.Builder
	if res.IsValid {
		b.WriteString("Course is valid.\n")
	} else {
		b.WriteString("Course has problems:\n")
		for _, e := range res.Errors {
			b.WriteString("- " + e + "\n")
		}
	}
	for _, t := range tips {
		b.WriteString("Tip: " + t + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
