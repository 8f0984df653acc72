package course

import "datecourse/internal/model"

// Diff describes how edited differs from original. Place ids are assumed to
// be unique within each course.
//
// PlacesReordered only compares the relative order of the places both
// courses share, so a move that coincides with additions or removals around
// it may go unnoticed.
func Diff(original, edited model.Course) model.CourseDiff {
	origIDs := placeIDs(original.Places)
	editIDs := placeIDs(edited.Places)
	origSet := idSet(origIDs)
	editSet := idSet(editIDs)

	diff := model.CourseDiff{
		PlacesAdded:            []string{},
		PlacesRemoved:          []string{},
		TimeAllocationsChanged: map[string]model.DurationChange{},
		TotalDurationChanged: model.DurationChange{
			From: TotalDuration(original.Places),
			To:   TotalDuration(edited.Places),
		},
	}

	for _, id := range editIDs {
		if _, ok := origSet[id]; !ok {
			diff.PlacesAdded = append(diff.PlacesAdded, id)
		}
	}
	for _, id := range origIDs {
		if _, ok := editSet[id]; !ok {
			diff.PlacesRemoved = append(diff.PlacesRemoved, id)
		}
	}

	origCommon := filterIDs(origIDs, editSet)
	editCommon := filterIDs(editIDs, origSet)
	if len(origCommon) == len(editCommon) {
		for i := range origCommon {
			if origCommon[i] != editCommon[i] {
				diff.PlacesReordered = true
				break
			}
		}
	}

	origDurations := make(map[string]int, len(original.Places))
	for _, p := range original.Places {
		origDurations[p.Place.ID] = Duration(p)
	}
	for _, p := range edited.Places {
		from, ok := origDurations[p.Place.ID]
		if !ok {
			continue
		}
		if to := Duration(p); to != from {
			diff.TimeAllocationsChanged[p.Place.ID] = model.DurationChange{From: from, To: to}
		}
	}

	return diff
}

func filterIDs(ids []string, keep map[string]struct{}) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := keep[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
