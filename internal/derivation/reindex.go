package derivation

import "github.com/m04kA/SMC-TourBackoffice/internal/domain"

// ReindexDays returns a copy of days with DayIndex re-derived from slice position.
// Used after a drag-and-drop reorder; the input is left untouched.
func ReindexDays(days []domain.ItineraryDay) []domain.ItineraryDay {
	out := make([]domain.ItineraryDay, len(days))
	for i, d := range days {
		d.DayIndex = i
		d.Cities = append([]domain.City(nil), d.Cities...)
		d.Activities = append([]domain.Activity(nil), d.Activities...)
		d.OptionalActivities = append([]domain.Activity(nil), d.OptionalActivities...)
		out[i] = d
	}
	return out
}

// ApplyOrder reorders days by the given list of day IDs and re-indexes them.
// ok is false if order is not a permutation of the days' IDs.
func ApplyOrder(days []domain.ItineraryDay, order []int64) ([]domain.ItineraryDay, bool) {
	if len(order) != len(days) {
		return nil, false
	}

	byID := make(map[int64]domain.ItineraryDay, len(days))
	for _, d := range days {
		byID[d.ID] = d
	}
	if len(byID) != len(days) {
		return nil, false
	}

	reordered := make([]domain.ItineraryDay, 0, len(order))
	seen := make(map[int64]struct{}, len(order))
	for _, id := range order {
		d, ok := byID[id]
		if !ok {
			return nil, false
		}
		if _, dup := seen[id]; dup {
			return nil, false
		}
		seen[id] = struct{}{}
		reordered = append(reordered, d)
	}

	return ReindexDays(reordered), true
}
