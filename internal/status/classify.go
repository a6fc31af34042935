// Package status grades how complete a booking's operational records are.
//
// Grades are computed on every read and never stored. All functions are pure:
// they never mutate their input and never fail.
package status

import "github.com/m04kA/SMC-TourBackoffice/internal/domain"

// Record is a single operational record that can be checked for completeness
type Record interface {
	IsComplete() bool
}

// Coverage describes how well a set of records covers what the booking needs
type Coverage struct {
	// Covered is the number of covered units (days for stays, legs for flights)
	Covered int
	// Full is true when every expected unit is covered
	Full bool
	// Overlap is true when records double-book the same unit
	Overlap bool
}

// CoverageFunc computes the coverage of a record set
type CoverageFunc[R Record] func(records []R) Coverage

// Classify grades records:
//   - Danger: no records, or nothing covered
//   - Warning: partial coverage, overlaps, or an incomplete record
//   - Success: otherwise
func Classify[R Record](records []R, coverage CoverageFunc[R]) domain.StatusGrade {
	if len(records) == 0 {
		return domain.GradeDanger
	}

	c := coverage(records)
	if c.Covered <= 0 {
		return domain.GradeDanger
	}
	if !c.Full || c.Overlap {
		return domain.GradeWarning
	}

	for _, r := range records {
		if !r.IsComplete() {
			return domain.GradeWarning
		}
	}

	return domain.GradeSuccess
}
