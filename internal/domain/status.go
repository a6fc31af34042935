package domain

import (
	"time"

	"github.com/m04kA/SMC-TourBackoffice/pkg/dateutil"
)

// StatusGrade is a completeness grade of a booking's operational records.
// It is recomputed on every read and never stored.
type StatusGrade string

const (
	GradeSuccess StatusGrade = "success"
	GradeWarning StatusGrade = "warning"
	GradeDanger  StatusGrade = "danger"
)

// Severity returns the ordinal of the grade (higher is worse)
func (g StatusGrade) Severity() int {
	switch g {
	case GradeSuccess:
		return 0
	case GradeWarning:
		return 1
	default:
		return 2
	}
}

// WorseOf returns the worst of the given grades (Success for none)
func WorseOf(grades ...StatusGrade) StatusGrade {
	worst := GradeSuccess
	for _, g := range grades {
		if g.Severity() > worst.Severity() {
			worst = g
		}
	}
	return worst
}

// DateSpan is the expected stay span of a trip: [Start, Start+Days)
type DateSpan struct {
	Start time.Time
	Days  int
}

// Interval returns the span as a date interval
func (s DateSpan) Interval() dateutil.Interval {
	return dateutil.Span(s.Start, s.Days)
}

// End returns the exclusive end date of the span
func (s DateSpan) End() time.Time {
	return dateutil.AddDays(s.Start, s.Days)
}

// BookingStatus is the completeness summary of one booking
type BookingStatus struct {
	BookingID         int64
	Reference         string
	TripStart         *time.Time
	TripEnd           *time.Time
	ReservationGrade  StatusGrade
	FlightGrade       StatusGrade
	Overall           StatusGrade
	ReservationsCount int
	FlightLegsCount   int
}
