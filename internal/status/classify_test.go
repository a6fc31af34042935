package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	"github.com/m04kA/SMC-TourBackoffice/pkg/dateutil"
	"github.com/m04kA/SMC-TourBackoffice/pkg/ptr"
)

var (
	cairo = domain.City{ID: 1, Name: "Cairo"}
	luxor = domain.City{ID: 2, Name: "Luxor"}
)

func date(s string) time.Time {
	t, err := dateutil.Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func stay(city domain.City, start, end string, complete bool) domain.ReservationStub {
	r := domain.ReservationStub{City: city, Start: date(start), End: date(end), Hotels: []string{}}
	if complete {
		r.Hotels = []string{"Steigenberger"}
		r.Meal = ptr.Ptr("HB")
	}
	return r
}

func leg(number, day string, complete bool) domain.FlightLeg {
	l := domain.FlightLeg{FlightNumber: number}
	if day != "" {
		l.Date = ptr.Ptr(date(day))
	}
	if complete {
		l.FromCity = &cairo
		l.ToCity = &luxor
	}
	return l
}

func TestClassifyReservations(t *testing.T) {
	span := domain.DateSpan{Start: date("2024-03-01"), Days: 3}

	tests := []struct {
		name         string
		reservations []domain.ReservationStub
		span         domain.DateSpan
		want         domain.StatusGrade
	}{
		{
			name: "full coverage, all complete",
			reservations: []domain.ReservationStub{
				stay(cairo, "2024-03-01", "2024-03-03", true),
				stay(luxor, "2024-03-03", "2024-03-04", true),
			},
			span: span,
			want: domain.GradeSuccess,
		},
		{
			name: "full coverage, missing meal",
			reservations: []domain.ReservationStub{
				stay(cairo, "2024-03-01", "2024-03-03", true),
				stay(luxor, "2024-03-03", "2024-03-04", false),
			},
			span: span,
			want: domain.GradeWarning,
		},
		{
			name: "gap in the middle",
			reservations: []domain.ReservationStub{
				stay(cairo, "2024-03-01", "2024-03-02", true),
				stay(luxor, "2024-03-03", "2024-03-04", true),
			},
			span: span,
			want: domain.GradeWarning,
		},
		{
			name: "overlapping stays",
			reservations: []domain.ReservationStub{
				stay(cairo, "2024-03-01", "2024-03-03", true),
				stay(luxor, "2024-03-02", "2024-03-04", true),
			},
			span: span,
			want: domain.GradeWarning,
		},
		{
			name:         "no reservations",
			reservations: nil,
			span:         span,
			want:         domain.GradeDanger,
		},
		{
			name: "stays outside the trip",
			reservations: []domain.ReservationStub{
				stay(cairo, "2024-04-01", "2024-04-03", true),
			},
			span: span,
			want: domain.GradeDanger,
		},
		{
			name: "only invalid stays",
			reservations: []domain.ReservationStub{
				stay(cairo, "2024-03-02", "2024-03-02", true),
			},
			span: span,
			want: domain.GradeDanger,
		},
		{
			name: "invalid stay next to full coverage",
			reservations: []domain.ReservationStub{
				stay(cairo, "2024-03-01", "2024-03-04", true),
				stay(domain.City{}, "2024-03-01", "2024-03-02", true),
			},
			span: span,
			want: domain.GradeWarning,
		},
		{
			name: "unknown trip span",
			reservations: []domain.ReservationStub{
				stay(cairo, "2024-03-01", "2024-03-04", true),
			},
			span: domain.DateSpan{},
			want: domain.GradeWarning,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyReservations(tt.reservations, tt.span))
		})
	}
}

func TestClassifyReservations_DoesNotMutateInput(t *testing.T) {
	input := []domain.ReservationStub{
		stay(luxor, "2024-03-03", "2024-03-04", true),
		stay(cairo, "2024-03-01", "2024-03-03", true),
	}
	before := append([]domain.ReservationStub(nil), input...)

	ClassifyReservations(input, domain.DateSpan{Start: date("2024-03-01"), Days: 3})

	assert.Equal(t, before, input)
}

func TestClassifyReservations_FillingFieldsNeverWorsens(t *testing.T) {
	span := domain.DateSpan{Start: date("2024-03-01"), Days: 3}
	res := []domain.ReservationStub{
		stay(cairo, "2024-03-01", "2024-03-03", false),
		stay(luxor, "2024-03-03", "2024-03-04", false),
	}

	prev := ClassifyReservations(res, span)
	steps := []func(){
		func() { res[0].Hotels = []string{"Kempinski"} },
		func() { res[0].Meal = ptr.Ptr("BB") },
		func() { res[1].Hotels = []string{"Winter Palace"} },
		func() { res[1].Meal = ptr.Ptr("HB") },
	}
	for _, step := range steps {
		step()
		cur := ClassifyReservations(res, span)
		assert.LessOrEqual(t, cur.Severity(), prev.Severity())
		prev = cur
	}
	assert.Equal(t, domain.GradeSuccess, prev)
}

func TestClassifyFlightLegs(t *testing.T) {
	tests := []struct {
		name     string
		legs     []domain.FlightLeg
		expected int
		want     domain.StatusGrade
	}{
		{
			name:     "both legs complete",
			legs:     []domain.FlightLeg{leg("MS051", "2024-03-02", true), leg("MS052", "2024-03-05", true)},
			expected: 2,
			want:     domain.GradeSuccess,
		},
		{
			name:     "one leg of two",
			legs:     []domain.FlightLeg{leg("MS051", "2024-03-02", true)},
			expected: 2,
			want:     domain.GradeWarning,
		},
		{
			name:     "leg without flight number",
			legs:     []domain.FlightLeg{leg("", "2024-03-02", true), leg("MS052", "2024-03-05", true)},
			expected: 2,
			want:     domain.GradeWarning,
		},
		{
			name:     "leg without date",
			legs:     []domain.FlightLeg{leg("MS051", "", true), leg("MS052", "2024-03-05", true)},
			expected: 2,
			want:     domain.GradeWarning,
		},
		{
			name:     "duplicate leg",
			legs:     []domain.FlightLeg{leg("MS051", "2024-03-02", true), leg("ms051 ", "2024-03-02", true)},
			expected: 2,
			want:     domain.GradeWarning,
		},
		{
			name:     "no legs",
			legs:     nil,
			expected: 2,
			want:     domain.GradeDanger,
		},
		{
			name:     "default expectation",
			legs:     []domain.FlightLeg{leg("MS051", "2024-03-02", true)},
			expected: 0,
			want:     domain.GradeWarning,
		},
		{
			name:     "single expected leg",
			legs:     []domain.FlightLeg{leg("MS051", "2024-03-02", true)},
			expected: 1,
			want:     domain.GradeSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyFlightLegs(tt.legs, tt.expected))
		})
	}
}

type fakeRecord bool

func (f fakeRecord) IsComplete() bool { return bool(f) }

func TestClassify_Generic(t *testing.T) {
	full := func([]fakeRecord) Coverage { return Coverage{Covered: 1, Full: true} }
	none := func([]fakeRecord) Coverage { return Coverage{} }

	assert.Equal(t, domain.GradeSuccess, Classify([]fakeRecord{true, true}, full))
	assert.Equal(t, domain.GradeWarning, Classify([]fakeRecord{true, false}, full))
	assert.Equal(t, domain.GradeDanger, Classify([]fakeRecord{true}, none))
	assert.Equal(t, domain.GradeDanger, Classify([]fakeRecord{}, full))
}
