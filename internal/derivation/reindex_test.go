package derivation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
)

func TestReindexDays(t *testing.T) {
	days := []domain.ItineraryDay{
		{ID: 7, DayIndex: 2, Cities: []domain.City{luxor}},
		{ID: 5, DayIndex: 0, Cities: []domain.City{cairo}},
	}

	out := ReindexDays(days)

	assert.Equal(t, 0, out[0].DayIndex)
	assert.Equal(t, int64(7), out[0].ID)
	assert.Equal(t, 1, out[1].DayIndex)

	// исходный слайс не меняется
	assert.Equal(t, 2, days[0].DayIndex)
	out[0].Cities[0] = aswan
	assert.Equal(t, luxor, days[0].Cities[0])
}

func TestApplyOrder(t *testing.T) {
	days := itinerary(cairo, luxor, aswan) // ID 100, 101, 102

	out, ok := ApplyOrder(days, []int64{102, 100, 101})
	require.True(t, ok)
	assert.Equal(t, []int64{102, 100, 101}, []int64{out[0].ID, out[1].ID, out[2].ID})
	assert.Equal(t, []int{0, 1, 2}, []int{out[0].DayIndex, out[1].DayIndex, out[2].DayIndex})

	_, ok = ApplyOrder(days, []int64{100, 101})
	assert.False(t, ok, "missing id")

	_, ok = ApplyOrder(days, []int64{100, 100, 101})
	assert.False(t, ok, "duplicate id")

	_, ok = ApplyOrder(days, []int64{100, 101, 999})
	assert.False(t, ok, "unknown id")
}

func TestValidate(t *testing.T) {
	start := d("2024-03-01")

	assert.NoError(t, Validate(itinerary(cairo, luxor), &start))
	assert.ErrorIs(t, Validate(itinerary(cairo), nil), ErrMissingTripStart)
	assert.ErrorIs(t, Validate(nil, &start), ErrEmptyItinerary)

	noCities := append(itinerary(cairo), domain.ItineraryDay{DayIndex: 1})
	assert.ErrorIs(t, Validate(noCities, &start), ErrDayWithoutCities)

	unsorted := itinerary(cairo, luxor)
	unsorted[0].DayIndex, unsorted[1].DayIndex = 1, 0
	err := Validate(unsorted, &start)
	assert.True(t, errors.Is(err, ErrNotSorted))
}
