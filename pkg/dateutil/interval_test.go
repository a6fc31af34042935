package dateutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func iv(start, end string) Interval {
	return NewInterval(date(start), date(end))
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"adjacent", iv("2024-03-01", "2024-03-03"), iv("2024-03-03", "2024-03-04"), false},
		{"nested", iv("2024-03-01", "2024-03-10"), iv("2024-03-03", "2024-03-04"), true},
		{"partial", iv("2024-03-01", "2024-03-04"), iv("2024-03-03", "2024-03-06"), true},
		{"disjoint", iv("2024-03-01", "2024-03-02"), iv("2024-03-05", "2024-03-06"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestMergeIntervals(t *testing.T) {
	merged := MergeIntervals([]Interval{
		iv("2024-03-05", "2024-03-06"),
		iv("2024-03-01", "2024-03-03"),
		iv("2024-03-03", "2024-03-04"),
		iv("2024-03-02", "2024-03-02"), // пустой
	})

	assert.Equal(t, []Interval{
		iv("2024-03-01", "2024-03-04"),
		iv("2024-03-05", "2024-03-06"),
	}, merged)
}

func TestHasOverlap(t *testing.T) {
	assert.False(t, HasOverlap([]Interval{iv("2024-03-01", "2024-03-03"), iv("2024-03-03", "2024-03-04")}))
	assert.True(t, HasOverlap([]Interval{iv("2024-03-03", "2024-03-05"), iv("2024-03-01", "2024-03-04")}))
	assert.False(t, HasOverlap(nil))
}

func TestCoverage(t *testing.T) {
	span := Span(date("2024-03-01"), 4)

	full := []Interval{iv("2024-03-01", "2024-03-03"), iv("2024-03-03", "2024-03-05")}
	gap := []Interval{iv("2024-03-01", "2024-03-02"), iv("2024-03-03", "2024-03-05")}
	outside := []Interval{iv("2024-02-20", "2024-02-25")}

	assert.True(t, Covers(full, span))
	assert.Equal(t, 4, CoveredDays(full, span))

	assert.False(t, Covers(gap, span))
	assert.Equal(t, 3, CoveredDays(gap, span))

	assert.Equal(t, 0, CoveredDays(outside, span))
}

func TestInterval_String(t *testing.T) {
	assert.Equal(t, "[2024-03-01, 2024-03-03)", iv("2024-03-01", "2024-03-03").String())
}
