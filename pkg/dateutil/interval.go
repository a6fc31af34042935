package dateutil

import (
	"sort"
	"time"
)

// Interval полуоткрытый интервал дат [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval создает интервал из календарных дат
func NewInterval(start, end time.Time) Interval {
	return Interval{Start: DateOnly(start), End: DateOnly(end)}
}

// Span интервал [start, start+days)
func Span(start time.Time, days int) Interval {
	return Interval{Start: DateOnly(start), End: AddDays(start, days)}
}

// Days количество ночей в интервале (0 для пустого или перевернутого)
func (i Interval) Days() int {
	d := DaysBetween(i.Start, i.End)
	if d < 0 {
		return 0
	}
	return d
}

// String форматирует интервал как [2024-03-01, 2024-03-03)
func (i Interval) String() string {
	return "[" + Format(i.Start) + ", " + Format(i.End) + ")"
}

// IsEmpty true, если интервал не содержит ни одного дня
func (i Interval) IsEmpty() bool {
	return !i.Start.Before(i.End)
}

// Overlaps проверяет реальное пересечение интервалов.
// Интервалы, которые только граничат (End одного == Start другого), не пересекаются.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Intersect пересечение интервалов (может быть пустым)
func (i Interval) Intersect(other Interval) Interval {
	start := i.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := i.End
	if other.End.Before(end) {
		end = other.End
	}
	return Interval{Start: start, End: end}
}

// SortIntervals возвращает копию, отсортированную по Start, затем по End
func SortIntervals(intervals []Interval) []Interval {
	sorted := make([]Interval, len(intervals))
	copy(sorted, intervals)
	sort.SliceStable(sorted, func(a, b int) bool {
		if !sorted[a].Start.Equal(sorted[b].Start) {
			return sorted[a].Start.Before(sorted[b].Start)
		}
		return sorted[a].End.Before(sorted[b].End)
	})
	return sorted
}

// HasOverlap проверяет, есть ли в наборе хотя бы одна пара пересекающихся интервалов.
// Пустые интервалы игнорируются.
func HasOverlap(intervals []Interval) bool {
	sorted := SortIntervals(nonEmpty(intervals))
	for k := 1; k < len(sorted); k++ {
		if sorted[k].Start.Before(sorted[k-1].End) {
			return true
		}
	}
	return false
}

// MergeIntervals объединяет пересекающиеся и смежные интервалы
func MergeIntervals(intervals []Interval) []Interval {
	sorted := SortIntervals(nonEmpty(intervals))
	merged := make([]Interval, 0, len(sorted))

	for _, cur := range sorted {
		if len(merged) == 0 {
			merged = append(merged, cur)
			continue
		}
		last := &merged[len(merged)-1]
		if !cur.Start.After(last.End) {
			if cur.End.After(last.End) {
				last.End = cur.End
			}
			continue
		}
		merged = append(merged, cur)
	}

	return merged
}

// CoveredDays количество дней из span, покрытых объединением интервалов
func CoveredDays(intervals []Interval, span Interval) int {
	total := 0
	for _, m := range MergeIntervals(intervals) {
		total += m.Intersect(span).Days()
	}
	return total
}

// Covers проверяет, что объединение интервалов полностью покрывает span без разрывов
func Covers(intervals []Interval, span Interval) bool {
	return CoveredDays(intervals, span) == span.Days()
}

func nonEmpty(intervals []Interval) []Interval {
	out := make([]Interval, 0, len(intervals))
	for _, i := range intervals {
		if !i.IsEmpty() {
			out = append(out, i)
		}
	}
	return out
}
