package dateutil

import "time"

// DateFormat формат календарной даты (YYYY-MM-DD)
const DateFormat = "2006-01-02"

// DateOnly отбрасывает время и приводит дату к UTC-полуночи.
// Все календарные даты в сервисе хранятся именно в таком виде,
// поэтому арифметика по дням не зависит от часового пояса и DST.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddDays сдвигает календарную дату на n дней
func AddDays(t time.Time, n int) time.Time {
	return DateOnly(t).AddDate(0, 0, n)
}

// SameDay проверяет, что две даты относятся к одному и тому же дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DaysBetween возвращает количество ночей между датами (to - from).
// Отрицательное значение означает, что to раньше from.
func DaysBetween(from, to time.Time) int {
	return int(DateOnly(to).Sub(DateOnly(from)).Hours() / 24)
}

// Parse парсит дату в формате YYYY-MM-DD
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, err
	}
	return DateOnly(t), nil
}

// Format форматирует дату в YYYY-MM-DD
func Format(t time.Time) string {
	return t.Format(DateFormat)
}
