package domain

import (
	"strings"
	"time"
)

// FlightLeg represents a domestic flight segment of a booking
type FlightLeg struct {
	ID           int64
	BookingID    int64
	FlightNumber string
	Date         *time.Time
	FromCity     *City
	ToCity       *City
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsComplete returns true if flight number, date and city pair are all set
func (l FlightLeg) IsComplete() bool {
	return strings.TrimSpace(l.FlightNumber) != "" &&
		l.Date != nil &&
		l.FromCity != nil && l.FromCity.ID > 0 &&
		l.ToCity != nil && l.ToCity.ID > 0
}
