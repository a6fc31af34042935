package domain

import "time"

// RegenerationProposal is a derived reservation list awaiting user confirmation.
// Nothing is written to the booking until the proposal is committed.
type RegenerationProposal struct {
	ID          string
	BookingID   int64
	BaseVersion int64 // Booking.ReservationsVersion the proposal was derived from

	Reservations []ReservationStub

	// Number of reservations that will be discarded on commit
	ExistingCount        int
	RequiresConfirmation bool

	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired returns true if the proposal can no longer be committed
func (p *RegenerationProposal) IsExpired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}
