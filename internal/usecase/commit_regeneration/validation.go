package commit_regeneration

import (
	"fmt"

	"github.com/google/uuid"
)

func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}
	if _, err := uuid.Parse(req.ProposalID); err != nil {
		return fmt.Errorf("%w: proposal id: %v", ErrInvalidInput, err)
	}
	return nil
}
