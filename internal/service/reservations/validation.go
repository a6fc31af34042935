package reservations

import (
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	"github.com/m04kA/SMC-TourBackoffice/internal/service/reservations/models"
	"github.com/m04kA/SMC-TourBackoffice/pkg/dateutil"
)

// parseInput валидирует ввод и переносит его в размещение (ID и BookingID не трогает)
func parseInput(input *models.ReservationInput, into *domain.ReservationStub) error {
	if input == nil {
		return fmt.Errorf("%w: input is required", ErrInvalidInput)
	}
	if input.CityID <= 0 {
		return fmt.Errorf("%w: city is required", ErrInvalidInput)
	}
	cityName := strings.TrimSpace(input.CityName)
	if cityName == "" {
		return fmt.Errorf("%w: city name is required", ErrInvalidInput)
	}

	start, err := dateutil.Parse(input.StartDate)
	if err != nil {
		return fmt.Errorf("%w: startDate must be YYYY-MM-DD", ErrInvalidInput)
	}
	end, err := dateutil.Parse(input.EndDate)
	if err != nil {
		return fmt.Errorf("%w: endDate must be YYYY-MM-DD", ErrInvalidInput)
	}
	if !start.Before(end) {
		return fmt.Errorf("%w: startDate must be before endDate", ErrInvalidInput)
	}

	hotels := make([]string, 0, len(input.Hotels))
	for _, h := range input.Hotels {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if len(h) > domain.MaxHotelNameLength {
			return fmt.Errorf("%w: hotel name exceeds %d characters", ErrInvalidInput, domain.MaxHotelNameLength)
		}
		hotels = append(hotels, h)
	}
	if len(hotels) > domain.MaxHotelsPerStay {
		return fmt.Errorf("%w: at most %d hotels per stay", ErrInvalidInput, domain.MaxHotelsPerStay)
	}

	if input.Meal != nil && len(*input.Meal) > domain.MaxMealLength {
		return fmt.Errorf("%w: meal exceeds %d characters", ErrInvalidInput, domain.MaxMealLength)
	}
	if input.Currency != nil && !validCurrency(*input.Currency) {
		return fmt.Errorf("%w: currency must be a 3-letter code", ErrInvalidInput)
	}
	if input.TargetPrice != nil && *input.TargetPrice < 0 {
		return fmt.Errorf("%w: targetPrice must not be negative", ErrInvalidInput)
	}
	if input.FinalPrice != nil && *input.FinalPrice < 0 {
		return fmt.Errorf("%w: finalPrice must not be negative", ErrInvalidInput)
	}

	into.City = domain.City{ID: input.CityID, Name: cityName}
	into.Start = start
	into.End = end
	into.Hotels = hotels
	into.Meal = input.Meal
	into.Currency = input.Currency
	into.TargetPrice = input.TargetPrice
	into.FinalPrice = input.FinalPrice

	return nil
}

func validCurrency(code string) bool {
	if len(code) != domain.CurrencyCodeLength {
		return false
	}
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return true
}

// findOverlap возвращает размещение, с которым пересекается candidate (skipID исключается)
func findOverlap(existing []domain.ReservationStub, candidate domain.ReservationStub, skipID int64) (domain.ReservationStub, bool) {
	for _, r := range existing {
		if r.ID == skipID {
			continue
		}
		if r.Interval().Overlaps(candidate.Interval()) {
			return r, true
		}
	}
	return domain.ReservationStub{}, false
}

// sortReservations сортирует по дате заезда, затем по городу.
// Даты сравниваются по значению (Equal/Before), а не по указателю.
func sortReservations(list []domain.ReservationStub) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if a.City.Name != b.City.Name {
			return a.City.Name < b.City.Name
		}
		return a.ID < b.ID
	})
}
