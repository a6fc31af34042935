package itinerary

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	"github.com/m04kA/SMC-TourBackoffice/internal/service/itinerary/models"
)

// parseInput проверяет день: хотя бы один город, у каждого города id и название
func parseInput(input *models.DayInput, into *domain.ItineraryDay) error {
	if input == nil {
		return fmt.Errorf("%w: input is required", ErrInvalidInput)
	}
	if len(input.Cities) == 0 {
		return fmt.Errorf("%w: day must have at least one city", ErrInvalidInput)
	}

	cities := make([]domain.City, 0, len(input.Cities))
	for i, c := range input.Cities {
		name := strings.TrimSpace(c.Name)
		if c.ID <= 0 || name == "" {
			return fmt.Errorf("%w: city #%d must have id and name", ErrInvalidInput, i+1)
		}
		cities = append(cities, domain.City{ID: c.ID, Name: name})
	}

	into.Cities = cities
	into.Activities = toActivities(input.Activities)
	into.OptionalActivities = toActivities(input.OptionalActivities)
	return nil
}

func toActivities(values []string) []domain.Activity {
	out := make([]domain.Activity, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, domain.Activity(v))
		}
	}
	return out
}
