package domain

// City is a destination referenced by itinerary days and reservations.
// Identity is by ID; Name is denormalized for display.
type City struct {
	ID   int64
	Name string
}

// Activity is a planned excursion or service on an itinerary day.
// Activities are carried through derivation untouched.
type Activity string

// ItineraryDay represents one planned day of a trip
type ItineraryDay struct {
	ID        int64
	BookingID int64
	DayIndex  int // 0 = arrival day

	// Cities visited during the day, in order. The last one is the overnight stop,
	// earlier ones are transit cities.
	Cities []City

	Activities         []Activity
	OptionalActivities []Activity
}

// OvernightCity returns the city where the group sleeps that night
func (d *ItineraryDay) OvernightCity() (City, bool) {
	if len(d.Cities) == 0 {
		return City{}, false
	}
	return d.Cities[len(d.Cities)-1], true
}

// HasCities returns true if the day has at least one city
func (d *ItineraryDay) HasCities() bool {
	return len(d.Cities) > 0
}
