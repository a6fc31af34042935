package domain

import "github.com/m04kA/SMC-TourBackoffice/pkg/dateutil"

// Default configuration values
const (
	DefaultExpectedFlightLegs   = 2   // arrival + departure
	DefaultProposalTTLSeconds   = 900 // 15 minutes
	DefaultStatusListWindowDays = 31
	MaxStatusListWindowDays     = 366
)

// Business validation constants
const (
	MaxItineraryDays      = 120
	MaxHotelsPerStay      = 5
	MaxHotelNameLength    = 200
	MaxMealLength         = 50
	CurrencyCodeLength    = 3
	MaxFlightNumberLength = 10
)

// DateFormat YYYY-MM-DD
const DateFormat = dateutil.DateFormat
