package domain

// Default slot grid values (UTC)
const (
	DefaultOpenTime              = "06:30"
	DefaultCloseTime             = "18:30"
	DefaultSlotDurationMinutes   = 90
	DefaultSlotGapMinutes        = 15
	DefaultMatchToleranceMinutes = 15
)

// Business validation constants
const (
	MinGuests = 1
	MaxGuests = 10

	MinPasswordLength = 8
	MaxPasswordLength = 16
	MaxNameLength     = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
