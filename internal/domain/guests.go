package domain

// GuestLimits bounds the party size of a single reservation
type GuestLimits struct {
	Min int
	Max int
}

// DefaultGuestLimits returns the built-in party size bounds
func DefaultGuestLimits() GuestLimits {
	return GuestLimits{Min: MinGuests, Max: MaxGuests}
}

// Contains reports whether n guests fit the bounds
func (l GuestLimits) Contains(n int) bool {
	return n >= l.Min && n <= l.Max
}
