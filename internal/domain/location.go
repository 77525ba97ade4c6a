package domain

// Location represents a restaurant location
type Location struct {
	ID               string
	Address          string
	Description      string
	ImageURL         string
	Rating           float64
	TotalCapacity    int
	AverageOccupancy float64
}

// RestaurantTable represents a table at a location
type RestaurantTable struct {
	LocationID      string
	LocationAddress string
	TableNumber     string // unique within a location
	Capacity        int
}

// Fits returns true if the table seats the given number of guests
func (t *RestaurantTable) Fits(guests int) bool {
	return t.Capacity >= guests
}
