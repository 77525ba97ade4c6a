package models

import "github.com/m04kA/SMC-RestaurantService/internal/domain"

// LocationResponse данные локации ресторана
type LocationResponse struct {
	ID               string  `json:"id"`
	Address          string  `json:"address"`
	Description      string  `json:"description"`
	ImageURL         string  `json:"imageUrl"`
	Rating           float64 `json:"rating"`
	TotalCapacity    int     `json:"totalCapacity"`
	AverageOccupancy float64 `json:"averageOccupancy"`
}

// SpecialityDishResponse блюдо из фирменного меню локации
type SpecialityDishResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Weight   string  `json:"weight"`
	ImageURL string  `json:"imageUrl"`
}

// FromDomainLocations конвертирует список domain моделей в DTO
func FromDomainLocations(locations []*domain.Location) []LocationResponse {
	resp := make([]LocationResponse, 0, len(locations))
	for _, l := range locations {
		resp = append(resp, LocationResponse{
			ID:               l.ID,
			Address:          l.Address,
			Description:      l.Description,
			ImageURL:         l.ImageURL,
			Rating:           l.Rating,
			TotalCapacity:    l.TotalCapacity,
			AverageOccupancy: l.AverageOccupancy,
		})
	}
	return resp
}

// FromDomainSpecialityDishes конвертирует блюда локации в DTO
func FromDomainSpecialityDishes(dishes []*domain.Dish) []SpecialityDishResponse {
	resp := make([]SpecialityDishResponse, 0, len(dishes))
	for _, d := range dishes {
		resp = append(resp, SpecialityDishResponse{
			ID:       d.ID,
			Name:     d.Name,
			Price:    d.Price,
			Weight:   d.Weight,
			ImageURL: d.ImageURL,
		})
	}
	return resp
}
