package main

import (
	"strconv"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
)

const (
	rustaveliID      = "8c4fc44e-c1a5-42eb-878b-2e3a1a1c1e01"
	rustaveliAddress = "48 Rustaveli Avenue"
	chavchavadzeID   = "8c4fc44e-c1a5-42eb-878b-2e3a1a1c1e02"
	chavchavadzeAddr = "14 Chavchavadze Avenue"
)

func seedLocations() []*domain.Location {
	return []*domain.Location{
		{
			ID:               rustaveliID,
			Address:          rustaveliAddress,
			Description:      "Main hall with a terrace facing the avenue",
			Rating:           4.8,
			TotalCapacity:    30,
			AverageOccupancy: 0.72,
		},
		{
			ID:               chavchavadzeID,
			Address:          chavchavadzeAddr,
			Description:      "Quiet family restaurant near Vake park",
			Rating:           4.5,
			TotalCapacity:    18,
			AverageOccupancy: 0.55,
		},
	}
}

func seedTables() []*domain.RestaurantTable {
	capacities := map[string][]int{
		rustaveliID:    {2, 2, 4, 4, 6, 8},
		chavchavadzeID: {2, 4, 4, 10},
	}
	addresses := map[string]string{
		rustaveliID:    rustaveliAddress,
		chavchavadzeID: chavchavadzeAddr,
	}

	var tables []*domain.RestaurantTable
	for _, locationID := range []string{rustaveliID, chavchavadzeID} {
		for i, capacity := range capacities[locationID] {
			tables = append(tables, &domain.RestaurantTable{
				LocationID:      locationID,
				LocationAddress: addresses[locationID],
				TableNumber:     strconv.Itoa(i + 1),
				Capacity:        capacity,
			})
		}
	}
	return tables
}

func seedDishes() []*domain.Dish {
	return []*domain.Dish{
		{
			ID: "d-khachapuri", LocationID: rustaveliID, Name: "Adjarian Khachapuri",
			Description: "Boat-shaped bread with cheese, butter and egg",
			Price:       14.5, Weight: "450 g", DishType: domain.DishTypeMainCourse,
			Popularity: 95, IsPopular: true, IsAvailable: true,
		},
		{
			ID: "d-pkhali", LocationID: rustaveliID, Name: "Pkhali Trio",
			Description: "Spinach, beetroot and leek pkhali with walnuts",
			Price:       9, Weight: "250 g", DishType: domain.DishTypeAppetizer,
			Popularity: 70, IsPopular: true, IsAvailable: true,
		},
		{
			ID: "d-khinkali", LocationID: chavchavadzeID, Name: "Khinkali",
			Description: "Dumplings with spiced beef and pork, 5 pcs",
			Price:       11, Weight: "400 g", DishType: domain.DishTypeMainCourse,
			Popularity: 90, IsPopular: true, IsAvailable: true,
		},
		{
			ID: "d-churchkhela", LocationID: chavchavadzeID, Name: "Churchkhela",
			Description: "Walnuts in thickened grape juice",
			Price:       6.5, Weight: "120 g", DishType: domain.DishTypeDessert,
			Popularity: 40, IsPopular: false, IsAvailable: true,
		},
	}
}
