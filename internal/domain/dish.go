package domain

import (
	"errors"
	"sort"
	"strings"
)

// DishType represents a menu section
type DishType string

const (
	DishTypeAppetizer  DishType = "APPETIZER"
	DishTypeMainCourse DishType = "MAIN_COURSE"
	DishTypeDessert    DishType = "DESSERT"
)

// ErrInvalidDishType is returned for an unknown dish type
var ErrInvalidDishType = errors.New("invalid dish type")

// ErrInvalidDishSort is returned for an unsupported sort expression
var ErrInvalidDishSort = errors.New("invalid dish sort")

// ParseDishType parses a dish type case-insensitively
func ParseDishType(s string) (DishType, error) {
	switch DishType(strings.ToUpper(strings.TrimSpace(s))) {
	case DishTypeAppetizer:
		return DishTypeAppetizer, nil
	case DishTypeMainCourse:
		return DishTypeMainCourse, nil
	case DishTypeDessert:
		return DishTypeDessert, nil
	default:
		return "", ErrInvalidDishType
	}
}

// Dish represents a menu item served at a location
type Dish struct {
	ID          string
	LocationID  string
	Name        string
	Description string
	Price       float64
	Weight      string
	ImageURL    string
	DishType    DishType
	Popularity  int
	IsPopular   bool
	IsAvailable bool
}

// DishSort describes an ordering of dishes, e.g. "price,asc"
type DishSort struct {
	Field     string // price | popularity
	Ascending bool
}

// ParseDishSort parses "field,direction"; the direction defaults to asc
func ParseDishSort(s string) (DishSort, error) {
	field, direction, _ := strings.Cut(strings.ToLower(strings.TrimSpace(s)), ",")
	if field != "price" && field != "popularity" {
		return DishSort{}, ErrInvalidDishSort
	}

	switch direction {
	case "", "asc":
		return DishSort{Field: field, Ascending: true}, nil
	case "desc":
		return DishSort{Field: field, Ascending: false}, nil
	default:
		return DishSort{}, ErrInvalidDishSort
	}
}

// SortDishes orders dishes in place, keeping the input order for equal keys
func SortDishes(dishes []*Dish, by DishSort) {
	key := func(d *Dish) float64 {
		if by.Field == "popularity" {
			return float64(d.Popularity)
		}
		return d.Price
	}

	sort.SliceStable(dishes, func(i, j int) bool {
		if by.Ascending {
			return key(dishes[i]) < key(dishes[j])
		}
		return key(dishes[i]) > key(dishes[j])
	})
}
