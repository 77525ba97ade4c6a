package models

import "github.com/m04kA/SMC-RestaurantService/internal/domain"

// ListDishesRequest запрос на получение меню
type ListDishesRequest struct {
	DishType string // APPETIZER | MAIN_COURSE | DESSERT, пусто - все
	Sort     string // "price,asc" | "price,desc" | "popularity,asc" | "popularity,desc"
}

// DishResponse краткие данные блюда для списка
type DishResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Weight      string  `json:"weight"`
	ImageURL    string  `json:"imageUrl"`
	DishType    string  `json:"dishType"`
	IsAvailable bool    `json:"isAvailable"`
}

// DishDetailsResponse полные данные блюда
type DishDetailsResponse struct {
	DishResponse
	LocationID  string `json:"locationId"`
	Description string `json:"description"`
	Popularity  int    `json:"popularity"`
	IsPopular   bool   `json:"isPopular"`
}

// DishListResponse ответ со списком блюд
type DishListResponse struct {
	Dishes []DishResponse `json:"dishes"`
}

// FromDomainDish конвертирует domain модель в краткий DTO
func FromDomainDish(d *domain.Dish) DishResponse {
	return DishResponse{
		ID:          d.ID,
		Name:        d.Name,
		Price:       d.Price,
		Weight:      d.Weight,
		ImageURL:    d.ImageURL,
		DishType:    string(d.DishType),
		IsAvailable: d.IsAvailable,
	}
}

// FromDomainDishDetails конвертирует domain модель в полный DTO
func FromDomainDishDetails(d *domain.Dish) *DishDetailsResponse {
	return &DishDetailsResponse{
		DishResponse: FromDomainDish(d),
		LocationID:   d.LocationID,
		Description:  d.Description,
		Popularity:   d.Popularity,
		IsPopular:    d.IsPopular,
	}
}

// FromDomainDishList конвертирует список domain моделей в DTO
func FromDomainDishList(dishes []*domain.Dish) *DishListResponse {
	resp := &DishListResponse{Dishes: make([]DishResponse, 0, len(dishes))}
	for _, d := range dishes {
		resp.Dishes = append(resp.Dishes, FromDomainDish(d))
	}
	return resp
}
