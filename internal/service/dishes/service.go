package dishes

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	dishRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/dish"
	"github.com/m04kA/SMC-RestaurantService/internal/service/dishes/models"
	"github.com/m04kA/SMC-RestaurantService/pkg/ptr"
)

// Service сервис меню
type Service struct {
	dishRepo DishRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса меню
func NewService(dishRepo DishRepository, logger Logger) *Service {
	return &Service{
		dishRepo: dishRepo,
		logger:   logger,
	}
}

// List возвращает блюда с опциональным фильтром по типу и сортировкой
func (s *Service) List(ctx context.Context, req *models.ListDishesRequest) (*models.DishListResponse, error) {
	s.logger.Info("List: fetching dishes, type=%q, sort=%q", req.DishType, req.Sort)

	var dishType *domain.DishType
	if req.DishType != "" {
		parsed, err := domain.ParseDishType(req.DishType)
		if err != nil {
			s.logger.Warn("List: invalid dish type=%q", req.DishType)
			return nil, fmt.Errorf("%w: dishType must be one of APPETIZER, MAIN_COURSE, DESSERT", ErrInvalidInput)
		}
		dishType = ptr.Ptr(parsed)
	}

	var sortBy *domain.DishSort
	if req.Sort != "" {
		parsed, err := domain.ParseDishSort(req.Sort)
		if err != nil {
			s.logger.Warn("List: invalid sort=%q", req.Sort)
			return nil, fmt.Errorf("%w: sort must be price or popularity with asc or desc", ErrInvalidInput)
		}
		sortBy = ptr.Ptr(parsed)
	}

	dishes, err := s.dishRepo.GetAll(ctx, dishType)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if sortBy != nil {
		domain.SortDishes(dishes, *sortBy)
	}

	s.logger.Info("List: successfully fetched %d dishes", len(dishes))
	return models.FromDomainDishList(dishes), nil
}

// GetPopular возвращает популярные блюда
func (s *Service) GetPopular(ctx context.Context) (*models.DishListResponse, error) {
	dishes, err := s.dishRepo.GetPopular(ctx)
	if err != nil {
		s.logger.Error("GetPopular: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetPopular - repository error: %v", ErrInternal, err)
	}

	domain.SortDishes(dishes, domain.DishSort{Field: "popularity"})
	return models.FromDomainDishList(dishes), nil
}

// GetByID возвращает блюдо по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.DishDetailsResponse, error) {
	dish, err := s.dishRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, dishRepo.ErrDishNotFound) {
			s.logger.Warn("GetByID: dish id=%s not found", id)
			return nil, ErrDishNotFound
		}
		s.logger.Error("GetByID: repository error for dish id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDishDetails(dish), nil
}
