package locations

import (
	"context"
	"errors"
	"fmt"

	locationRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/location"
	"github.com/m04kA/SMC-RestaurantService/internal/service/locations/models"
)

// Service сервис локаций ресторана
type Service struct {
	locationRepo LocationRepository
	dishRepo     DishRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса локаций
func NewService(locationRepo LocationRepository, dishRepo DishRepository, logger Logger) *Service {
	return &Service{
		locationRepo: locationRepo,
		dishRepo:     dishRepo,
		logger:       logger,
	}
}

// List возвращает все локации
func (s *Service) List(ctx context.Context) ([]models.LocationResponse, error) {
	locations, err := s.locationRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d locations", len(locations))
	return models.FromDomainLocations(locations), nil
}

// GetSpecialityDishes возвращает блюда, которые готовят в локации
func (s *Service) GetSpecialityDishes(ctx context.Context, locationID string) ([]models.SpecialityDishResponse, error) {
	s.logger.Info("GetSpecialityDishes: fetching dishes for location=%s", locationID)

	if _, err := s.locationRepo.GetByID(ctx, locationID); err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			s.logger.Warn("GetSpecialityDishes: location id=%s not found", locationID)
			return nil, ErrLocationNotFound
		}
		s.logger.Error("GetSpecialityDishes: repository error for location id=%s: %v", locationID, err)
		return nil, fmt.Errorf("%w: GetSpecialityDishes - repository error: %v", ErrInternal, err)
	}

	dishes, err := s.dishRepo.GetByLocation(ctx, locationID)
	if err != nil {
		s.logger.Error("GetSpecialityDishes: dish repository error for location id=%s: %v", locationID, err)
		return nil, fmt.Errorf("%w: GetSpecialityDishes - dish repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSpecialityDishes(dishes), nil
}
