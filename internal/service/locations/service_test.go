package locations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	locationRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/location"
	"github.com/m04kA/SMC-RestaurantService/pkg/logger"
)

type mockLocations struct{ mock.Mock }

func (m *mockLocations) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*domain.Location)
	return l, args.Error(1)
}

func (m *mockLocations) GetAll(ctx context.Context) ([]*domain.Location, error) {
	args := m.Called(ctx)
	l, _ := args.Get(0).([]*domain.Location)
	return l, args.Error(1)
}

type mockDishes struct{ mock.Mock }

func (m *mockDishes) GetByLocation(ctx context.Context, locationID string) ([]*domain.Dish, error) {
	args := m.Called(ctx, locationID)
	d, _ := args.Get(0).([]*domain.Dish)
	return d, args.Error(1)
}

func TestList(t *testing.T) {
	locations := &mockLocations{}
	locations.On("GetAll", mock.Anything).Return([]*domain.Location{
		{ID: "loc-1", Address: "14 Baratashvili Street", TotalCapacity: 40},
		{ID: "loc-2", Address: "48 Rustaveli Avenue", TotalCapacity: 60},
	}, nil)

	resp, err := NewService(locations, &mockDishes{}, logger.NewNop()).List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "loc-1", resp[0].ID)
	assert.Equal(t, 60, resp[1].TotalCapacity)
}

func TestGetSpecialityDishes(t *testing.T) {
	locations := &mockLocations{}
	locations.On("GetByID", mock.Anything, "loc-1").Return(&domain.Location{ID: "loc-1"}, nil)
	dishes := &mockDishes{}
	dishes.On("GetByLocation", mock.Anything, "loc-1").Return([]*domain.Dish{
		{ID: "d1", LocationID: "loc-1", Name: "Khinkali", Price: 12},
	}, nil)

	resp, err := NewService(locations, dishes, logger.NewNop()).GetSpecialityDishes(context.Background(), "loc-1")
	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, "Khinkali", resp[0].Name)
}

func TestGetSpecialityDishes_UnknownLocation(t *testing.T) {
	locations := &mockLocations{}
	locations.On("GetByID", mock.Anything, "nope").Return(nil, locationRepo.ErrLocationNotFound)
	dishes := &mockDishes{}

	_, err := NewService(locations, dishes, logger.NewNop()).GetSpecialityDishes(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrLocationNotFound)
	dishes.AssertNotCalled(t, "GetByLocation", mock.Anything, mock.Anything)
}

func TestGetSpecialityDishes_DishRepoError(t *testing.T) {
	locations := &mockLocations{}
	locations.On("GetByID", mock.Anything, "loc-1").Return(&domain.Location{ID: "loc-1"}, nil)
	dishes := &mockDishes{}
	dishes.On("GetByLocation", mock.Anything, "loc-1").Return(nil, errors.New("boom"))

	_, err := NewService(locations, dishes, logger.NewNop()).GetSpecialityDishes(context.Background(), "loc-1")
	assert.ErrorIs(t, err, ErrInternal)
}
