package dishes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	dishRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/dish"
	"github.com/m04kA/SMC-RestaurantService/internal/service/dishes/models"
	"github.com/m04kA/SMC-RestaurantService/pkg/logger"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) GetByID(ctx context.Context, id string) (*domain.Dish, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*domain.Dish)
	return d, args.Error(1)
}

func (m *mockRepo) GetAll(ctx context.Context, dishType *domain.DishType) ([]*domain.Dish, error) {
	args := m.Called(ctx, dishType)
	d, _ := args.Get(0).([]*domain.Dish)
	return d, args.Error(1)
}

func (m *mockRepo) GetPopular(ctx context.Context) ([]*domain.Dish, error) {
	args := m.Called(ctx)
	d, _ := args.Get(0).([]*domain.Dish)
	return d, args.Error(1)
}

func menu() []*domain.Dish {
	return []*domain.Dish{
		{ID: "d1", Name: "Khachapuri", Price: 14, Popularity: 50, DishType: domain.DishTypeMainCourse},
		{ID: "d2", Name: "Pkhali", Price: 8, Popularity: 90, DishType: domain.DishTypeAppetizer},
		{ID: "d3", Name: "Churchkhela", Price: 6, Popularity: 70, DishType: domain.DishTypeDessert},
	}
}

func names(resp *models.DishListResponse) []string {
	out := make([]string, 0, len(resp.Dishes))
	for _, d := range resp.Dishes {
		out = append(out, d.Name)
	}
	return out
}

func TestList_SortByPriceDesc(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetAll", mock.Anything, (*domain.DishType)(nil)).Return(menu(), nil)

	resp, err := NewService(repo, logger.NewNop()).List(context.Background(), &models.ListDishesRequest{Sort: "price,desc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Khachapuri", "Pkhali", "Churchkhela"}, names(resp))
}

func TestList_FilterByType(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetAll", mock.Anything, mock.MatchedBy(func(dt *domain.DishType) bool {
		return dt != nil && *dt == domain.DishTypeDessert
	})).Return([]*domain.Dish{menu()[2]}, nil)

	resp, err := NewService(repo, logger.NewNop()).List(context.Background(), &models.ListDishesRequest{DishType: "dessert"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Churchkhela"}, names(resp))
}

func TestList_InvalidInput(t *testing.T) {
	svc := NewService(&mockRepo{}, logger.NewNop())

	_, err := svc.List(context.Background(), &models.ListDishesRequest{DishType: "SOUP"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), &models.ListDishesRequest{Sort: "name,asc"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetPopular_OrderedByPopularity(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetPopular", mock.Anything).Return(menu(), nil)

	resp, err := NewService(repo, logger.NewNop()).GetPopular(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Pkhali", "Churchkhela", "Khachapuri"}, names(resp))
}

func TestGetByID(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByID", mock.Anything, "d1").Return(menu()[0], nil)
	repo.On("GetByID", mock.Anything, "missing").Return(nil, dishRepo.ErrDishNotFound)
	repo.On("GetByID", mock.Anything, "broken").Return(nil, errors.New("boom"))
	svc := NewService(repo, logger.NewNop())

	dish, err := svc.GetByID(context.Background(), "d1")
	require.NoError(t, err)
	assert.Equal(t, "Khachapuri", dish.Name)

	_, err = svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrDishNotFound)

	_, err = svc.GetByID(context.Background(), "broken")
	assert.ErrorIs(t, err, ErrInternal)
}
