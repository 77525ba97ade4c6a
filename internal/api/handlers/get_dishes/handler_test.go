package get_dishes

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-RestaurantService/internal/service/dishes"
	"github.com/m04kA/SMC-RestaurantService/internal/service/dishes/models"
	"github.com/m04kA/SMC-RestaurantService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) List(ctx context.Context, req *models.ListDishesRequest) (*models.DishListResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.DishListResponse)
	return resp, args.Error(1)
}

func TestHandle_PassesFilters(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, &models.ListDishesRequest{DishType: "DESSERT", Sort: "price,desc"}).
		Return(&models.DishListResponse{Dishes: []models.DishResponse{{ID: "d-1", Name: "Churchkhela", Price: 6.5}}}, nil)

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec,
		httptest.NewRequest(http.MethodGet, "/api/v1/dishes?dishType=DESSERT&sort=price,desc", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Churchkhela"`)
	svc.AssertExpectations(t)
}

func TestHandle_InvalidFilter(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: dishType must be one of APPETIZER, MAIN_COURSE, DESSERT", dishes.ErrInvalidInput))

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/dishes?dishType=SOUP", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"dishType must be one of APPETIZER, MAIN_COURSE, DESSERT"}`, rec.Body.String())
}
