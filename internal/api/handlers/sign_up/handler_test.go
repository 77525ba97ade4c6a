package sign_up

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-RestaurantService/internal/service/users"
	"github.com/m04kA/SMC-RestaurantService/internal/service/users/models"
	"github.com/m04kA/SMC-RestaurantService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) SignUp(ctx context.Context, req *models.SignUpRequest) error {
	return m.Called(ctx, req).Error(0)
}

const body = `{"firstName":"Nino","lastName":"Beridze","email":"nino@example.com","password":"Secret#12"}`

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"registered", nil, http.StatusCreated, `{"message":"user registered successfully"}`},
		{"duplicate email", users.ErrUserAlreadyExists, http.StatusConflict, `{"message":"user with this email already exists"}`},
		{
			"weak password",
			fmt.Errorf("%w: password must contain a digit", users.ErrInvalidInput),
			http.StatusBadRequest,
			`{"message":"password must contain a digit"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("SignUp", mock.Anything, &models.SignUpRequest{
				FirstName: "Nino", LastName: "Beridze", Email: "nino@example.com", Password: "Secret#12",
			}).Return(tt.err)

			rec := httptest.NewRecorder()
			NewHandler(svc, logger.NewNop()).Handle(rec,
				httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-up", strings.NewReader(body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			svc.AssertExpectations(t)
		})
	}
}
