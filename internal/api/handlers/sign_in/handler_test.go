package sign_in

import (
	"context"
	"errors"
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

func (m *mockService) SignIn(ctx context.Context, req *models.SignInRequest) (*models.SignInResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.SignInResponse)
	return resp, args.Error(1)
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		resp       *models.SignInResponse
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "signed in",
			body:       `{"email":"nino@example.com","password":"Secret#12"}`,
			resp:       &models.SignInResponse{AccessToken: "jwt", Username: "Nino Beridze", Role: "CUSTOMER"},
			wantStatus: http.StatusOK,
			wantBody:   `{"accessToken":"jwt","username":"Nino Beridze","role":"CUSTOMER"}`,
		},
		{
			name:       "wrong password",
			body:       `{"email":"nino@example.com","password":"nope"}`,
			err:        users.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"message":"invalid email or password"}`,
		},
		{
			name:       "storage failure",
			body:       `{"email":"nino@example.com","password":"Secret#12"}`,
			err:        errors.New("dynamo unavailable"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"message":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("SignIn", mock.Anything, mock.Anything).Return(tt.resp, tt.err)

			rec := httptest.NewRecorder()
			NewHandler(svc, logger.NewNop()).Handle(rec,
				httptest.NewRequest(http.MethodPost, "/api/v1/auth/sign-in", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
