package create_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/api/middleware"
	"github.com/m04kA/SMC-RestaurantService/internal/integrations/auth"
	createReservation "github.com/m04kA/SMC-RestaurantService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-RestaurantService/pkg/logger"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*createReservation.Response)
	return resp, args.Error(1)
}

const validBody = `{"locationId":"loc-1","tableNumber":"4","date":"2026-11-20","timeFrom":"13:30","timeTo":"15:00","guestsNumber":3}`

func post(t *testing.T, uc *mockUseCase, body string, withClaims bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	if withClaims {
		req = req.WithContext(middleware.WithClaims(req.Context(), &auth.Claims{
			Subject: "guest@example.com",
			Email:   "guest@example.com",
		}))
	}
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &createReservation.Request{
		UserEmail:    "guest@example.com",
		LocationID:   "loc-1",
		TableNumber:  "4",
		Date:         "2026-11-20",
		TimeFrom:     "13:30",
		TimeTo:       "15:00",
		GuestsNumber: "3",
	}).Return(&createReservation.Response{
		ID:              "res-1",
		UserEmail:       "guest@example.com",
		LocationID:      "loc-1",
		LocationAddress: "48 Rustaveli Avenue",
		TableNumber:     "4",
		Date:            time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
		TimeFrom:        types.MustParseTimeOfDay("13:30"),
		TimeTo:          types.MustParseTimeOfDay("15:00"),
		GuestsNumber:    3,
		Status:          "RESERVED",
		CreatedAt:       time.Date(2026, 11, 19, 12, 0, 0, 0, time.UTC),
	}, nil)

	rec := post(t, uc, validBody, true)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{
		"id": "res-1",
		"locationId": "loc-1",
		"locationAddress": "48 Rustaveli Avenue",
		"tableNumber": "4",
		"date": "2026-11-20",
		"timeFrom": "13:30",
		"timeTo": "15:00",
		"guestsNumber": 3,
		"status": "RESERVED",
		"createdAt": "2026-11-19T12:00:00Z"
	}`, rec.Body.String())
	uc.AssertExpectations(t)
}

func TestHandle_GuestsAsString(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createReservation.Request) bool {
		return req.GuestsNumber == "2"
	})).Return(&createReservation.Response{ID: "res-2"}, nil)

	rec := post(t, uc, `{"locationId":"loc-1","tableNumber":"4","date":"2026-11-20","timeFrom":"13:30","timeTo":"15:00","guestsNumber":"2"}`, true)

	assert.Equal(t, http.StatusCreated, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandle_Unauthenticated(t *testing.T) {
	uc := &mockUseCase{}
	rec := post(t, uc, validBody, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_MalformedBody(t *testing.T) {
	uc := &mockUseCase{}
	rec := post(t, uc, `{"locationId":`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", &createReservation.ValidationError{Field: "date", Reason: "must not be in the past"}, http.StatusBadRequest},
		{"not a grid slot", createReservation.ErrInvalidTimeSlot, http.StatusBadRequest},
		{"capacity", createReservation.ErrInsufficientCapacity, http.StatusBadRequest},
		{"location", createReservation.ErrLocationNotFound, http.StatusNotFound},
		{"table", createReservation.ErrTableNotFound, http.StatusNotFound},
		{"overlap", createReservation.ErrSlotNotAvailable, http.StatusConflict},
		{"lost race", createReservation.ErrConcurrentModification, http.StatusConflict},
		{"internal", createReservation.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := post(t, uc, validBody, true)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
