package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RestaurantService/pkg/logger"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*domain.Reservation)
	return r, args.Error(1)
}

func (m *mockRepo) GetByUser(ctx context.Context, email string) ([]*domain.Reservation, error) {
	args := m.Called(ctx, email)
	r, _ := args.Get(0).([]*domain.Reservation)
	return r, args.Error(1)
}

func (m *mockRepo) Cancel(ctx context.Context, id string, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

var testNow = time.Date(2026, 11, 20, 10, 0, 0, 0, time.UTC)

func newService(repo *mockRepo) *Service {
	s := NewService(repo, logger.NewNop())
	s.timeProvider = fixedTime{now: testNow}
	return s
}

func reservation(from string, status domain.ReservationStatus) *domain.Reservation {
	t := types.MustParseTimeOfDay(from)
	end, _ := t.AddMinutes(90)
	return &domain.Reservation{
		ID:              "res-1",
		UserEmail:       "anna@example.com",
		LocationID:      "loc-1",
		LocationAddress: "48 Rustaveli Avenue",
		TableNumber:     "4",
		Date:            time.Date(2026, 11, 20, 0, 0, 0, 0, time.UTC),
		TimeFrom:        t,
		TimeTo:          end,
		GuestsNumber:    2,
		Status:          status,
	}
}

func TestGetUserReservations(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByUser", mock.Anything, "anna@example.com").
		Return([]*domain.Reservation{reservation("13:30", domain.ReservationStatusReserved)}, nil)

	resp, err := newService(repo).GetUserReservations(context.Background(), "anna@example.com")
	require.NoError(t, err)

	require.Len(t, resp.Reservations, 1)
	got := resp.Reservations[0]
	assert.Equal(t, "2026-11-20", got.Date)
	assert.Equal(t, "13:30", got.TimeFrom)
	assert.Equal(t, "15:00", got.TimeTo)
	assert.Equal(t, "RESERVED", got.Status)
}

func TestGetUserReservations_EmptyIsNotNil(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByUser", mock.Anything, "anna@example.com").Return(nil, nil)

	resp, err := newService(repo).GetUserReservations(context.Background(), "anna@example.com")
	require.NoError(t, err)
	assert.NotNil(t, resp.Reservations)
}

func TestGetUserReservations_RepoError(t *testing.T) {
	repo := &mockRepo{}
	repo.On("GetByUser", mock.Anything, "anna@example.com").Return(nil, errors.New("boom"))

	_, err := newService(repo).GetUserReservations(context.Background(), "anna@example.com")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name        string
		reservation *domain.Reservation
		getErr      error
		user        string
		cancelErr   error
		wantErr     error
		wantCancel  bool
	}{
		{
			name:        "owner cancels a future reservation",
			reservation: reservation("13:30", domain.ReservationStatusReserved),
			user:        "anna@example.com",
			wantCancel:  true,
		},
		{
			name:    "not found",
			getErr:  reservationRepo.ErrReservationNotFound,
			user:    "anna@example.com",
			wantErr: ErrReservationNotFound,
		},
		{
			name:        "someone else's reservation",
			reservation: reservation("13:30", domain.ReservationStatusReserved),
			user:        "other@example.com",
			wantErr:     ErrAccessDenied,
		},
		{
			name:        "already cancelled",
			reservation: reservation("13:30", domain.ReservationStatusCancelled),
			user:        "anna@example.com",
			wantErr:     ErrCannotCancel,
		},
		{
			name:        "already started",
			reservation: reservation("08:15", domain.ReservationStatusReserved),
			user:        "anna@example.com",
			wantErr:     ErrCannotCancel,
		},
		{
			name:        "cancelled concurrently",
			reservation: reservation("13:30", domain.ReservationStatusReserved),
			user:        "anna@example.com",
			cancelErr:   reservationRepo.ErrCannotCancel,
			wantErr:     ErrCannotCancel,
			wantCancel:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			repo.On("GetByID", mock.Anything, "res-1").Return(tt.reservation, tt.getErr)
			repo.On("Cancel", mock.Anything, "res-1", testNow).Return(tt.cancelErr)

			err := newService(repo).Cancel(context.Background(), "res-1", tt.user)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			if tt.wantCancel {
				repo.AssertCalled(t, "Cancel", mock.Anything, "res-1", testNow)
			} else {
				repo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
			}
		})
	}
}
