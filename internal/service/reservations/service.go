package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	reservationRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RestaurantService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями пользователя
type Service struct {
	reservationRepo ReservationRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		timeProvider:    realTimeProvider{},
		logger:          logger,
	}
}

// GetUserReservations получает бронирования пользователя, начиная с самой поздней даты
func (s *Service) GetUserReservations(ctx context.Context, userEmail string) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%s", userEmail)

	if strings.TrimSpace(userEmail) == "" {
		return nil, fmt.Errorf("%w: user email is required", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByUser(ctx, userEmail)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%s: %v", userEmail, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: successfully fetched %d reservations for user=%s", len(reservations), userEmail)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование.
// Отменить можно только своё бронирование в статусе RESERVED, которое еще не началось.
func (s *Service) Cancel(ctx context.Context, id, userEmail string) error {
	s.logger.Info("Cancel: cancelling reservation id=%s by user=%s", id, userEmail)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%s not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if reservation.UserEmail != userEmail {
		s.logger.Warn("Cancel: access denied for user=%s to reservation id=%s", userEmail, id)
		return ErrAccessDenied
	}

	now := s.timeProvider.Now()
	if !reservation.CanBeCancelled(now) {
		s.logger.Warn("Cancel: reservation id=%s cannot be cancelled, status=%s, starts=%s",
			id, reservation.Status, reservation.StartsAt().Format("2006-01-02 15:04"))
		return ErrCannotCancel
	}

	if err := s.reservationRepo.Cancel(ctx, id, now); err != nil {
		switch {
		case errors.Is(err, reservationRepo.ErrCannotCancel):
			s.logger.Warn("Cancel: reservation id=%s was changed concurrently", id)
			return ErrCannotCancel
		case errors.Is(err, reservationRepo.ErrReservationNotFound):
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%s", id)
	return nil
}
