package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	locationRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/location"
	reservationRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/reservation"
	tableRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/table"
)

// UseCase use case для создания бронирования столика
type UseCase struct {
	locationRepo    LocationRepository
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	grid            domain.SlotGridConfig
	guests          domain.GuestLimits
	timeProvider    TimeProvider
	newID           func() string
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	locationRepo LocationRepository,
	tableRepo TableRepository,
	reservationRepo ReservationRepository,
	grid domain.SlotGridConfig,
	guests domain.GuestLimits,
	logger Logger,
) *UseCase {
	return &UseCase{
		locationRepo:    locationRepo,
		tableRepo:       tableRepo,
		reservationRepo: reservationRepo,
		grid:            grid,
		guests:          guests,
		timeProvider:    &RealTimeProvider{},
		newID:           uuid.NewString,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
//
// Версия блокировки столика на дату читается до проверки пересечений,
// поэтому параллельное бронирование того же столика между проверкой и записью
// отменит транзакцию и вернет ErrConcurrentModification. Бронирование, которое
// индекс по дате еще не вернул, отклоняется охранником слота в репозитории
// (ErrSlotNotAvailable).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%s, location=%s, table=%s, date=%s, time=%s-%s, guests=%s",
		req.UserEmail, req.LocationID, req.TableNumber, req.Date, req.TimeFrom, req.TimeTo, req.GuestsNumber)

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	cmd, err := validateRequest(req, now, uc.guests)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что слот совпадает с сеткой
	if !uc.grid.IsGridSlot(cmd.slot) {
		uc.logger.Warn("CreateReservation: %s is not a grid slot", cmd.slot)
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimeSlot, cmd.slot)
	}

	// 3. Получаем локацию
	location, err := uc.locationRepo.GetByID(ctx, cmd.locationID)
	if err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			uc.logger.Warn("CreateReservation: location id=%s not found", cmd.locationID)
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("CreateReservation: failed to get location id=%s: %v", cmd.locationID, err)
		return nil, fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
	}

	// 4. Получаем столик и проверяем вместимость
	table, err := uc.tableRepo.GetByNumber(ctx, location.ID, cmd.tableNumber)
	if err != nil {
		if errors.Is(err, tableRepo.ErrTableNotFound) {
			uc.logger.Warn("CreateReservation: table %s not found at location id=%s", cmd.tableNumber, location.ID)
			return nil, ErrTableNotFound
		}
		uc.logger.Error("CreateReservation: failed to get table %s: %v", cmd.tableNumber, err)
		return nil, fmt.Errorf("%w: failed to get table: %v", ErrInternal, err)
	}
	if !table.Fits(cmd.guests) {
		uc.logger.Warn("CreateReservation: table %s seats %d, requested %d", table.TableNumber, table.Capacity, cmd.guests)
		return nil, fmt.Errorf("%w: table seats %d", ErrInsufficientCapacity, table.Capacity)
	}

	// 5. Читаем версию блокировки до проверки пересечений
	version, err := uc.reservationRepo.GetLockVersion(ctx, location.ID, table.TableNumber, cmd.date)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get lock version: %v", err)
		return nil, fmt.Errorf("%w: failed to get lock version: %v", ErrInternal, err)
	}

	// 6. Проверяем пересечение с активными бронированиями столика
	reservations, err := uc.reservationRepo.GetByDateAndLocation(ctx, cmd.date, location.Address)
	if err != nil {
		uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}
	if hasConflict(cmd.slot, table.TableNumber, reservations) {
		uc.logger.Warn("CreateReservation: slot %s of table %s is taken", cmd.slot, table.TableNumber)
		return nil, ErrSlotNotAvailable
	}

	// 7. Сохраняем бронирование с оптимистичной блокировкой
	reservation := &domain.Reservation{
		ID:              uc.newID(),
		UserEmail:       cmd.userEmail,
		LocationID:      location.ID,
		LocationAddress: location.Address,
		TableNumber:     table.TableNumber,
		Date:            cmd.date,
		TimeFrom:        cmd.slot.Start,
		TimeTo:          cmd.slot.End,
		GuestsNumber:    cmd.guests,
		Status:          domain.ReservationStatusReserved,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.reservationRepo.Create(ctx, reservation, version); err != nil {
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateReservation: slot %s of table %s is already held", cmd.slot, table.TableNumber)
			return nil, ErrSlotNotAvailable
		}
		if errors.Is(err, reservationRepo.ErrConcurrentModification) {
			uc.logger.Warn("CreateReservation: lost race for table %s on %s", table.TableNumber, req.Date)
			return nil, ErrConcurrentModification
		}
		uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
		return nil, fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%s", reservation.ID)

	return &Response{
		ID:              reservation.ID,
		UserEmail:       reservation.UserEmail,
		LocationID:      reservation.LocationID,
		LocationAddress: reservation.LocationAddress,
		TableNumber:     reservation.TableNumber,
		Date:            reservation.Date,
		TimeFrom:        reservation.TimeFrom,
		TimeTo:          reservation.TimeTo,
		GuestsNumber:    reservation.GuestsNumber,
		Status:          string(reservation.Status),
		CreatedAt:       reservation.CreatedAt,
	}, nil
}
