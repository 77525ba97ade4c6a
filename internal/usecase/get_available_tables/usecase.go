package get_available_tables

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	locationRepo "github.com/m04kA/SMC-RestaurantService/internal/infra/storage/location"
)

// UseCase use case для получения свободных столиков локации на дату
type UseCase struct {
	locationRepo    LocationRepository
	tableRepo       TableRepository
	reservationRepo ReservationRepository
	grid            domain.SlotGridConfig
	guests          domain.GuestLimits
	matchTolerance  int
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case.
// metrics может быть nil.
func NewUseCase(
	locationRepo LocationRepository,
	tableRepo TableRepository,
	reservationRepo ReservationRepository,
	grid domain.SlotGridConfig,
	guests domain.GuestLimits,
	matchToleranceMinutes int,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		locationRepo:    locationRepo,
		tableRepo:       tableRepo,
		reservationRepo: reservationRepo,
		grid:            grid,
		guests:          guests,
		matchTolerance:  matchToleranceMinutes,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения свободных столиков
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableTables: location=%s, date=%s, time=%s, guests=%s",
		req.LocationID, req.Date, req.Time, req.Guests)

	// 1. Валидация входных данных, до обращения к хранилищу
	q, err := validateRequest(req, uc.timeProvider.Now(), uc.guests)
	if err != nil {
		uc.logger.Warn("GetAvailableTables: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем локацию
	location, err := uc.locationRepo.GetByID(ctx, q.locationID)
	if err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			uc.logger.Warn("GetAvailableTables: location id=%s not found", q.locationID)
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("GetAvailableTables: failed to get location id=%s: %v", q.locationID, err)
		return nil, fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
	}

	// 3. Получаем столики подходящей вместимости
	tables, err := uc.tableRepo.GetByLocation(ctx, location.ID, q.guests)
	if err != nil {
		uc.logger.Error("GetAvailableTables: failed to get tables for location id=%s: %v", location.ID, err)
		return nil, fmt.Errorf("%w: failed to get tables: %v", ErrInternal, err)
	}

	// 4. Получаем бронирования адреса на дату
	reservations, err := uc.reservationRepo.GetByDateAndLocation(ctx, q.date, location.Address)
	if err != nil {
		uc.logger.Error("GetAvailableTables: failed to get reservations for %s on %s: %v",
			location.Address, q.date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}
	byTable := domain.ActiveReservationsByTable(reservations)

	// 5. Для каждого столика: сетка → фильтр по бронированиям → подбор по времени
	result := make([]TableAvailability, 0, len(tables))
	for _, table := range tables {
		slots := filterAvailableSlots(uc.grid.Generate(), byTable[table.TableNumber])
		slots = matchRequestedTime(slots, q.requested, uc.matchTolerance)
		if len(slots) == 0 {
			continue
		}

		result = append(result, TableAvailability{
			TableNumber:     table.TableNumber,
			Capacity:        table.Capacity,
			LocationID:      table.LocationID,
			LocationAddress: table.LocationAddress,
			AvailableSlots:  slots,
		})
	}

	if uc.metrics != nil {
		uc.metrics.ObserveAvailableTables(len(result))
	}

	uc.logger.Info("GetAvailableTables: %d of %d tables available at location=%s on %s",
		len(result), len(tables), location.ID, q.date.Format(domain.DateFormat))

	return &Response{
		LocationID: location.ID,
		Date:       q.date,
		Tables:     result,
	}, nil
}
