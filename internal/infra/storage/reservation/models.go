package reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// lockPrefix префикс элементов блокировки столика на дату.
// Элементы блокировки лежат в той же таблице и не попадают во вторичные индексы.
const lockPrefix = "LOCK#"

// slotPrefix префикс элементов-охранников занятого слота.
// Пока бронирование активно, охранник его слота существует; читается он
// только по ключу, поэтому не зависит от задержки вторичных индексов.
const slotPrefix = "SLOT#"

// reservationItem элемент таблицы бронирований
type reservationItem struct {
	ID              string    `dynamodbav:"id"`
	UserEmail       string    `dynamodbav:"userEmail"`
	LocationID      string    `dynamodbav:"locationId"`
	LocationAddress string    `dynamodbav:"locationAddress"`
	TableNumber     string    `dynamodbav:"tableNumber"`
	Date            string    `dynamodbav:"date"`
	TimeFrom        string    `dynamodbav:"timeFrom"`
	TimeTo          string    `dynamodbav:"timeTo"`
	GuestsNumber    int       `dynamodbav:"guestsNumber"`
	Status          string    `dynamodbav:"status"`
	CreatedAt       time.Time `dynamodbav:"createdAt"`
	UpdatedAt       time.Time `dynamodbav:"updatedAt"`
}

// lockItem версия набора бронирований столика на дату
type lockItem struct {
	ID      string `dynamodbav:"id"`
	Version int64  `dynamodbav:"version"`
}

// slotGuardItem отметка занятого слота столика
type slotGuardItem struct {
	ID            string `dynamodbav:"id"`
	ReservationID string `dynamodbav:"reservationId"`
}

func slotGuardID(locationID, tableNumber string, date time.Time, start types.TimeOfDay) string {
	return fmt.Sprintf("%s%s#%s#%s#%s", slotPrefix, locationID, tableNumber, date.Format(domain.DateFormat), start)
}

func lockID(locationID, tableNumber string, date time.Time) string {
	return fmt.Sprintf("%s%s#%s#%s", lockPrefix, locationID, tableNumber, date.Format(domain.DateFormat))
}

func fromDomain(r *domain.Reservation) reservationItem {
	return reservationItem{
		ID:              r.ID,
		UserEmail:       r.UserEmail,
		LocationID:      r.LocationID,
		LocationAddress: r.LocationAddress,
		TableNumber:     r.TableNumber,
		Date:            r.Date.Format(domain.DateFormat),
		TimeFrom:        r.TimeFrom.String(),
		TimeTo:          r.TimeTo.String(),
		GuestsNumber:    r.GuestsNumber,
		Status:          string(r.Status),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (i reservationItem) toDomain() (*domain.Reservation, error) {
	date, err := time.Parse(domain.DateFormat, i.Date)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: date: %w", i.ID, err)
	}
	from, err := types.ParseTimeOfDay(i.TimeFrom)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: timeFrom: %w", i.ID, err)
	}
	to, err := parseEndTime(i.TimeTo)
	if err != nil {
		return nil, fmt.Errorf("reservation %s: timeTo: %w", i.ID, err)
	}

	return &domain.Reservation{
		ID:              i.ID,
		UserEmail:       i.UserEmail,
		LocationID:      i.LocationID,
		LocationAddress: i.LocationAddress,
		TableNumber:     i.TableNumber,
		Date:            date,
		TimeFrom:        from,
		TimeTo:          to,
		GuestsNumber:    i.GuestsNumber,
		Status:          domain.ReservationStatus(i.Status),
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}, nil
}

// parseEndTime разбирает конец интервала, допуская 24:00
func parseEndTime(s string) (types.TimeOfDay, error) {
	if s == "24:00" {
		return types.MustParseTimeOfDay("00:00").AddMinutes(types.MinutesPerDay)
	}
	return types.ParseTimeOfDay(s)
}
