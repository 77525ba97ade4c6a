package get_available_tables

import (
	"time"

	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// Request модель запроса на получение свободных столиков.
// Поля приходят из query-параметров как есть и разбираются при валидации.
type Request struct {
	LocationID string // ID локации (обязательный)
	Date       string // Дата в формате YYYY-MM-DD (обязательный)
	Time       string // Желаемое время HH:MM (опционально)
	Guests     string // Количество гостей (опционально, по умолчанию 1)
}

// Response модель ответа со списком столиков, у которых есть свободные слоты
type Response struct {
	LocationID string
	Date       time.Time
	Tables     []TableAvailability
}

// TableAvailability свободные слоты одного столика
type TableAvailability struct {
	TableNumber     string
	Capacity        int
	LocationID      string
	LocationAddress string
	AvailableSlots  []domain.TimeSlot
}

// query разобранный и проверенный запрос
type query struct {
	locationID string
	date       time.Time
	requested  *types.TimeOfDay
	guests     int
}
