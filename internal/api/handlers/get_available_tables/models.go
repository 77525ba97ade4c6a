package get_available_tables

import (
	"strconv"

	getAvailableTables "github.com/m04kA/SMC-RestaurantService/internal/usecase/get_available_tables"
)

// TableResponse HTTP модель столика со свободными слотами
type TableResponse struct {
	TableNumber     string         `json:"tableNumber"`
	Capacity        string         `json:"capacity"`
	LocationID      string         `json:"locationId"`
	LocationAddress string         `json:"locationAddress"`
	AvailableSlots  []SlotResponse `json:"availableSlots"`
}

// SlotResponse свободный слот, время в формате HH:MM
type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response.
// Пустой результат сериализуется как [], а не null.
func FromUseCaseResponse(resp *getAvailableTables.Response) []TableResponse {
	tables := make([]TableResponse, 0, len(resp.Tables))
	for _, t := range resp.Tables {
		slots := make([]SlotResponse, len(t.AvailableSlots))
		for i, s := range t.AvailableSlots {
			slots[i] = SlotResponse{Start: s.Start.String(), End: s.End.String()}
		}
		tables = append(tables, TableResponse{
			TableNumber:     t.TableNumber,
			Capacity:        strconv.Itoa(t.Capacity),
			LocationID:      t.LocationID,
			LocationAddress: t.LocationAddress,
			AvailableSlots:  slots,
		})
	}
	return tables
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(locationID, date, timeOfDay, guests string) *getAvailableTables.Request {
	return &getAvailableTables.Request{
		LocationID: locationID,
		Date:       date,
		Time:       timeOfDay,
		Guests:     guests,
	}
}
