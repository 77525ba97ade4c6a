package get_available_tables

import (
	"github.com/m04kA/SMC-RestaurantService/internal/domain"
	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

// filterAvailableSlots оставляет слоты сетки, не пересекающиеся ни с одним бронированием столика.
//
// Слот [s, e) свободен относительно бронирования [rs, re), если s >= re или e <= rs.
// Касание границ не считается пересечением:
// - Слот 08:15-09:45, бронирование 06:30-08:00 → слот свободен
// - Слот 13:30-15:00, бронирование 13:30-15:00 → слот занят
func filterAvailableSlots(grid []domain.TimeSlot, reservations []*domain.Reservation) []domain.TimeSlot {
	available := make([]domain.TimeSlot, 0, len(grid))

	for _, slot := range grid {
		free := true
		for _, r := range reservations {
			if slot.Overlaps(r.Slot()) {
				free = false
				break
			}
		}
		if free {
			available = append(available, slot)
		}
	}

	return available
}

// matchRequestedTime выбирает слот под желаемое время гостя.
//
// Сначала ищется первый слот, в который время попадает включительно [start, end].
// Если такого нет, берется слот с ближайшим началом в пределах toleranceMinutes;
// при равной разнице побеждает слот, идущий раньше во входном порядке.
// Если не подошел ни один слот, возвращается пустой список.
func matchRequestedTime(slots []domain.TimeSlot, requested *types.TimeOfDay, toleranceMinutes int) []domain.TimeSlot {
	if requested == nil {
		return slots
	}

	for _, slot := range slots {
		if slot.Contains(*requested) {
			return []domain.TimeSlot{slot}
		}
	}

	bestIdx := -1
	bestDiff := 0
	for i, slot := range slots {
		diff := absMinutes(slot.Start.Sub(*requested))
		if diff > toleranceMinutes {
			continue
		}
		// строгое сравнение: при равенстве остается более ранний слот
		if bestIdx == -1 || diff < bestDiff {
			bestIdx = i
			bestDiff = diff
		}
	}

	if bestIdx == -1 {
		return []domain.TimeSlot{}
	}
	return []domain.TimeSlot{slots[bestIdx]}
}

func absMinutes(m int) int {
	if m < 0 {
		return -m
	}
	return m
}
