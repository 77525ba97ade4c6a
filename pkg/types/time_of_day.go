package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	// TimeLayout формат времени суток (HH:MM, 24h)
	TimeLayout = "15:04"

	// MinutesPerDay количество минут в сутках
	MinutesPerDay = 24 * 60
)

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("invalid time string format")

	// ErrTimeOutOfRange возвращается, когда время выходит за пределы суток
	ErrTimeOutOfRange = errors.New("time is out of day range")
)

// TimeOfDay время суток с точностью до минуты, без даты и часового пояса.
// Хранится как количество минут от полуночи, допустимый диапазон [00:00, 24:00].
// 24:00 допускается только как конец интервала (результат AddMinutes).
type TimeOfDay struct {
	minutes int
	set     bool
}

// NewTimeOfDay создает время суток из часов и минут
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d", ErrTimeOutOfRange, hour, minute)
	}
	return TimeOfDay{minutes: hour*60 + minute, set: true}, nil
}

// FromTime извлекает время суток из time.Time (в часовом поясе самого значения)
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute(), set: true}
}

// ParseTimeOfDay разбирает строку формата HH:MM
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != len(TimeLayout) {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return FromTime(t), nil
}

// MustParseTimeOfDay как ParseTimeOfDay, но паникует при ошибке.
// Используется для констант и в тестах.
func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Minutes возвращает количество минут от полуночи
func (t TimeOfDay) Minutes() int {
	return t.minutes
}

// IsZero возвращает true, если значение не было задано
func (t TimeOfDay) IsZero() bool {
	return !t.set
}

// AddMinutes возвращает время, сдвинутое на n минут.
// Результат за пределами [00:00, 24:00] считается ошибкой: интервалы через полночь не поддерживаются.
func (t TimeOfDay) AddMinutes(n int) (TimeOfDay, error) {
	result := t.minutes + n
	if result < 0 || result > MinutesPerDay {
		return TimeOfDay{}, fmt.Errorf("%w: %s%+d min", ErrTimeOutOfRange, t, n)
	}
	return TimeOfDay{minutes: result, set: true}, nil
}

// Sub возвращает разницу t - other в минутах
func (t TimeOfDay) Sub(other TimeOfDay) int {
	return t.minutes - other.minutes
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeOfDay) IsBefore(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

// IsAfter возвращает true, если t строго позже other
func (t TimeOfDay) IsAfter(other TimeOfDay) bool {
	return t.minutes > other.minutes
}

// Equal возвращает true, если значения совпадают
func (t TimeOfDay) Equal(other TimeOfDay) bool {
	return t.minutes == other.minutes
}

// OnDate возвращает момент времени t в указанную дату (часовой пояс берется из date)
func (t TimeOfDay) OnDate(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, date.Location()).Add(time.Duration(t.minutes) * time.Minute)
}

// String форматирует время как HH:MM
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// MarshalJSON сериализует время как строку HH:MM
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON разбирает строку HH:MM
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeFormat, err)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
