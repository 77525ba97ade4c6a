package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RestaurantService/pkg/types"
)

func slot(start, end string) TimeSlot {
	return TimeSlot{Start: types.MustParseTimeOfDay(start), End: types.MustParseTimeOfDay(end)}
}

func slotStarts(slots []TimeSlot) []string {
	starts := make([]string, len(slots))
	for i, s := range slots {
		starts[i] = s.Start.String()
	}
	return starts
}

func TestSlotGridConfig_GenerateDefaults(t *testing.T) {
	grid := DefaultSlotGridConfig().Generate()

	require.Len(t, grid, 8)
	assert.Equal(t,
		[]string{"06:30", "08:15", "10:00", "11:45", "13:30", "15:15", "17:00", "18:45"},
		slotStarts(grid),
	)
	assert.Equal(t, slot("06:30", "08:00"), grid[0])
	// последний слот начинается после номинальной границы 18:30 и сохраняется
	assert.Equal(t, slot("18:45", "20:15"), grid[7])

	for _, s := range grid {
		assert.Equal(t, 90, s.DurationMinutes())
	}
}

func TestSlotGridConfig_GenerateIsDeterministic(t *testing.T) {
	cfg := DefaultSlotGridConfig()

	first := cfg.Generate()
	second := cfg.Generate()
	assert.Equal(t, first, second)

	// каждый вызов возвращает независимый срез
	first[0] = slot("00:00", "00:30")
	assert.Equal(t, slot("06:30", "08:00"), cfg.Generate()[0])
}

func TestSlotGridConfig_GenerateCustomBounds(t *testing.T) {
	tests := []struct {
		name     string
		open     string
		close    string
		duration int
		gap      int
		want     []string
	}{
		{
			name: "start exactly on closing bound continues one step",
			open: "10:00", close: "12:00", duration: 60, gap: 0,
			want: []string{"10:00", "11:00", "12:00", "13:00"},
		},
		{
			name: "open equals close",
			open: "10:00", close: "10:00", duration: 30, gap: 30,
			want: []string{"10:00", "11:00"},
		},
		{
			name: "never crosses midnight",
			open: "21:00", close: "23:30", duration: 90, gap: 0,
			want: []string{"21:00", "22:30"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewSlotGridConfig(tt.open, tt.close, tt.duration, tt.gap)
			require.NoError(t, err)
			assert.Equal(t, tt.want, slotStarts(cfg.Generate()))
		})
	}
}

func TestNewSlotGridConfig_Invalid(t *testing.T) {
	_, err := NewSlotGridConfig("10:00", "09:00", 60, 0)
	assert.ErrorIs(t, err, ErrInvalidGridConfig)

	_, err = NewSlotGridConfig("10:00", "20:00", 0, 0)
	assert.ErrorIs(t, err, ErrInvalidGridConfig)

	_, err = NewSlotGridConfig("25:00", "20:00", 60, 0)
	assert.ErrorIs(t, err, ErrInvalidGridConfig)

	assert.Empty(t, SlotGridConfig{}.Generate())
}

func TestTimeSlot_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b TimeSlot
		want bool
	}{
		{"identical", slot("13:30", "15:00"), slot("13:30", "15:00"), true},
		{"partial", slot("11:30", "12:00"), slot("11:20", "11:40"), true},
		{"contained", slot("10:00", "11:30"), slot("10:30", "11:00"), true},
		{"touching before", slot("08:15", "09:45"), slot("06:30", "08:15"), false},
		{"touching after", slot("11:30", "12:00"), slot("12:00", "12:30"), false},
		{"gap", slot("08:15", "09:45"), slot("06:30", "08:00"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeSlot_Contains(t *testing.T) {
	s := slot("10:00", "11:30")

	assert.True(t, s.Contains(types.MustParseTimeOfDay("10:00")))
	assert.True(t, s.Contains(types.MustParseTimeOfDay("11:00")))
	assert.True(t, s.Contains(types.MustParseTimeOfDay("11:30")))
	assert.False(t, s.Contains(types.MustParseTimeOfDay("09:59")))
	assert.False(t, s.Contains(types.MustParseTimeOfDay("11:31")))
}

func TestNewTimeSlot(t *testing.T) {
	_, err := NewTimeSlot(types.MustParseTimeOfDay("10:00"), types.MustParseTimeOfDay("10:00"))
	assert.ErrorIs(t, err, ErrInvalidSlot)

	s, err := NewTimeSlot(types.MustParseTimeOfDay("10:00"), types.MustParseTimeOfDay("11:30"))
	require.NoError(t, err)
	assert.Equal(t, "10:00-11:30", s.String())
}

func TestSlotGridConfig_IsGridSlot(t *testing.T) {
	cfg := DefaultSlotGridConfig()

	assert.True(t, cfg.IsGridSlot(slot("13:30", "15:00")))
	assert.False(t, cfg.IsGridSlot(slot("13:30", "14:00")))
	assert.False(t, cfg.IsGridSlot(slot("13:00", "14:30")))
}
