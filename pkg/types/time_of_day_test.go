package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{name: "morning", input: "06:30", want: 390},
		{name: "midnight", input: "00:00", want: 0},
		{name: "last minute", input: "23:59", want: 1439},
		{name: "single digit hour", input: "6:30", wantErr: true},
		{name: "seconds", input: "06:30:00", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "garbage", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Minutes())
			assert.Equal(t, tt.input, got.String())
		})
	}
}

func TestTimeOfDay_AddMinutes(t *testing.T) {
	start := MustParseTimeOfDay("18:45")

	end, err := start.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "20:15", end.String())

	dayEnd, err := MustParseTimeOfDay("22:30").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, "24:00", dayEnd.String())

	_, err = MustParseTimeOfDay("23:00").AddMinutes(90)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)

	_, err = MustParseTimeOfDay("00:10").AddMinutes(-15)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeOfDay_Compare(t *testing.T) {
	a := MustParseTimeOfDay("10:00")
	b := MustParseTimeOfDay("11:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsAfter(a))
	assert.True(t, a.Equal(MustParseTimeOfDay("10:00")))
	assert.Equal(t, 90, b.Sub(a))
	assert.Equal(t, -90, a.Sub(b))
}

func TestTimeOfDay_IsZero(t *testing.T) {
	var zero TimeOfDay
	assert.True(t, zero.IsZero())
	assert.False(t, MustParseTimeOfDay("00:00").IsZero())
}

func TestTimeOfDay_OnDate(t *testing.T) {
	date := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	got := MustParseTimeOfDay("13:30").OnDate(date)
	assert.Equal(t, time.Date(2026, 10, 20, 13, 30, 0, 0, time.UTC), got)
}

func TestTimeOfDay_JSON(t *testing.T) {
	payload, err := json.Marshal(struct {
		Start TimeOfDay `json:"start"`
	}{Start: MustParseTimeOfDay("08:15")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"08:15"}`, string(payload))

	var decoded struct {
		Start TimeOfDay `json:"start"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"start":"17:00"}`), &decoded))
	assert.Equal(t, 1020, decoded.Start.Minutes())

	assert.Error(t, json.Unmarshal([]byte(`{"start":"5pm"}`), &decoded))
}
