package datetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateKey(t *testing.T) {
	ts := time.Date(2024, 3, 1, 18, 30, 0, 0, time.Local)
	assert.Equal(t, "2024-03-01", DateKey(ts))
}

func TestDayBounds(t *testing.T) {
	start, err := StartOfDay("2024-03-01")
	require.NoError(t, err)
	end, err := EndOfDay("2024-03-01")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local), start)
	assert.True(t, end.After(time.Date(2024, 3, 1, 23, 59, 59, 0, time.Local)))
	assert.True(t, end.Before(time.Date(2024, 3, 2, 0, 0, 0, 0, time.Local)))
}

func TestDayBoundsInvalidKey(t *testing.T) {
	_, err := StartOfDay("01-03-2024")
	assert.Error(t, err)

	_, err = EndOfDay("not a date")
	assert.Error(t, err)
}

func TestHourMinute(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want string
	}{
		{
			name: "morning time",
			time: time.Date(2024, 1, 2, 9, 5, 0, 0, time.Local),
			want: "09:05",
		},
		{
			name: "evening time",
			time: time.Date(2024, 1, 2, 21, 45, 59, 0, time.Local),
			want: "21:45",
		},
		{
			name: "midnight",
			time: time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local),
			want: "00:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HourMinute(tt.time))
		})
	}
}

func TestCalendarFields(t *testing.T) {
	ts := time.Date(2024, 10, 21, 12, 0, 0, 0, time.Local)
	assert.Equal(t, 2024, Year(ts))
	assert.Equal(t, 21, Day(ts))
	assert.Equal(t, 10, Month(ts))
}

func TestDurationMillis(t *testing.T) {
	a := time.Date(2024, 1, 2, 9, 0, 0, 0, time.Local)
	b := a.Add(90 * time.Minute)

	assert.Equal(t, int64(90*60*1000), DurationMillis(a, b))
	assert.Equal(t, int64(-90*60*1000), DurationMillis(b, a))
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, 1, 2, 0, 1, 0, 0, time.Local)
	night := time.Date(2024, 1, 2, 23, 59, 0, 0, time.Local)
	nextDay := time.Date(2024, 1, 3, 0, 1, 0, 0, time.Local)

	assert.True(t, SameDay(morning, night))
	assert.False(t, SameDay(night, nextDay))
}
