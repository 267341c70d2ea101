package calendar_test

import (
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/utils/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		anchor int
		want   time.Time
	}{
		{"plain", date(2024, time.March, 15), 1, 15, date(2024, time.April, 15)},
		{"december rolls the year", date(2024, time.December, 10), 1, 10, date(2025, time.January, 10)},
		{"jan 31 to leap february", date(2024, time.January, 31), 1, 31, date(2024, time.February, 29)},
		{"jan 31 to february", date(2023, time.January, 31), 1, 31, date(2023, time.February, 28)},
		{"clamped day recovers", date(2023, time.February, 28), 1, 31, date(2023, time.March, 31)},
		{"anchor defaults to day of t", date(2023, time.May, 31), 1, 0, date(2023, time.June, 30)},
		{"many months", date(2023, time.January, 31), 13, 31, date(2024, time.February, 29)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, calendar.AddMonths(tt.start, tt.months, tt.anchor))
		})
	}
}

func TestAddMonths_StepwiseEqualsDirect(t *testing.T) {
	start := date(2023, time.October, 31)
	current := start
	for n := 1; n <= 30; n++ {
		current = calendar.AddMonths(current, 1, 31)
		assert.Equal(t, calendar.AddMonths(start, n, 31), current, "after %d steps", n)
	}
}

func TestMonthBounds(t *testing.T) {
	start, end, err := calendar.MonthBounds(2023, 2)
	require.NoError(t, err)
	assert.Equal(t, date(2023, time.February, 1), start)
	assert.Equal(t, date(2023, time.February, 28), end)

	_, end, err = calendar.MonthBounds(2024, 4)
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.April, 30), end)

	_, _, err = calendar.MonthBounds(2024, 13)
	assert.Error(t, err)
}
