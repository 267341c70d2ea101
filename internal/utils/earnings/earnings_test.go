package earnings_test

import (
	"testing"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/earnings"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func n(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestFoldShiftStats_Empty(t *testing.T) {
	stats := earnings.FoldShiftStats(nil)

	assert.Equal(t, int64(0), stats.TotalShifts)
	assert.True(t, stats.TotalEarnings.IsZero())
	assert.True(t, stats.NetEarnings.IsZero())
	assert.NotNil(t, stats.ByStatus)
}

func TestFoldShiftStats_SingleRate(t *testing.T) {
	groups := []domain.ShiftStatusGroup{
		{Status: domain.ShiftCompleted, Shifts: 2, Hours: n(16), Bonus: n(1000), Advance: n(2000), Deduction: n(0), AvgHourlyRate: n(800), ExactBaseTotal: n(12800)},
		{Status: domain.ShiftPlanned, Shifts: 1, Hours: n(8), Bonus: n(0), Advance: n(0), Deduction: n(100), AvgHourlyRate: n(800), ExactBaseTotal: n(6400)},
	}

	stats := earnings.FoldShiftStats(groups)

	assert.Equal(t, int64(3), stats.TotalShifts)
	assert.True(t, stats.TotalHours.Equal(n(24)))
	assert.True(t, stats.AvgHourlyRate.Equal(n(800)))
	assert.True(t, stats.TotalEarnings.Equal(n(20200)), "total %s", stats.TotalEarnings)
	assert.True(t, stats.NetEarnings.Equal(n(18100)), "net %s", stats.NetEarnings)
	assert.True(t, stats.ExactEarnings.Equal(stats.TotalEarnings))
	assert.Equal(t, int64(2), stats.ByStatus[domain.ShiftCompleted].Shifts)
	assert.True(t, stats.ByStatus[domain.ShiftPlanned].Deduction.Equal(n(100)))
}

func TestFoldShiftStats_BlendedRateDiffersFromExact(t *testing.T) {
	// one 10h shift at 100 and one 2h shift at 300: average rate 200
	groups := []domain.ShiftStatusGroup{
		{Status: domain.ShiftCompleted, Shifts: 2, Hours: n(12), Bonus: n(0), Advance: n(0), Deduction: n(0), AvgHourlyRate: n(200), ExactBaseTotal: n(1600)},
	}

	stats := earnings.FoldShiftStats(groups)

	assert.True(t, stats.TotalEarnings.Equal(n(2400)), "blended %s", stats.TotalEarnings)
	assert.True(t, stats.ExactEarnings.Equal(n(1600)), "exact %s", stats.ExactEarnings)
}

func TestFoldShiftStats_EarningsUseUnroundedRate(t *testing.T) {
	// three 8h shifts at 100, 100 and 101
	groups := []domain.ShiftStatusGroup{
		{Status: domain.ShiftCompleted, Shifts: 2, Hours: n(16), Bonus: n(0), Advance: n(0), Deduction: n(0), AvgHourlyRate: n(100), ExactBaseTotal: n(1600)},
		{Status: domain.ShiftPlanned, Shifts: 1, Hours: n(8), Bonus: n(0), Advance: n(0), Deduction: n(0), AvgHourlyRate: n(101), ExactBaseTotal: n(808)},
	}

	stats := earnings.FoldShiftStats(groups)

	assert.Equal(t, "100.33", stats.AvgHourlyRate.StringFixed(2))
	assert.True(t, stats.TotalEarnings.Equal(n(2408)), "total %s", stats.TotalEarnings)
	assert.True(t, stats.ExactEarnings.Equal(stats.TotalEarnings))
}
