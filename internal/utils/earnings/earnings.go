// Package earnings folds per-status shift aggregates into overall figures.
package earnings

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// FoldShiftStats combines status groups into ShiftStats.
//
// AvgHourlyRate is the shift-weighted mean of the group averages, i.e. the
// plain average rate over all shifts. TotalEarnings multiplies it by the total
// hours, which only matches ExactEarnings when every shift has the same rate.
func FoldShiftStats(groups []domain.ShiftStatusGroup) domain.ShiftStats {
	stats := domain.ShiftStats{
		TotalHours:     decimal.Zero,
		TotalBonus:     decimal.Zero,
		TotalAdvance:   decimal.Zero,
		TotalDeduction: decimal.Zero,
		AvgHourlyRate:  decimal.Zero,
		ByStatus:       make(map[domain.ShiftStatus]domain.ShiftStatusSummary, len(groups)),
	}

	weightedRate := decimal.Zero
	exactBase := decimal.Zero
	for _, g := range groups {
		stats.TotalShifts += g.Shifts
		stats.TotalHours = stats.TotalHours.Add(g.Hours)
		stats.TotalBonus = stats.TotalBonus.Add(g.Bonus)
		stats.TotalAdvance = stats.TotalAdvance.Add(g.Advance)
		stats.TotalDeduction = stats.TotalDeduction.Add(g.Deduction)
		weightedRate = weightedRate.Add(g.AvgHourlyRate.Mul(decimal.NewFromInt(g.Shifts)))
		exactBase = exactBase.Add(g.ExactBaseTotal)

		stats.ByStatus[g.Status] = domain.ShiftStatusSummary{
			Shifts:    g.Shifts,
			Hours:     g.Hours,
			Bonus:     g.Bonus,
			Advance:   g.Advance,
			Deduction: g.Deduction,
		}
	}

	avgRate := decimal.Zero
	if stats.TotalShifts > 0 {
		avgRate = weightedRate.Div(decimal.NewFromInt(stats.TotalShifts))
	}
	stats.AvgHourlyRate = accounting.RoundMoney(avgRate)

	// Only the reported rate is rounded; earnings use the exact mean.
	stats.TotalEarnings = accounting.RoundMoney(stats.TotalHours.Mul(avgRate).Add(stats.TotalBonus))
	stats.NetEarnings = stats.TotalEarnings.Sub(stats.TotalAdvance).Sub(stats.TotalDeduction)
	stats.ExactEarnings = accounting.RoundMoney(exactBase.Add(stats.TotalBonus))
	return stats
}
