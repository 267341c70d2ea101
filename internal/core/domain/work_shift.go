package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShiftStatus tracks whether a shift has been worked yet.
type ShiftStatus string

const (
	ShiftPlanned   ShiftStatus = "planned"
	ShiftCompleted ShiftStatus = "completed"
)

// WorkShift is one logged block of hourly work.
type WorkShift struct {
	ShiftID    int64           `json:"id"`
	UserID     int64           `json:"user_id"`
	Date       time.Time       `json:"date"`
	Hours      decimal.Decimal `json:"hours"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Bonus      decimal.Decimal `json:"bonus"`
	Advance    decimal.Decimal `json:"advance"`
	Deduction  decimal.Decimal `json:"deduction"`
	Notes      string          `json:"notes"`
	Status     ShiftStatus     `json:"status"`
	AuditFields
}

// BaseEarnings is hours times rate.
func (s WorkShift) BaseEarnings() decimal.Decimal {
	return s.Hours.Mul(s.HourlyRate)
}

// Total is the take-home amount for the shift.
func (s WorkShift) Total() decimal.Decimal {
	return s.BaseEarnings().Add(s.Bonus).Sub(s.Advance).Sub(s.Deduction)
}

// ShiftFilter narrows a shift listing or aggregation.
type ShiftFilter struct {
	DateRange
	Status *ShiftStatus
	Limit  int
	Offset int
}

// ShiftStatusGroup is one status bucket as produced by the store.
type ShiftStatusGroup struct {
	Status         ShiftStatus
	Shifts         int64
	Hours          decimal.Decimal
	Bonus          decimal.Decimal
	Advance        decimal.Decimal
	Deduction      decimal.Decimal
	AvgHourlyRate  decimal.Decimal
	ExactBaseTotal decimal.Decimal
}

// ShiftStatusSummary is the per-status part of ShiftStats.
type ShiftStatusSummary struct {
	Shifts    int64           `json:"shifts"`
	Hours     decimal.Decimal `json:"hours"`
	Bonus     decimal.Decimal `json:"bonus"`
	Advance   decimal.Decimal `json:"advance"`
	Deduction decimal.Decimal `json:"deduction"`
}

// ShiftStats aggregates shifts across statuses.
type ShiftStats struct {
	TotalShifts    int64                              `json:"total_shifts"`
	TotalHours     decimal.Decimal                    `json:"total_hours"`
	TotalBonus     decimal.Decimal                    `json:"total_bonus"`
	TotalAdvance   decimal.Decimal                    `json:"total_advance"`
	TotalDeduction decimal.Decimal                    `json:"total_deduction"`
	AvgHourlyRate  decimal.Decimal                    `json:"avg_hourly_rate"`
	TotalEarnings  decimal.Decimal                    `json:"total_earnings"`
	NetEarnings    decimal.Decimal                    `json:"net_earnings"`
	ExactEarnings  decimal.Decimal                    `json:"exact_earnings"`
	ByStatus       map[ShiftStatus]ShiftStatusSummary `json:"by_status"`
}
