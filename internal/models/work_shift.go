package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkShift mirrors a row of the work_shifts table.
type WorkShift struct {
	ShiftID    int64           `db:"id"`
	UserID     int64           `db:"user_id"`
	Date       time.Time       `db:"date"`
	Hours      decimal.Decimal `db:"hours"`
	HourlyRate decimal.Decimal `db:"hourly_rate"`
	Bonus      decimal.Decimal `db:"bonus"`
	Advance    decimal.Decimal `db:"advance"`
	Deduction  decimal.Decimal `db:"deduction"`
	Notes      string          `db:"notes"`
	Status     string          `db:"status"`
	AuditFields
}
