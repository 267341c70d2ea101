package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Credit mirrors a row of the credits table.
type Credit struct {
	CreditID        int64           `db:"id"`
	UserID          int64           `db:"user_id"`
	Name            string          `db:"name"`
	CreditType      string          `db:"type"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	RemainingAmount decimal.Decimal `db:"remaining_amount"`
	MonthlyPayment  decimal.Decimal `db:"monthly_payment"`
	InterestRate    decimal.Decimal `db:"interest_rate"`
	StartDate       time.Time       `db:"start_date"`
	EndDate         *time.Time      `db:"end_date"`
	NextPaymentDate time.Time       `db:"next_payment_date"`
	PaymentDay      int             `db:"payment_day"`
	IsActive        bool            `db:"is_active"`
	AuditFields
}

// CreditPayment mirrors a row of the append-only credit_payments table.
type CreditPayment struct {
	PaymentID       int64           `db:"id"`
	CreditID        int64           `db:"credit_id"`
	Amount          decimal.Decimal `db:"amount"`
	PrincipalAmount decimal.Decimal `db:"principal_amount"`
	InterestAmount  decimal.Decimal `db:"interest_amount"`
	PaymentDate     time.Time       `db:"payment_date"`
	CreatedAt       time.Time       `db:"created_at"`
}
