package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreditType classifies a credit.
type CreditType string

const (
	Loan       CreditType = "loan"
	Mortgage   CreditType = "mortgage"
	CreditCard CreditType = "credit_card"
	OtherDebt  CreditType = "other"
)

// Credit is an installment loan. RemainingAmount never goes below zero and
// NextPaymentDate moves one calendar month per recorded payment, anchored on
// PaymentDay.
type Credit struct {
	CreditID        int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	Name            string          `json:"name"`
	CreditType      CreditType      `json:"type"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
	MonthlyPayment  decimal.Decimal `json:"monthly_payment"`
	InterestRate    decimal.Decimal `json:"interest_rate"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         *time.Time      `json:"end_date"`
	NextPaymentDate time.Time       `json:"next_payment_date"`
	PaymentDay      int             `json:"payment_day"`
	IsActive        bool            `json:"is_active"`
	AuditFields
}

// CreditPayment is an immutable record of one payment against a credit.
type CreditPayment struct {
	PaymentID       int64           `json:"id"`
	CreditID        int64           `json:"credit_id"`
	Amount          decimal.Decimal `json:"amount"`
	PrincipalAmount decimal.Decimal `json:"principal_amount"`
	InterestAmount  decimal.Decimal `json:"interest_amount"`
	PaymentDate     time.Time       `json:"payment_date"`
	CreatedAt       time.Time       `json:"created_at"`
}

// CreditStats are derived on every read and never stored.
type CreditStats struct {
	PaidAmount        decimal.Decimal `json:"paid_amount"`
	Progress          decimal.Decimal `json:"progress"`
	RemainingMonths   int64           `json:"remaining_months"`
	RemainingInterest decimal.Decimal `json:"remaining_interest"`
	MonthlyInterest   decimal.Decimal `json:"monthly_interest"`
	MonthlyPrincipal  decimal.Decimal `json:"monthly_principal"`
	// TotalInterest blends projected remaining interest with a rough estimate
	// of interest already paid. It is not exact amortization accounting.
	TotalInterest decimal.Decimal `json:"total_interest"`
}
