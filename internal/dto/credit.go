package dto

import (
	"errors"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/amortization"
	"github.com/shopspring/decimal"
)

// CreateCreditRequest defines a new installment credit. RemainingAmount
// defaults to TotalAmount and NextPaymentDate to one month after StartDate.
type CreateCreditRequest struct {
	Name            string            `json:"name" binding:"required,max=100"`
	CreditType      domain.CreditType `json:"type" binding:"required,oneof=loan mortgage credit_card other"`
	TotalAmount     decimal.Decimal   `json:"total_amount" binding:"required,gt=0"`
	RemainingAmount *decimal.Decimal  `json:"remaining_amount" binding:"omitempty,gte=0"`
	MonthlyPayment  decimal.Decimal   `json:"monthly_payment" binding:"gte=0"`
	InterestRate    decimal.Decimal   `json:"interest_rate" binding:"gte=0,lte=100"`
	StartDate       string            `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate         string            `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	NextPaymentDate string            `json:"next_payment_date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateCreditRequest uses pointers to tell omitted fields from zero values.
type UpdateCreditRequest struct {
	Name            *string            `json:"name" binding:"omitempty,min=1,max=100"`
	CreditType      *domain.CreditType `json:"type" binding:"omitempty,oneof=loan mortgage credit_card other"`
	TotalAmount     *decimal.Decimal   `json:"total_amount" binding:"omitempty,gt=0"`
	RemainingAmount *decimal.Decimal   `json:"remaining_amount" binding:"omitempty,gte=0"`
	MonthlyPayment  *decimal.Decimal   `json:"monthly_payment" binding:"omitempty,gte=0"`
	InterestRate    *decimal.Decimal   `json:"interest_rate" binding:"omitempty,gte=0,lte=100"`
	StartDate       *string            `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate         *string            `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	NextPaymentDate *string            `json:"next_payment_date" binding:"omitempty,datetime=2006-01-02"`
}

// IsEmpty reports whether no updatable field was supplied.
func (r UpdateCreditRequest) IsEmpty() bool {
	return r.Name == nil && r.CreditType == nil && r.TotalAmount == nil && r.RemainingAmount == nil &&
		r.MonthlyPayment == nil && r.InterestRate == nil && r.StartDate == nil && r.EndDate == nil &&
		r.NextPaymentDate == nil
}

// MakePaymentRequest records one payment against a credit.
type MakePaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required,gt=0"`
}

// CreditWithStats is a credit together with its derived figures. When the
// figures cannot be computed StatsError explains why and Stats is omitted.
type CreditWithStats struct {
	domain.Credit
	Stats      *domain.CreditStats `json:"stats,omitempty"`
	StatsError string              `json:"stats_error,omitempty"`
}

// NewCreditWithStats attaches the derived figures of credit, or the reason
// they are undefined.
func NewCreditWithStats(credit domain.Credit) CreditWithStats {
	item := CreditWithStats{Credit: credit}
	stats, err := amortization.CalculateStats(credit)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			item.StatsError = appErr.Message
		} else {
			item.StatsError = err.Error()
		}
		return item
	}
	item.Stats = &stats
	return item
}

// PaymentResponse is the result of a payment: the updated credit and the stored record.
type PaymentResponse struct {
	Credit  CreditWithStats      `json:"credit"`
	Payment domain.CreditPayment `json:"payment"`
}
