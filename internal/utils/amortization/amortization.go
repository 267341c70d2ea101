// Package amortization implements the payment and statistics math for
// installment credits.
package amortization

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/utils/accounting"
	"github.com/SscSPs/finance_tracker/internal/utils/calendar"
	"github.com/shopspring/decimal"
)

var (
	hundred      = decimal.NewFromInt(100)
	monthsInYear = decimal.NewFromInt(12)
)

// MonthlyRate converts a nominal annual percentage into a monthly fraction.
func MonthlyRate(annualRate decimal.Decimal) decimal.Decimal {
	return annualRate.Div(hundred).Div(monthsInYear)
}

// SplitPayment divides a payment into interest on the outstanding balance and
// principal. Principal is negative when the payment does not cover the
// accrued interest.
func SplitPayment(remaining, annualRate, payment decimal.Decimal) (interest, principal decimal.Decimal) {
	interest = accounting.RoundMoney(remaining.Mul(MonthlyRate(annualRate)))
	principal = payment.Sub(interest)
	return interest, principal
}

// NextPaymentDate returns the due date following the credit's current one.
func NextPaymentDate(credit domain.Credit) time.Time {
	return calendar.AddMonths(credit.NextPaymentDate, 1, credit.PaymentDay)
}

// ApplyPayment computes the effect of one payment. It returns the credit as it
// must be persisted and the payment record to append. The remaining amount is
// floored at zero; nothing else is clamped.
func ApplyPayment(credit domain.Credit, amount decimal.Decimal, paidOn time.Time) (domain.Credit, domain.CreditPayment, error) {
	if !amount.IsPositive() {
		return credit, domain.CreditPayment{}, apperrors.NewValidationFailedError("payment amount must be greater than zero")
	}

	interest, principal := SplitPayment(credit.RemainingAmount, credit.InterestRate, amount)

	payment := domain.CreditPayment{
		CreditID:        credit.CreditID,
		Amount:          amount,
		PrincipalAmount: principal,
		InterestAmount:  interest,
		PaymentDate:     calendar.DateOnly(paidOn),
	}

	updated := credit
	updated.RemainingAmount = decimal.Max(decimal.Zero, credit.RemainingAmount.Sub(principal))
	updated.NextPaymentDate = NextPaymentDate(credit)
	if updated.PaymentDay == 0 {
		updated.PaymentDay = credit.NextPaymentDate.Day()
	}

	return updated, payment, nil
}

// CalculateStats derives progress and payoff figures for a credit. It fails
// with a domain arithmetic error when the installment or the principal is
// zero.
func CalculateStats(credit domain.Credit) (domain.CreditStats, error) {
	if credit.MonthlyPayment.IsZero() {
		return domain.CreditStats{}, apperrors.NewDomainArithmeticError("cannot compute credit stats: monthly payment is zero")
	}
	if credit.TotalAmount.IsZero() {
		return domain.CreditStats{}, apperrors.NewDomainArithmeticError("cannot compute credit stats: total amount is zero")
	}

	monthlyRate := MonthlyRate(credit.InterestRate)
	paid := credit.TotalAmount.Sub(credit.RemainingAmount)
	progress := paid.Div(credit.TotalAmount).Mul(hundred)

	// Ignores that the last installment is usually smaller.
	remainingMonths := credit.RemainingAmount.Div(credit.MonthlyPayment).Ceil()
	remainingInterest := credit.MonthlyPayment.Mul(remainingMonths).Sub(credit.RemainingAmount)

	monthlyInterest := credit.RemainingAmount.Mul(monthlyRate)
	monthlyPrincipal := credit.MonthlyPayment.Sub(monthlyInterest)

	totalInterest := remainingInterest.Add(paid.Mul(credit.InterestRate.Div(hundred)))

	return domain.CreditStats{
		PaidAmount:        accounting.RoundMoney(paid),
		Progress:          progress.Round(2),
		RemainingMonths:   remainingMonths.IntPart(),
		RemainingInterest: accounting.RoundMoney(remainingInterest),
		MonthlyInterest:   accounting.RoundMoney(monthlyInterest),
		MonthlyPrincipal:  accounting.RoundMoney(monthlyPrincipal),
		TotalInterest:     accounting.RoundMoney(totalInterest),
	}, nil
}
