package mapping

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

// ToModelCredit converts a domain Credit to a model Credit
func ToModelCredit(d domain.Credit) models.Credit {
	return models.Credit{
		CreditID:        d.CreditID,
		UserID:          d.UserID,
		Name:            d.Name,
		CreditType:      string(d.CreditType),
		TotalAmount:     d.TotalAmount,
		RemainingAmount: d.RemainingAmount,
		MonthlyPayment:  d.MonthlyPayment,
		InterestRate:    d.InterestRate,
		StartDate:       d.StartDate,
		EndDate:         d.EndDate,
		NextPaymentDate: d.NextPaymentDate,
		PaymentDay:      d.PaymentDay,
		IsActive:        d.IsActive,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCredit converts a model Credit to a domain Credit
func ToDomainCredit(m models.Credit) domain.Credit {
	return domain.Credit{
		CreditID:        m.CreditID,
		UserID:          m.UserID,
		Name:            m.Name,
		CreditType:      domain.CreditType(m.CreditType),
		TotalAmount:     m.TotalAmount,
		RemainingAmount: m.RemainingAmount,
		MonthlyPayment:  m.MonthlyPayment,
		InterestRate:    m.InterestRate,
		StartDate:       m.StartDate,
		EndDate:         m.EndDate,
		NextPaymentDate: m.NextPaymentDate,
		PaymentDay:      m.PaymentDay,
		IsActive:        m.IsActive,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCreditSlice converts a slice of model Credits to a slice of domain Credits
func ToDomainCreditSlice(ms []models.Credit) []domain.Credit {
	ds := make([]domain.Credit, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCredit(m)
	}
	return ds
}

// ToDomainCreditPayment converts a model CreditPayment to a domain CreditPayment
func ToDomainCreditPayment(m models.CreditPayment) domain.CreditPayment {
	return domain.CreditPayment{
		PaymentID:       m.PaymentID,
		CreditID:        m.CreditID,
		Amount:          m.Amount,
		PrincipalAmount: m.PrincipalAmount,
		InterestAmount:  m.InterestAmount,
		PaymentDate:     m.PaymentDate,
		CreatedAt:       m.CreatedAt,
	}
}

// ToDomainCreditPaymentSlice converts a slice of model CreditPayments to a slice of domain CreditPayments
func ToDomainCreditPaymentSlice(ms []models.CreditPayment) []domain.CreditPayment {
	ds := make([]domain.CreditPayment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCreditPayment(m)
	}
	return ds
}
