package mapping

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// Joined display columns are read-only and not carried over.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		UserID:          d.UserID,
		AccountID:       d.AccountID,
		CategoryID:      d.CategoryID,
		Amount:          d.Amount,
		Description:     d.Description,
		TransactionType: string(d.TransactionType),
		Date:            d.Date,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	txn := domain.Transaction{
		TransactionID:   m.TransactionID,
		UserID:          m.UserID,
		AccountID:       m.AccountID,
		CategoryID:      m.CategoryID,
		Amount:          m.Amount,
		Description:     m.Description,
		TransactionType: domain.TransactionType(m.TransactionType),
		Date:            m.Date,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
		CategoryName:    m.CategoryName,
		CategoryColor:   m.CategoryColor,
		CategoryIcon:    m.CategoryIcon,
		AccountName:     m.AccountName,
	}
	if m.AccountType != nil {
		accountType := domain.AccountType(*m.AccountType)
		txn.AccountType = &accountType
	}
	return txn
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
