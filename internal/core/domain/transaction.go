package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the direction of money for a transaction.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// Transaction is a single income or expense booked against one account.
// Amount is always positive; Type carries the sign.
type Transaction struct {
	TransactionID   int64           `json:"id"`
	UserID          int64           `json:"user_id"`
	AccountID       int64           `json:"account_id"`
	CategoryID      *int64          `json:"category_id"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	TransactionType TransactionType `json:"type"`
	Date            time.Time       `json:"date"`
	AuditFields

	// Read-side enrichment, populated by joins.
	CategoryName  *string      `json:"category_name,omitempty"`
	CategoryColor *string      `json:"category_color,omitempty"`
	CategoryIcon  *string      `json:"category_icon,omitempty"`
	AccountName   *string      `json:"account_name,omitempty"`
	AccountType   *AccountType `json:"account_type,omitempty"`
}

// SignedAmount is the effect the transaction has on its account balance.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.TransactionType == Expense {
		return t.Amount.Abs().Neg()
	}
	return t.Amount.Abs()
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	DateRange
	CategoryID *int64
	AccountID  *int64
	Limit      int
	Offset     int
}
