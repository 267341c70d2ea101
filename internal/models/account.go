package models

import (
	"github.com/shopspring/decimal"
)

// Account mirrors a row of the accounts table.
type Account struct {
	AccountID   int64           `db:"id"`
	UserID      int64           `db:"user_id"`
	Name        string          `db:"name"`
	AccountType string          `db:"type"`
	Balance     decimal.Decimal `db:"balance"`
	Currency    string          `db:"currency"`
	CreditLimit decimal.Decimal `db:"credit_limit"`
	IsActive    bool            `db:"is_active"`
	AuditFields
}
