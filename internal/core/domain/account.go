package domain

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the kind of money holder an account represents.
type AccountType string

const (
	Checking AccountType = "checking"
	Savings  AccountType = "savings"
	// CreditAccount balances go negative as the credit line is drawn down.
	CreditAccount AccountType = "credit"
)

// DefaultCurrency is used when an account is created without a currency.
const DefaultCurrency = "RUB"

// Account represents a money holder owned by a single user.
// Balance is only ever changed through ledger deltas.
type Account struct {
	AccountID   int64           `json:"id"`
	UserID      int64           `json:"user_id"`
	Name        string          `json:"name"`
	AccountType AccountType     `json:"type"`
	Balance     decimal.Decimal `json:"balance"`
	Currency    string          `json:"currency"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	IsActive    bool            `json:"is_active"`
	AuditFields
}

// AvailableBalance returns what can still be spent from the account.
func (a Account) AvailableBalance() decimal.Decimal {
	if a.AccountType == CreditAccount {
		return a.CreditLimit.Add(a.Balance)
	}
	return a.Balance
}
