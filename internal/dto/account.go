package dto

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
// Balance is the opening balance and may be negative for credit accounts.
type CreateAccountRequest struct {
	Name        string             `json:"name" binding:"required,max=100"`
	AccountType domain.AccountType `json:"type" binding:"required,oneof=checking savings credit"`
	Balance     decimal.Decimal    `json:"balance"`
	Currency    string             `json:"currency" binding:"omitempty,len=3,alpha"`
	CreditLimit decimal.Decimal    `json:"credit_limit" binding:"gte=0"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Balance is accepted only so that an attempt to set it can be rejected.
type UpdateAccountRequest struct {
	Name        *string             `json:"name" binding:"omitempty,min=1,max=100"`
	AccountType *domain.AccountType `json:"type" binding:"omitempty,oneof=checking savings credit"`
	Currency    *string             `json:"currency" binding:"omitempty,len=3,alpha"`
	CreditLimit *decimal.Decimal    `json:"credit_limit" binding:"omitempty,gte=0"`
	Balance     *decimal.Decimal    `json:"balance"`
}

// IsEmpty reports whether no updatable field was supplied.
func (r UpdateAccountRequest) IsEmpty() bool {
	return r.Name == nil && r.AccountType == nil && r.Currency == nil && r.CreditLimit == nil
}

// AccountResponse is an account with its derived available balance.
type AccountResponse struct {
	domain.Account
	AvailableBalance decimal.Decimal `json:"available_balance"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{Account: *acc, AvailableBalance: acc.AvailableBalance()}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
