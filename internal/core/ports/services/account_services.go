package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves an account owned by userID.
	GetAccountByID(ctx context.Context, userID, accountID int64) (*domain.Account, error)

	// ListAccounts retrieves the user's active accounts, newest first.
	ListAccounts(ctx context.Context, userID int64) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data.
// Balances change only through transactions.
type AccountWriterSvc interface {
	CreateAccount(ctx context.Context, userID int64, req dto.CreateAccountRequest) (*domain.Account, error)
	UpdateAccount(ctx context.Context, userID, accountID int64, req dto.UpdateAccountRequest) (*domain.Account, error)
	// DeactivateAccount hides the account; its transactions are kept.
	DeactivateAccount(ctx context.Context, userID, accountID int64) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
