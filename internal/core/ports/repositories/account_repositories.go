package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its identifier, active or not.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// ListActiveAccounts returns the user's active accounts, newest first.
	ListActiveAccounts(ctx context.Context, userID int64) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
// None of these touch the balance column after creation.
type AccountWriter interface {
	// SaveAccount persists a new account with its opening balance and returns it with its ID.
	SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// UpdateAccount updates name, type, currency and credit limit.
	UpdateAccount(ctx context.Context, account domain.Account) (*domain.Account, error)

	// DeactivateAccount marks an account as inactive.
	DeactivateAccount(ctx context.Context, accountID int64, now time.Time) error
}

// AccountTransactionSupport is the balance maintainer: the only path that mutates balances.
type AccountTransactionSupport interface {
	// FindAccountsByIDsForUpdate selects accounts and locks them for update within a transaction.
	// Accounts that do not exist are absent from the result.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []int64) (map[int64]domain.Account, error)

	// ApplyBalanceDeltasInTx adds each delta to its account and returns the updated rows.
	ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[int64]decimal.Decimal, now time.Time) (map[int64]domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountTransactionSupport
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
