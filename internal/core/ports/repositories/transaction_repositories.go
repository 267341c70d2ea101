package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionReader defines read operations for transactions
type TransactionReader interface {
	// FindTransactionByID returns the transaction with its joined category and account columns.
	FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error)

	// ListTransactions returns the user's transactions ordered by date and creation time, newest first.
	ListTransactions(ctx context.Context, userID int64, filter domain.TransactionFilter) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations. Every write runs inside the
// caller's database transaction so that the balance delta lands with it.
type TransactionWriter interface {
	FindTransactionByIDForUpdate(ctx context.Context, tx pgx.Tx, transactionID int64) (*domain.Transaction, error)
	SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (*domain.Transaction, error)
	UpdateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error
	DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID int64) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
