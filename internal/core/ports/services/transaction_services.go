package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions
type TransactionReaderSvc interface {
	GetTransactionByID(ctx context.Context, userID, transactionID int64) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, userID int64, params dto.ListTransactionsParams) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations. Each one adjusts the
// affected account balances in the same database transaction.
type TransactionWriterSvc interface {
	CreateTransaction(ctx context.Context, userID int64, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, transactionID int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID int64) error
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

// StatsSvc computes income/expense statistics.
type StatsSvc interface {
	GetTransactionStats(ctx context.Context, userID int64, params dto.DateRangeParams) (*domain.TransactionStats, error)
	GetCategoryStats(ctx context.Context, userID int64, params dto.CategoryStatsParams) ([]domain.CategoryTotal, error)
	// GetSummary returns both of the above, fetched concurrently.
	GetSummary(ctx context.Context, userID int64, params dto.CategoryStatsParams) (*dto.TransactionSummaryResponse, error)
}
