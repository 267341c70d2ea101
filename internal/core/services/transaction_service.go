package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/utils/accounting"
	"github.com/SscSPs/finance_tracker/internal/utils/calendar"
	"github.com/jackc/pgx/v5"
)

// transactionService books income and expense and keeps account balances in
// step with them. Every write locks the affected rows, applies the balance
// delta and commits in one database transaction.
type transactionService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepositoryWithTx
	accountRepo  portsrepo.AccountTransactionSupport
	categoryRepo portsrepo.CategoryReader
	hooks        ledgerHooks
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryWithTx,
	accountRepo portsrepo.AccountTransactionSupport,
	categoryRepo portsrepo.CategoryReader,
	options ...LedgerOption,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		txnRepo:      txnRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		hooks:        newLedgerHooks(options...),
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) GetTransactionByID(ctx context.Context, userID, transactionID int64) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find transaction", slog.Int64("transaction_id", transactionID))
		}
		return nil, err
	}
	if err := s.authorizeOwner(ctx, "transaction", transactionID, txn.UserID, userID); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, userID int64, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	filter, err := params.ToDomain()
	if err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.ListTransactions(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.Int64("user_id", userID))
		return nil, err
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}
	return txns, nil
}

func (s *transactionService) CreateTransaction(ctx context.Context, userID int64, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	date := calendar.DateOnly(s.hooks.now())
	if req.Date != "" {
		parsed, err := dto.ParseDate("date", req.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}
	if err := s.checkCategory(ctx, userID, req.CategoryID); err != nil {
		return nil, err
	}

	now := s.hooks.now().UTC()
	txn := domain.Transaction{
		UserID:          userID,
		AccountID:       req.AccountID,
		CategoryID:      req.CategoryID,
		Amount:          accounting.RoundMoney(req.Amount),
		Description:     req.Description,
		TransactionType: req.TransactionType,
		Date:            date,
		AuditFields:     domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if !txn.Amount.IsPositive() {
		return nil, apperrors.NewValidationFailedError("amount must be greater than zero")
	}

	tx, err := s.txnRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction")
		return nil, err
	}
	defer s.txnRepo.Rollback(ctx, tx) // no-op once committed

	accounts, err := s.lockOwnedAccounts(ctx, tx, userID, txn.AccountID)
	if err != nil {
		return nil, err
	}
	if err := requireActiveAccount(accounts[txn.AccountID]); err != nil {
		return nil, err
	}

	saved, err := s.txnRepo.SaveTransactionInTx(ctx, tx, txn)
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.Int64("account_id", txn.AccountID))
		return nil, err
	}

	if err := s.applyDeltas(ctx, tx, nil, saved); err != nil {
		return nil, err
	}

	if err := s.txnRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit transaction creation", slog.Int64("transaction_id", saved.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.Int64("transaction_id", saved.TransactionID),
		slog.Int64("account_id", saved.AccountID),
		slog.String("type", string(saved.TransactionType)))

	result := s.reload(ctx, saved)
	s.hooks.afterCommit(ctx, &s.BaseService, "transaction", "create", domain.LedgerEvent{
		Type:     domain.EventTransactionCreated,
		UserID:   userID,
		EntityID: result.TransactionID,
		Payload:  result,
	})
	return result, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, userID, transactionID int64, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	if req.IsEmpty() {
		return nil, apperrors.NewValidationFailedError("no fields to update")
	}

	var newDate *time.Time
	if req.Date != nil {
		parsed, err := dto.ParseDate("date", *req.Date)
		if err != nil {
			return nil, err
		}
		newDate = &parsed
	}
	if req.CategoryID != nil {
		if err := s.checkCategory(ctx, userID, req.CategoryID); err != nil {
			return nil, err
		}
	}

	tx, err := s.txnRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction")
		return nil, err
	}
	defer s.txnRepo.Rollback(ctx, tx) // no-op once committed

	current, err := s.txnRepo.FindTransactionByIDForUpdate(ctx, tx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to lock transaction", slog.Int64("transaction_id", transactionID))
		}
		return nil, err
	}
	if err := s.authorizeOwner(ctx, "transaction", transactionID, current.UserID, userID); err != nil {
		return nil, err
	}

	updated := *current
	if req.AccountID != nil {
		updated.AccountID = *req.AccountID
	}
	if req.CategoryID != nil {
		updated.CategoryID = req.CategoryID
	}
	if req.Amount != nil {
		updated.Amount = accounting.RoundMoney(*req.Amount)
		if !updated.Amount.IsPositive() {
			return nil, apperrors.NewValidationFailedError("amount must be greater than zero")
		}
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.TransactionType != nil {
		updated.TransactionType = *req.TransactionType
	}
	if newDate != nil {
		updated.Date = *newDate
	}
	updated.UpdatedAt = s.hooks.now().UTC()

	accounts, err := s.lockOwnedAccounts(ctx, tx, userID, current.AccountID, updated.AccountID)
	if err != nil {
		return nil, err
	}

	deltas, err := accounting.BalanceDeltas(current, &updated)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}
	if _, touched := deltas[updated.AccountID]; touched {
		if err := requireActiveAccount(accounts[updated.AccountID]); err != nil {
			return nil, err
		}
	}

	if err := s.txnRepo.UpdateTransactionInTx(ctx, tx, updated); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.Int64("transaction_id", transactionID))
		return nil, err
	}

	if err := s.applyDeltas(ctx, tx, current, &updated); err != nil {
		return nil, err
	}

	if err := s.txnRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit transaction update", slog.Int64("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.Int64("transaction_id", transactionID))

	result := s.reload(ctx, &updated)
	s.hooks.afterCommit(ctx, &s.BaseService, "transaction", "update", domain.LedgerEvent{
		Type:     domain.EventTransactionUpdated,
		UserID:   userID,
		EntityID: transactionID,
		Payload:  result,
	})
	return result, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, userID, transactionID int64) error {
	tx, err := s.txnRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction")
		return err
	}
	defer s.txnRepo.Rollback(ctx, tx) // no-op once committed

	current, err := s.txnRepo.FindTransactionByIDForUpdate(ctx, tx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to lock transaction", slog.Int64("transaction_id", transactionID))
		}
		return err
	}
	if err := s.authorizeOwner(ctx, "transaction", transactionID, current.UserID, userID); err != nil {
		return err
	}

	// The account may have been deactivated since; the reversal still applies.
	if _, err := s.lockOwnedAccounts(ctx, tx, userID, current.AccountID); err != nil {
		return err
	}

	if err := s.txnRepo.DeleteTransactionInTx(ctx, tx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.Int64("transaction_id", transactionID))
		return err
	}

	if err := s.applyDeltas(ctx, tx, current, nil); err != nil {
		return err
	}

	if err := s.txnRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit transaction deletion", slog.Int64("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Transaction deleted", slog.Int64("transaction_id", transactionID))
	s.hooks.afterCommit(ctx, &s.BaseService, "transaction", "delete", domain.LedgerEvent{
		Type:     domain.EventTransactionDeleted,
		UserID:   userID,
		EntityID: transactionID,
		Payload:  current,
	})
	return nil
}

// checkCategory verifies that the category exists and is visible to the user.
func (s *transactionService) checkCategory(ctx context.Context, userID int64, categoryID *int64) error {
	if categoryID == nil {
		return nil
	}
	category, err := s.categoryRepo.FindCategoryByID(ctx, *categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewValidationFailedError("category does not exist")
		}
		s.LogError(ctx, err, "Failed to find category", slog.Int64("category_id", *categoryID))
		return err
	}
	if !category.VisibleTo(userID) {
		return apperrors.NewValidationFailedError("category does not exist")
	}
	return nil
}

// lockOwnedAccounts locks the accounts in ascending id order and checks they
// exist and belong to the user.
func (s *transactionService) lockOwnedAccounts(ctx context.Context, tx pgx.Tx, userID int64, accountIDs ...int64) (map[int64]domain.Account, error) {
	ids := make([]int64, 0, len(accountIDs))
	seen := make(map[int64]struct{}, len(accountIDs))
	for _, id := range accountIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	accounts, err := s.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, ids)
	if err != nil {
		s.LogError(ctx, err, "Failed to lock accounts", slog.Any("account_ids", ids))
		return nil, err
	}

	for _, id := range ids {
		account, ok := accounts[id]
		if !ok {
			return nil, apperrors.NewNotFoundError("account")
		}
		if err := s.authorizeOwner(ctx, "account", id, account.UserID, userID); err != nil {
			return nil, err
		}
	}
	return accounts, nil
}

func (s *transactionService) applyDeltas(ctx context.Context, tx pgx.Tx, oldTxn, newTxn *domain.Transaction) error {
	deltas, err := accounting.BalanceDeltas(oldTxn, newTxn)
	if err != nil {
		return apperrors.NewValidationFailedError(err.Error())
	}
	if len(deltas) == 0 {
		return nil
	}

	if _, err := s.accountRepo.ApplyBalanceDeltasInTx(ctx, tx, deltas, s.hooks.now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to apply balance deltas")
		return err
	}
	return nil
}

// reload returns the committed transaction with its joined columns. The write
// has already succeeded, so a failed read falls back to the written row.
func (s *transactionService) reload(ctx context.Context, written *domain.Transaction) *domain.Transaction {
	txn, err := s.txnRepo.FindTransactionByID(ctx, written.TransactionID)
	if err != nil {
		s.LogError(ctx, err, "Failed to reload transaction", slog.Int64("transaction_id", written.TransactionID))
		return written
	}
	return txn
}
