package pgsql

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	transactionColumns = `id, user_id, account_id, category_id, amount, description, type, date, created_at, updated_at`

	transactionJoinedSelect = `
		SELECT t.id, t.user_id, t.account_id, t.category_id, t.amount, t.description, t.type, t.date,
			t.created_at, t.updated_at,
			c.name AS category_name, c.color AS category_color, c.icon AS category_icon,
			a.name AS account_name, a.type AS account_type
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id
		LEFT JOIN accounts a ON t.account_id = a.id`

	defaultTransactionLimit = 50
	maxTransactionLimit     = 500
)

// PgxTransactionRepository implements portsrepo.TransactionRepositoryWithTx
type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func collectTransaction(rows pgx.Rows) (*domain.Transaction, error) {
	// Lax: writes return only the base columns, reads also return the joined ones.
	modelTxn, err := pgx.CollectOneRow(rows, pgx.RowToStructByNameLax[models.Transaction])
	if err != nil {
		return nil, err
	}
	txn := mapping.ToDomainTransaction(modelTxn)
	return &txn, nil
}

// FindTransactionByID retrieves a transaction with its category and account display fields.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, transactionJoinedSelect+` WHERE t.id = $1`, transactionID)
	if err != nil {
		return nil, mapPgError(err, "transaction", "find")
	}
	txn, err := collectTransaction(rows)
	if err != nil {
		return nil, mapPgError(err, "transaction", "find")
	}
	return txn, nil
}

// ListTransactions retrieves the user's transactions matching the filter.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, userID int64, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultTransactionLimit
	}
	if limit > maxTransactionLimit {
		limit = maxTransactionLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	fb := newFilterBuilder("t.user_id = $%d", userID)
	if filter.StartDate != nil {
		fb.add("t.date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		fb.add("t.date <= $%d", *filter.EndDate)
	}
	if filter.CategoryID != nil {
		fb.add("t.category_id = $%d", *filter.CategoryID)
	}
	if filter.AccountID != nil {
		fb.add("t.account_id = $%d", *filter.AccountID)
	}

	query := transactionJoinedSelect + fb.where() +
		` ORDER BY t.date DESC, t.created_at DESC, t.id DESC LIMIT ` + fb.placeholder(limit) + ` OFFSET ` + fb.placeholder(offset)

	rows, err := r.Pool.Query(ctx, query, fb.args...)
	if err != nil {
		return nil, mapPgError(err, "transactions", "list")
	}
	modelTxns, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, mapPgError(err, "transactions", "list")
	}
	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// FindTransactionByIDForUpdate locks a transaction row. Must be called within a transaction.
func (r *PgxTransactionRepository) FindTransactionByIDForUpdate(ctx context.Context, tx pgx.Tx, transactionID int64) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 FOR UPDATE`

	rows, err := tx.Query(ctx, query, transactionID)
	if err != nil {
		return nil, mapPgError(err, "transaction", "lock")
	}
	txn, err := collectTransaction(rows)
	if err != nil {
		return nil, mapPgError(err, "transaction", "lock")
	}
	return txn, nil
}

// SaveTransactionInTx inserts a transaction and returns it with its ID.
func (r *PgxTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) (*domain.Transaction, error) {
	modelTxn := mapping.ToModelTransaction(txn)

	query := `
		INSERT INTO transactions (user_id, account_id, category_id, amount, description, type, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + transactionColumns

	rows, err := tx.Query(ctx, query,
		modelTxn.UserID,
		modelTxn.AccountID,
		modelTxn.CategoryID,
		modelTxn.Amount,
		modelTxn.Description,
		modelTxn.TransactionType,
		modelTxn.Date,
		modelTxn.CreatedAt,
		modelTxn.UpdatedAt,
	)
	if err != nil {
		return nil, mapPgError(err, "transaction", "save")
	}
	saved, err := collectTransaction(rows)
	if err != nil {
		return nil, mapPgError(err, "transaction", "save")
	}
	return saved, nil
}

// UpdateTransactionInTx overwrites the editable columns of a transaction.
func (r *PgxTransactionRepository) UpdateTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	modelTxn := mapping.ToModelTransaction(txn)

	query := `
		UPDATE transactions
		SET account_id = $2, category_id = $3, amount = $4, description = $5, type = $6, date = $7, updated_at = $8
		WHERE id = $1`

	cmdTag, err := tx.Exec(ctx, query,
		modelTxn.TransactionID,
		modelTxn.AccountID,
		modelTxn.CategoryID,
		modelTxn.Amount,
		modelTxn.Description,
		modelTxn.TransactionType,
		modelTxn.Date,
		modelTxn.UpdatedAt,
	)
	if err != nil {
		return mapPgError(err, "transaction", "update")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction")
	}
	return nil
}

// DeleteTransactionInTx removes a transaction row.
func (r *PgxTransactionRepository) DeleteTransactionInTx(ctx context.Context, tx pgx.Tx, transactionID int64) error {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, transactionID)
	if err != nil {
		return mapPgError(err, "transaction", "delete")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction")
	}
	return nil
}

