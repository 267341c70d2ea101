package pgsql

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const accountColumns = `id, user_id, name, type, balance, currency, credit_limit, is_active, created_at, updated_at`

// PgxAccountRepository implements portsrepo.AccountRepositoryWithTx
type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryWithTx
var _ portsrepo.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

func collectAccount(rows pgx.Rows) (*domain.Account, error) {
	modelAcc, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, err
	}
	acc := mapping.ToDomainAccount(modelAcc)
	return &acc, nil
}

// SaveAccount inserts a new account, including its opening balance.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (user_id, name, type, balance, currency, credit_limit, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + accountColumns

	rows, err := r.Pool.Query(ctx, query,
		modelAcc.UserID,
		modelAcc.Name,
		modelAcc.AccountType,
		modelAcc.Balance,
		modelAcc.Currency,
		modelAcc.CreditLimit,
		modelAcc.IsActive,
		modelAcc.CreatedAt,
		modelAcc.UpdatedAt,
	)
	if err != nil {
		return nil, mapPgError(err, "account", "save")
	}
	saved, err := collectAccount(rows)
	if err != nil {
		return nil, mapPgError(err, "account", "save")
	}
	return saved, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, mapPgError(err, "account", "find")
	}
	acc, err := collectAccount(rows)
	if err != nil {
		return nil, mapPgError(err, "account", "find")
	}
	return acc, nil
}

// ListActiveAccounts retrieves the active accounts of a user.
func (r *PgxAccountRepository) ListActiveAccounts(ctx context.Context, userID int64) ([]domain.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE user_id = $1 AND is_active = TRUE
		ORDER BY created_at DESC, id DESC`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, mapPgError(err, "accounts", "list")
	}
	modelAccs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, mapPgError(err, "accounts", "list")
	}
	return mapping.ToDomainAccountSlice(modelAccs), nil
}

// UpdateAccount updates the descriptive fields of an account. Balance is not writable here.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) (*domain.Account, error) {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		UPDATE accounts
		SET name = $2, type = $3, currency = $4, credit_limit = $5, updated_at = $6
		WHERE id = $1
		RETURNING ` + accountColumns

	rows, err := r.Pool.Query(ctx, query,
		modelAcc.AccountID,
		modelAcc.Name,
		modelAcc.AccountType,
		modelAcc.Currency,
		modelAcc.CreditLimit,
		modelAcc.UpdatedAt,
	)
	if err != nil {
		return nil, mapPgError(err, "account", "update")
	}
	updated, err := collectAccount(rows)
	if err != nil {
		return nil, mapPgError(err, "account", "update")
	}
	return updated, nil
}

// DeactivateAccount marks an account as inactive. Its transactions are kept.
func (r *PgxAccountRepository) DeactivateAccount(ctx context.Context, accountID int64, now time.Time) error {
	query := `UPDATE accounts SET is_active = FALSE, updated_at = $2 WHERE id = $1`

	cmdTag, err := r.Pool.Exec(ctx, query, accountID, now)
	if err != nil {
		return mapPgError(err, "account", "deactivate")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("account")
	}
	return nil
}

// FindAccountsByIDsForUpdate locks the given accounts in id order.
// Must be called within a transaction.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []int64) (map[int64]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[int64]domain.Account{}, nil
	}

	query := `
		SELECT ` + accountColumns + `
		FROM accounts
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE`

	rows, err := tx.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, mapPgError(err, "accounts", "lock")
	}
	modelAccs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Account])
	if err != nil {
		return nil, mapPgError(err, "accounts", "lock")
	}

	accountsMap := make(map[int64]domain.Account, len(modelAccs))
	for _, m := range modelAccs {
		accountsMap[m.AccountID] = mapping.ToDomainAccount(m)
	}
	return accountsMap, nil
}

// ApplyBalanceDeltasInTx adds each non-zero delta to its account balance and
// returns the accounts as they are after the update. A delta for an account
// that does not exist is skipped.
func (r *PgxAccountRepository) ApplyBalanceDeltasInTx(ctx context.Context, tx pgx.Tx, deltas map[int64]decimal.Decimal, now time.Time) (map[int64]domain.Account, error) {
	accountIDs := make([]int64, 0, len(deltas))
	for accountID, delta := range deltas {
		if !delta.IsZero() {
			accountIDs = append(accountIDs, accountID)
		}
	}
	if len(accountIDs) == 0 {
		return map[int64]domain.Account{}, nil
	}
	sort.Slice(accountIDs, func(i, j int) bool { return accountIDs[i] < accountIDs[j] })

	query := `
		UPDATE accounts
		SET balance = COALESCE(balance, 0) + $2, updated_at = $3
		WHERE id = $1
		RETURNING ` + accountColumns

	batch := &pgx.Batch{}
	for _, accountID := range accountIDs {
		batch.Queue(query, accountID, deltas[accountID], now)
	}

	br := tx.SendBatch(ctx, batch)
	updated := make(map[int64]domain.Account, len(accountIDs))
	for _, accountID := range accountIDs {
		rows, err := br.Query()
		if err != nil {
			_ = br.Close()
			return nil, mapPgError(err, "account balance", "update")
		}
		acc, err := collectAccount(rows)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				slog.WarnContext(ctx, "Balance delta skipped for missing account",
					slog.Int64("account_id", accountID),
					slog.String("delta", deltas[accountID].String()))
				continue
			}
			_ = br.Close()
			return nil, mapPgError(err, "account balance", "update")
		}
		updated[accountID] = *acc
	}

	if err := br.Close(); err != nil {
		return nil, mapPgError(err, "account balance", "update")
	}
	return updated, nil
}
