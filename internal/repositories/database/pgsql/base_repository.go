package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewStorageError("failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewStorageError("failed to rollback transaction", err)
	}
	return nil
}

// mapPgError translates driver errors into application errors.
func mapPgError(err error, entity string, action string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError(entity)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return apperrors.NewAppError(http.StatusConflict, entity+" already exists", err)
		case "23503", "23514": // foreign_key_violation, check_violation
			return apperrors.NewAppError(http.StatusBadRequest, entity+" violates constraint "+pgErr.ConstraintName, err)
		}
	}

	return apperrors.NewStorageError(fmt.Sprintf("failed to %s %s", action, entity), err)
}

// filterBuilder accumulates AND-ed WHERE clauses with positional arguments.
// Each clause holds one %d verb that receives the placeholder number.
type filterBuilder struct {
	clauses []string
	args    []any
}

func newFilterBuilder(clause string, arg any) *filterBuilder {
	b := &filterBuilder{}
	b.add(clause, arg)
	return b
}

func (b *filterBuilder) add(clause string, arg any) {
	b.args = append(b.args, arg)
	b.clauses = append(b.clauses, fmt.Sprintf(clause, len(b.args)))
}

// placeholder appends an argument and returns its $n marker, for LIMIT/OFFSET.
func (b *filterBuilder) placeholder(arg any) string {
	b.args = append(b.args, arg)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *filterBuilder) where() string {
	return " WHERE " + strings.Join(b.clauses, " AND ")
}
