package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TransactionManager opens and finishes database transactions. A transaction
// started by any repository can be passed to the *InTx methods of the others.
type TransactionManager interface {
	// Begin starts a new database transaction
	Begin(ctx context.Context) (pgx.Tx, error)

	// Commit commits a transaction
	Commit(ctx context.Context, tx pgx.Tx) error

	// Rollback rolls back a transaction; rolling back a finished transaction is not an error
	Rollback(ctx context.Context, tx pgx.Tx) error
}
