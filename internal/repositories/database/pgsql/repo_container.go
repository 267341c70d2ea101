package pgsql

import (
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:     newPgxAccountRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		CreditRepo:      newPgxCreditRepository(dbPool),
		WorkShiftRepo:   newPgxWorkShiftRepository(dbPool),
		StatsRepo:       newStatsRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
