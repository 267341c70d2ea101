package services

import (
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The ledger options carry the stats cache, event publisher and metrics.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, ledger ...LedgerOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.AccountRepo, repos.CategoryRepo, ledger...)
	container.Stats = NewStatsService(repos.StatsRepo, ledger...)
	container.Credit = NewCreditService(repos.CreditRepo, ledger...)
	container.WorkShift = NewWorkShiftService(repos.WorkShiftRepo)

	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(cfg, container.User)

	return container
}
