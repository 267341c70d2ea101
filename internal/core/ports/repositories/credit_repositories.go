package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CreditReader defines read operations for credits and their payments
type CreditReader interface {
	FindCreditByID(ctx context.Context, creditID int64) (*domain.Credit, error)
	// ListActiveCredits returns the user's active credits, newest first.
	ListActiveCredits(ctx context.Context, userID int64) ([]domain.Credit, error)
	// ListCreditPayments returns the payment history, latest payment date first.
	ListCreditPayments(ctx context.Context, creditID int64) ([]domain.CreditPayment, error)
}

// CreditWriter defines write operations for credits outside of payments
type CreditWriter interface {
	SaveCredit(ctx context.Context, credit domain.Credit) (*domain.Credit, error)
	UpdateCredit(ctx context.Context, credit domain.Credit) (*domain.Credit, error)
	DeactivateCredit(ctx context.Context, creditID int64, now time.Time) error
}

// CreditPaymentSupport records a payment. Both calls must share one transaction.
type CreditPaymentSupport interface {
	FindCreditByIDForUpdate(ctx context.Context, tx pgx.Tx, creditID int64) (*domain.Credit, error)
	SaveCreditPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.CreditPayment) (*domain.CreditPayment, error)
	// UpdateCreditScheduleInTx persists remaining_amount and next_payment_date together.
	UpdateCreditScheduleInTx(ctx context.Context, tx pgx.Tx, credit domain.Credit) (*domain.Credit, error)
}

// CreditRepositoryFacade combines all credit-related repository interfaces
type CreditRepositoryFacade interface {
	CreditReader
	CreditWriter
	CreditPaymentSupport
}

// CreditRepositoryWithTx extends CreditRepositoryFacade with transaction capabilities
type CreditRepositoryWithTx interface {
	CreditRepositoryFacade
	TransactionManager
}
