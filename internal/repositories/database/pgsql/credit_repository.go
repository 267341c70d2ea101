package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	creditColumns = `id, user_id, name, type, total_amount, remaining_amount, monthly_payment, interest_rate,
		start_date, end_date, next_payment_date, payment_day, is_active, created_at, updated_at`

	creditPaymentColumns = `id, credit_id, amount, principal_amount, interest_amount, payment_date, created_at`
)

// PgxCreditRepository implements portsrepo.CreditRepositoryWithTx
type PgxCreditRepository struct {
	BaseRepository
}

func newPgxCreditRepository(pool *pgxpool.Pool) *PgxCreditRepository {
	return &PgxCreditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CreditRepositoryWithTx = (*PgxCreditRepository)(nil)

func collectCredit(rows pgx.Rows) (*domain.Credit, error) {
	modelCredit, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Credit])
	if err != nil {
		return nil, err
	}
	credit := mapping.ToDomainCredit(modelCredit)
	return &credit, nil
}

// FindCreditByID retrieves a credit by its ID, active or not.
func (r *PgxCreditRepository) FindCreditByID(ctx context.Context, creditID int64) (*domain.Credit, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+creditColumns+` FROM credits WHERE id = $1`, creditID)
	if err != nil {
		return nil, mapPgError(err, "credit", "find")
	}
	credit, err := collectCredit(rows)
	if err != nil {
		return nil, mapPgError(err, "credit", "find")
	}
	return credit, nil
}

// ListActiveCredits returns the user's active credits, newest first.
func (r *PgxCreditRepository) ListActiveCredits(ctx context.Context, userID int64) ([]domain.Credit, error) {
	query := `SELECT ` + creditColumns + ` FROM credits WHERE user_id = $1 AND is_active = TRUE ORDER BY created_at DESC, id DESC`

	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, mapPgError(err, "credits", "list")
	}
	modelCredits, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Credit])
	if err != nil {
		return nil, mapPgError(err, "credits", "list")
	}
	return mapping.ToDomainCreditSlice(modelCredits), nil
}

// ListCreditPayments returns the payment history of a credit, latest first.
func (r *PgxCreditRepository) ListCreditPayments(ctx context.Context, creditID int64) ([]domain.CreditPayment, error) {
	query := `SELECT ` + creditPaymentColumns + ` FROM credit_payments WHERE credit_id = $1 ORDER BY payment_date DESC, id DESC`

	rows, err := r.Pool.Query(ctx, query, creditID)
	if err != nil {
		return nil, mapPgError(err, "credit payments", "list")
	}
	modelPayments, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.CreditPayment])
	if err != nil {
		return nil, mapPgError(err, "credit payments", "list")
	}
	return mapping.ToDomainCreditPaymentSlice(modelPayments), nil
}

// SaveCredit inserts a new credit.
func (r *PgxCreditRepository) SaveCredit(ctx context.Context, credit domain.Credit) (*domain.Credit, error) {
	m := mapping.ToModelCredit(credit)

	query := `
		INSERT INTO credits (user_id, name, type, total_amount, remaining_amount, monthly_payment, interest_rate,
			start_date, end_date, next_payment_date, payment_day, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + creditColumns

	rows, err := r.Pool.Query(ctx, query,
		m.UserID, m.Name, m.CreditType, m.TotalAmount, m.RemainingAmount, m.MonthlyPayment, m.InterestRate,
		m.StartDate, m.EndDate, m.NextPaymentDate, m.PaymentDay, m.IsActive, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return nil, mapPgError(err, "credit", "save")
	}
	saved, err := collectCredit(rows)
	if err != nil {
		return nil, mapPgError(err, "credit", "save")
	}
	return saved, nil
}

// UpdateCredit overwrites the editable columns of a credit.
func (r *PgxCreditRepository) UpdateCredit(ctx context.Context, credit domain.Credit) (*domain.Credit, error) {
	m := mapping.ToModelCredit(credit)

	query := `
		UPDATE credits
		SET name = $2, type = $3, total_amount = $4, remaining_amount = $5, monthly_payment = $6,
			interest_rate = $7, start_date = $8, end_date = $9, next_payment_date = $10, payment_day = $11,
			updated_at = $12
		WHERE id = $1
		RETURNING ` + creditColumns

	rows, err := r.Pool.Query(ctx, query,
		m.CreditID, m.Name, m.CreditType, m.TotalAmount, m.RemainingAmount, m.MonthlyPayment,
		m.InterestRate, m.StartDate, m.EndDate, m.NextPaymentDate, m.PaymentDay, m.UpdatedAt,
	)
	if err != nil {
		return nil, mapPgError(err, "credit", "update")
	}
	updated, err := collectCredit(rows)
	if err != nil {
		return nil, mapPgError(err, "credit", "update")
	}
	return updated, nil
}

// DeactivateCredit marks a credit as inactive; its payment history is kept.
func (r *PgxCreditRepository) DeactivateCredit(ctx context.Context, creditID int64, now time.Time) error {
	cmdTag, err := r.Pool.Exec(ctx, `UPDATE credits SET is_active = FALSE, updated_at = $2 WHERE id = $1`, creditID, now)
	if err != nil {
		return mapPgError(err, "credit", "deactivate")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("credit")
	}
	return nil
}

// FindCreditByIDForUpdate locks a credit row. Must be called within a transaction.
func (r *PgxCreditRepository) FindCreditByIDForUpdate(ctx context.Context, tx pgx.Tx, creditID int64) (*domain.Credit, error) {
	rows, err := tx.Query(ctx, `SELECT `+creditColumns+` FROM credits WHERE id = $1 FOR UPDATE`, creditID)
	if err != nil {
		return nil, mapPgError(err, "credit", "lock")
	}
	credit, err := collectCredit(rows)
	if err != nil {
		return nil, mapPgError(err, "credit", "lock")
	}
	return credit, nil
}

// SaveCreditPaymentInTx appends a payment record.
func (r *PgxCreditRepository) SaveCreditPaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.CreditPayment) (*domain.CreditPayment, error) {
	query := `
		INSERT INTO credit_payments (credit_id, amount, principal_amount, interest_amount, payment_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + creditPaymentColumns

	rows, err := tx.Query(ctx, query,
		payment.CreditID,
		payment.Amount,
		payment.PrincipalAmount,
		payment.InterestAmount,
		payment.PaymentDate,
		payment.CreatedAt,
	)
	if err != nil {
		return nil, mapPgError(err, "credit payment", "save")
	}
	modelPayment, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.CreditPayment])
	if err != nil {
		return nil, mapPgError(err, "credit payment", "save")
	}
	saved := mapping.ToDomainCreditPayment(modelPayment)
	return &saved, nil
}

// UpdateCreditScheduleInTx persists the balance and schedule produced by a payment.
func (r *PgxCreditRepository) UpdateCreditScheduleInTx(ctx context.Context, tx pgx.Tx, credit domain.Credit) (*domain.Credit, error) {
	query := `
		UPDATE credits
		SET remaining_amount = $2, next_payment_date = $3, payment_day = $4, updated_at = $5
		WHERE id = $1
		RETURNING ` + creditColumns

	rows, err := tx.Query(ctx, query,
		credit.CreditID,
		credit.RemainingAmount,
		credit.NextPaymentDate,
		credit.PaymentDay,
		credit.UpdatedAt,
	)
	if err != nil {
		return nil, mapPgError(err, "credit", "update schedule")
	}
	updated, err := collectCredit(rows)
	if err != nil {
		return nil, mapPgError(err, "credit", "update schedule")
	}
	return updated, nil
}
