package pgsql

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// statsRepository implements the StatsRepository interface
type statsRepository struct {
	BaseRepository
}

func newStatsRepository(pool *pgxpool.Pool) *statsRepository {
	return &statsRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.StatsRepository = (*statsRepository)(nil)

// GetTypeTotals sums transaction amounts per type within the optional range
func (r *statsRepository) GetTypeTotals(ctx context.Context, userID int64, dateRange domain.DateRange) ([]domain.TypeTotal, error) {
	fb := newFilterBuilder("user_id = $%d", userID)
	if dateRange.StartDate != nil {
		fb.add("date >= $%d", *dateRange.StartDate)
	}
	if dateRange.EndDate != nil {
		fb.add("date <= $%d", *dateRange.EndDate)
	}

	query := `
		SELECT type, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count
		FROM transactions` + fb.where() + `
		GROUP BY type`

	rows, err := r.Pool.Query(ctx, query, fb.args...)
	if err != nil {
		return nil, apperrors.NewStorageError("error querying transaction totals", err)
	}
	defer rows.Close()

	result := []domain.TypeTotal{}
	for rows.Next() {
		var row domain.TypeTotal
		var txnType string

		if err := rows.Scan(&txnType, &row.Total, &row.Count); err != nil {
			return nil, apperrors.NewStorageError("error scanning transaction totals", err)
		}

		row.TransactionType = domain.TransactionType(txnType)
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("error iterating transaction totals", err)
	}
	return result, nil
}

// GetCategoryTotals sums amounts per category, largest total first
func (r *statsRepository) GetCategoryTotals(ctx context.Context, userID int64, filter domain.CategoryStatsFilter) ([]domain.CategoryTotal, error) {
	fb := newFilterBuilder("t.user_id = $%d", userID)
	if filter.StartDate != nil {
		fb.add("t.date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		fb.add("t.date <= $%d", *filter.EndDate)
	}
	if filter.TransactionType != nil {
		fb.add("t.type = $%d", string(*filter.TransactionType))
	}

	query := `
		SELECT
			c.id,
			COALESCE(c.name, '') AS category_name,
			COALESCE(c.color, '') AS category_color,
			COALESCE(c.icon, '') AS category_icon,
			SUM(t.amount) AS total_amount,
			COUNT(t.id) AS count
		FROM transactions t
		LEFT JOIN categories c ON t.category_id = c.id` + fb.where() + `
		GROUP BY c.id, c.name, c.color, c.icon
		ORDER BY total_amount DESC, c.id`

	rows, err := r.Pool.Query(ctx, query, fb.args...)
	if err != nil {
		return nil, apperrors.NewStorageError("error querying category totals", err)
	}
	defer rows.Close()

	result := []domain.CategoryTotal{}
	for rows.Next() {
		var row domain.CategoryTotal
		if err := rows.Scan(
			&row.CategoryID,
			&row.CategoryName,
			&row.CategoryColor,
			&row.CategoryIcon,
			&row.TotalAmount,
			&row.Count,
		); err != nil {
			return nil, apperrors.NewStorageError("error scanning category totals", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("error iterating category totals", err)
	}
	return result, nil
}
