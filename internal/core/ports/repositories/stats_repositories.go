package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// StatsRepository runs the aggregate queries behind the statistics endpoints.
type StatsRepository interface {
	// GetTypeTotals sums transaction amounts per type within the optional inclusive range.
	GetTypeTotals(ctx context.Context, userID int64, dateRange domain.DateRange) ([]domain.TypeTotal, error)

	// GetCategoryTotals sums amounts per category, largest first. Rows for
	// transactions without a category have a nil CategoryID and empty display fields.
	GetCategoryTotals(ctx context.Context, userID int64, filter domain.CategoryStatsFilter) ([]domain.CategoryTotal, error)
}
