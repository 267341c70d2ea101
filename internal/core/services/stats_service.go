package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type statsService struct {
	BaseService
	statsRepo portsrepo.StatsRepository
	hooks     ledgerHooks
}

// NewStatsService creates the statistics service. Results are read through
// the stats cache when one is configured.
func NewStatsService(repo portsrepo.StatsRepository, options ...LedgerOption) portssvc.StatsSvc {
	return &statsService{statsRepo: repo, hooks: newLedgerHooks(options...)}
}

var _ portssvc.StatsSvc = (*statsService)(nil)

func (s *statsService) GetTransactionStats(ctx context.Context, userID int64, params dto.DateRangeParams) (*domain.TransactionStats, error) {
	dateRange, err := params.ToDomain()
	if err != nil {
		return nil, err
	}

	key := cacheKey("totals", dateRange, "")
	var stats domain.TransactionStats
	lookup := s.cached(ctx, userID, key, &stats)
	if lookup.hit {
		return &stats, nil
	}

	totals, err := s.statsRepo.GetTypeTotals(ctx, userID, dateRange)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate transaction totals", slog.Int64("user_id", userID))
		return nil, err
	}

	stats = FoldTypeTotals(totals)
	s.store(ctx, userID, lookup, key, stats)
	return &stats, nil
}

func (s *statsService) GetCategoryStats(ctx context.Context, userID int64, params dto.CategoryStatsParams) ([]domain.CategoryTotal, error) {
	filter, err := params.ToDomain()
	if err != nil {
		return nil, err
	}

	key := cacheKey("categories", filter.DateRange, params.Type)
	var rows []domain.CategoryTotal
	lookup := s.cached(ctx, userID, key, &rows)
	if lookup.hit {
		return rows, nil
	}

	rows, err = s.statsRepo.GetCategoryTotals(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate category totals", slog.Int64("user_id", userID))
		return nil, err
	}

	rows = LabelUncategorized(rows)
	s.store(ctx, userID, lookup, key, rows)
	return rows, nil
}

func (s *statsService) GetSummary(ctx context.Context, userID int64, params dto.CategoryStatsParams) (*dto.TransactionSummaryResponse, error) {
	var (
		stats      *domain.TransactionStats
		categories []domain.CategoryTotal
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats, err = s.GetTransactionStats(gctx, userID, params.DateRangeParams)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.GetCategoryStats(gctx, userID, params)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.TransactionSummaryResponse{Stats: *stats, Categories: categories}, nil
}

// FoldTypeTotals turns per-type sums into income/expense figures. Missing
// types count as zero.
func FoldTypeTotals(totals []domain.TypeTotal) domain.TransactionStats {
	stats := domain.TransactionStats{Income: decimal.Zero, Expense: decimal.Zero}
	for _, t := range totals {
		switch t.TransactionType {
		case domain.Income:
			stats.Income = stats.Income.Add(t.Total)
		case domain.Expense:
			stats.Expense = stats.Expense.Add(t.Total)
		}
		stats.TotalTransactions += t.Count
	}
	stats.Income = accounting.RoundMoney(stats.Income)
	stats.Expense = accounting.RoundMoney(stats.Expense)
	stats.NetIncome = stats.Income.Sub(stats.Expense)
	return stats
}

// LabelUncategorized fills in the display fields of the row that collects
// transactions without a category.
func LabelUncategorized(rows []domain.CategoryTotal) []domain.CategoryTotal {
	if rows == nil {
		return []domain.CategoryTotal{}
	}
	for i := range rows {
		if rows[i].CategoryID != nil {
			continue
		}
		rows[i].CategoryName = domain.UncategorizedName
		rows[i].CategoryColor = domain.UncategorizedColor
		rows[i].CategoryIcon = domain.UncategorizedIcon
	}
	return rows
}

func cacheKey(kind string, dateRange domain.DateRange, extra string) string {
	parts := []string{kind, "", "", extra}
	if dateRange.StartDate != nil {
		parts[1] = dateRange.StartDate.Format(dto.DateLayout)
	}
	if dateRange.EndDate != nil {
		parts[2] = dateRange.EndDate.Format(dto.DateLayout)
	}
	return strings.Join(parts, "|")
}

// cacheLookup is the outcome of a stats cache read. A miss remembers the
// generation it was read under; the recomputed value is stored there.
type cacheLookup struct {
	generation int64
	hit        bool
	storable   bool
}

// cached reads key from the cache. Cache errors count as a miss that is not stored.
func (s *statsService) cached(ctx context.Context, userID int64, key string, dest any) cacheLookup {
	generation, hit, err := s.hooks.cache.Get(ctx, userID, key, dest)
	if err != nil {
		s.LogError(ctx, err, "Stats cache read failed", slog.String("key", key))
		s.hooks.metrics.RecordCacheLookup(false)
		return cacheLookup{}
	}
	s.hooks.metrics.RecordCacheLookup(hit)
	return cacheLookup{generation: generation, hit: hit, storable: !hit}
}

func (s *statsService) store(ctx context.Context, userID int64, lookup cacheLookup, key string, value any) {
	if !lookup.storable {
		return
	}
	if err := s.hooks.cache.Set(ctx, userID, lookup.generation, key, value); err != nil {
		s.LogError(ctx, err, "Stats cache write failed", slog.String("key", key))
	}
}
