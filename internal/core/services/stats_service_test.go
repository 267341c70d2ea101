package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/core/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFoldTypeTotals_MissingGroupsAreZero(t *testing.T) {
	stats := services.FoldTypeTotals([]domain.TypeTotal{
		{TransactionType: domain.Expense, Total: dec("1250.50"), Count: 4},
	})

	assert.True(t, stats.Income.IsZero())
	assert.True(t, stats.Expense.Equal(dec("1250.50")))
	assert.True(t, stats.NetIncome.Equal(dec("-1250.50")))
	assert.Equal(t, int64(4), stats.TotalTransactions)
}

func TestLabelUncategorized(t *testing.T) {
	rows := services.LabelUncategorized([]domain.CategoryTotal{
		{CategoryID: ptr(int64(1)), CategoryName: "Food", TotalAmount: dec("300")},
		{CategoryID: nil, TotalAmount: dec("200")},
	})

	assert.Equal(t, "Food", rows[0].CategoryName)
	assert.Equal(t, domain.UncategorizedName, rows[1].CategoryName)
	assert.Equal(t, domain.UncategorizedColor, rows[1].CategoryColor)
	assert.Equal(t, domain.UncategorizedIcon, rows[1].CategoryIcon)

	assert.NotNil(t, services.LabelUncategorized(nil))
}

// Category totals must add up to the sum of the transactions they group.
func TestCategoryTotalsSumToTransactionTotal(t *testing.T) {
	txns := []domain.Transaction{
		{CategoryID: ptr(int64(1)), Amount: dec("120.10"), TransactionType: domain.Expense},
		{CategoryID: ptr(int64(1)), Amount: dec("79.90"), TransactionType: domain.Expense},
		{CategoryID: ptr(int64(2)), Amount: dec("45"), TransactionType: domain.Expense},
		{CategoryID: nil, Amount: dec("5"), TransactionType: domain.Expense},
	}
	byCategory := map[int64]decimal.Decimal{}
	total := decimal.Zero
	for _, txn := range txns {
		var key int64
		if txn.CategoryID != nil {
			key = *txn.CategoryID
		}
		byCategory[key] = byCategory[key].Add(txn.Amount)
		total = total.Add(txn.Amount)
	}

	rows := make([]domain.CategoryTotal, 0, len(byCategory))
	for id, sum := range byCategory {
		row := domain.CategoryTotal{TotalAmount: sum}
		if id != 0 {
			row.CategoryID = ptr(id)
		}
		rows = append(rows, row)
	}

	labelled := services.LabelUncategorized(rows)
	sum := decimal.Zero
	for _, row := range labelled {
		sum = sum.Add(row.TotalAmount)
	}
	assert.True(t, sum.Equal(total), "sum %s, total %s", sum, total)
}

func TestGetTransactionStats_CacheHitSkipsRepository(t *testing.T) {
	repo := new(MockStatsRepository)
	cache := new(MockStatsCache)
	svc := services.NewStatsService(repo, services.WithStatsCache(cache))

	cache.On("Get", mock.Anything, ownerID, "totals|||", mock.Anything).Return(int64(0), true, nil).Once()

	_, err := svc.GetTransactionStats(context.Background(), ownerID, dto.DateRangeParams{})

	require.NoError(t, err)
	repo.AssertNotCalled(t, "GetTypeTotals", mock.Anything, mock.Anything, mock.Anything)
	cache.AssertExpectations(t)
}

func TestGetTransactionStats_MissStoresUnderObservedGeneration(t *testing.T) {
	repo := new(MockStatsRepository)
	cache := new(MockStatsCache)
	svc := services.NewStatsService(repo, services.WithStatsCache(cache))
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)
	key := "totals|2024-01-01|2024-01-31|"

	cache.On("Get", mock.Anything, ownerID, key, mock.Anything).Return(int64(3), false, nil).Once()
	repo.On("GetTypeTotals", mock.Anything, ownerID, domain.DateRange{StartDate: &start, EndDate: &end}).Return([]domain.TypeTotal{
		{TransactionType: domain.Income, Total: dec("5000"), Count: 1},
		{TransactionType: domain.Expense, Total: dec("1200"), Count: 3},
	}, nil).Once()
	cache.On("Set", mock.Anything, ownerID, int64(3), key, mock.Anything).Return(nil).Once()

	stats, err := svc.GetTransactionStats(context.Background(), ownerID, dto.DateRangeParams{StartDate: "2024-01-01", EndDate: "2024-01-31"})

	require.NoError(t, err)
	assert.True(t, stats.NetIncome.Equal(dec("3800")))
	assert.Equal(t, int64(4), stats.TotalTransactions)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestGetTransactionStats_CacheErrorReadsThroughWithoutStoring(t *testing.T) {
	repo := new(MockStatsRepository)
	cache := new(MockStatsCache)
	svc := services.NewStatsService(repo, services.WithStatsCache(cache))

	cache.On("Get", mock.Anything, ownerID, "totals|||", mock.Anything).Return(int64(0), false, errors.New("redis down")).Once()
	repo.On("GetTypeTotals", mock.Anything, ownerID, domain.DateRange{}).
		Return([]domain.TypeTotal{{TransactionType: domain.Income, Total: dec("10"), Count: 1}}, nil).Once()

	stats, err := svc.GetTransactionStats(context.Background(), ownerID, dto.DateRangeParams{})

	require.NoError(t, err)
	assert.True(t, stats.Income.Equal(dec("10")))
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestGetSummary_FetchesBoth(t *testing.T) {
	repo := new(MockStatsRepository)
	svc := services.NewStatsService(repo)
	expense := domain.Expense

	repo.On("GetTypeTotals", mock.Anything, ownerID, domain.DateRange{}).
		Return([]domain.TypeTotal{{TransactionType: domain.Expense, Total: dec("200"), Count: 1}}, nil).Once()
	repo.On("GetCategoryTotals", mock.Anything, ownerID, domain.CategoryStatsFilter{TransactionType: &expense}).
		Return([]domain.CategoryTotal{{TotalAmount: dec("200"), Count: 1}}, nil).Once()

	summary, err := svc.GetSummary(context.Background(), ownerID, dto.CategoryStatsParams{Type: "expense"})

	require.NoError(t, err)
	assert.True(t, summary.Stats.Expense.Equal(dec("200")))
	require.Len(t, summary.Categories, 1)
	assert.Equal(t, domain.UncategorizedName, summary.Categories[0].CategoryName)
}

func TestGetSummary_PropagatesFailure(t *testing.T) {
	repo := new(MockStatsRepository)
	svc := services.NewStatsService(repo)
	storageErr := apperrors.NewStorageError("failed to aggregate", errors.New("timeout"))

	repo.On("GetTypeTotals", mock.Anything, ownerID, mock.Anything).Return(nil, storageErr).Maybe()
	repo.On("GetCategoryTotals", mock.Anything, ownerID, mock.Anything).Return([]domain.CategoryTotal{}, nil).Maybe()

	_, err := svc.GetSummary(context.Background(), ownerID, dto.CategoryStatsParams{})

	assert.ErrorIs(t, err, apperrors.ErrStorage)
}
