package dto

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest records income or expense against an account.
// Date defaults to today.
type CreateTransactionRequest struct {
	AccountID       int64                  `json:"account_id" binding:"required,gt=0"`
	CategoryID      *int64                 `json:"category_id" binding:"omitempty,gt=0"`
	Amount          decimal.Decimal        `json:"amount" binding:"required,gt=0"`
	Description     string                 `json:"description" binding:"max=500"`
	TransactionType domain.TransactionType `json:"type" binding:"required,oneof=income expense"`
	Date            string                 `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateTransactionRequest uses pointers to tell omitted fields from zero values.
type UpdateTransactionRequest struct {
	AccountID       *int64                  `json:"account_id" binding:"omitempty,gt=0"`
	CategoryID      *int64                  `json:"category_id" binding:"omitempty,gt=0"`
	Amount          *decimal.Decimal        `json:"amount" binding:"omitempty,gt=0"`
	Description     *string                 `json:"description" binding:"omitempty,max=500"`
	TransactionType *domain.TransactionType `json:"type" binding:"omitempty,oneof=income expense"`
	Date            *string                 `json:"date" binding:"omitempty,datetime=2006-01-02"`
}

// IsEmpty reports whether no updatable field was supplied.
func (r UpdateTransactionRequest) IsEmpty() bool {
	return r.AccountID == nil && r.CategoryID == nil && r.Amount == nil &&
		r.Description == nil && r.TransactionType == nil && r.Date == nil
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	DateRangeParams
	CategoryID *int64 `form:"category_id" binding:"omitempty,gt=0"`
	AccountID  *int64 `form:"account_id" binding:"omitempty,gt=0"`
	Limit      int    `form:"limit,default=50" binding:"gte=0,lte=500"`
	Offset     int    `form:"offset,default=0" binding:"gte=0"`
}

// ToDomain converts the query into a repository filter.
func (p ListTransactionsParams) ToDomain() (domain.TransactionFilter, error) {
	dateRange, err := p.DateRangeParams.ToDomain()
	if err != nil {
		return domain.TransactionFilter{}, err
	}
	return domain.TransactionFilter{
		DateRange:  dateRange,
		CategoryID: p.CategoryID,
		AccountID:  p.AccountID,
		Limit:      p.Limit,
		Offset:     p.Offset,
	}, nil
}

// CategoryStatsParams narrows the per-category breakdown.
type CategoryStatsParams struct {
	DateRangeParams
	Type string `form:"type" binding:"omitempty,oneof=income expense"`
}

// ToDomain converts the query into a stats filter.
func (p CategoryStatsParams) ToDomain() (domain.CategoryStatsFilter, error) {
	dateRange, err := p.DateRangeParams.ToDomain()
	if err != nil {
		return domain.CategoryStatsFilter{}, err
	}
	filter := domain.CategoryStatsFilter{DateRange: dateRange}
	if p.Type != "" {
		txnType := domain.TransactionType(p.Type)
		filter.TransactionType = &txnType
	}
	return filter, nil
}

// TransactionSummaryResponse bundles the type totals with the category breakdown.
type TransactionSummaryResponse struct {
	Stats      domain.TransactionStats `json:"stats"`
	Categories []domain.CategoryTotal  `json:"categories"`
}
