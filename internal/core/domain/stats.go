package domain

import "github.com/shopspring/decimal"

// TypeTotal is the sum of transaction amounts of one type.
type TypeTotal struct {
	TransactionType TransactionType
	Total           decimal.Decimal
	Count           int64
}

// TransactionStats summarises income against expense.
type TransactionStats struct {
	Income            decimal.Decimal `json:"income"`
	Expense           decimal.Decimal `json:"expense"`
	TotalTransactions int64           `json:"total_transactions"`
	NetIncome         decimal.Decimal `json:"net_income"`
}

// Uncategorized* describe the bucket for transactions without a category.
const (
	UncategorizedName  = "Uncategorized"
	UncategorizedColor = "#6B7280"
	UncategorizedIcon  = "Circle"
)

// CategoryTotal is one row of the per-category breakdown.
type CategoryTotal struct {
	CategoryID    *int64          `json:"category_id"`
	CategoryName  string          `json:"category_name"`
	CategoryColor string          `json:"category_color"`
	CategoryIcon  string          `json:"category_icon"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Count         int64           `json:"count"`
}

// CategoryStatsFilter narrows the per-category breakdown.
type CategoryStatsFilter struct {
	DateRange
	TransactionType *TransactionType
}
