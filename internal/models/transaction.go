package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction mirrors a row of the transactions table joined with the
// category and account display columns.
type Transaction struct {
	TransactionID   int64           `db:"id"`
	UserID          int64           `db:"user_id"`
	AccountID       int64           `db:"account_id"`
	CategoryID      *int64          `db:"category_id"`
	Amount          decimal.Decimal `db:"amount"`
	Description     string          `db:"description"`
	TransactionType string          `db:"type"`
	Date            time.Time       `db:"date"`
	AuditFields
	CategoryName  *string `db:"category_name"`
	CategoryColor *string `db:"category_color"`
	CategoryIcon  *string `db:"category_icon"`
	AccountName   *string `db:"account_name"`
	AccountType   *string `db:"account_type"`
}
