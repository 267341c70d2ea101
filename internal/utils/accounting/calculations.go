package accounting

import (
	"fmt"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of decimal places kept for money amounts.
const MoneyPrecision int32 = 2

// RoundMoney rounds an amount to the minor currency unit.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyPrecision)
}

// CalculateSignedAmount applies the sign of the transaction type to an amount.
// Income increases the account balance, expense decreases it.
func CalculateSignedAmount(txnType domain.TransactionType, amount decimal.Decimal) (decimal.Decimal, error) {
	switch txnType {
	case domain.Income:
		return amount.Abs(), nil
	case domain.Expense:
		return amount.Abs().Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown transaction type '%s'", txnType)
	}
}

// BalanceDeltas returns the per-account balance change needed to move the
// ledger from oldTxn to newTxn. A nil oldTxn means creation, a nil newTxn
// means deletion. When the account is unchanged the result is a single net
// delta (new effect minus old effect); a reassignment yields two entries.
// Zero deltas are omitted.
func BalanceDeltas(oldTxn, newTxn *domain.Transaction) (map[int64]decimal.Decimal, error) {
	deltas := make(map[int64]decimal.Decimal, 2)

	if oldTxn != nil {
		effect, err := CalculateSignedAmount(oldTxn.TransactionType, oldTxn.Amount)
		if err != nil {
			return nil, fmt.Errorf("error calculating previous effect of transaction %d: %w", oldTxn.TransactionID, err)
		}
		deltas[oldTxn.AccountID] = deltas[oldTxn.AccountID].Sub(effect)
	}

	if newTxn != nil {
		effect, err := CalculateSignedAmount(newTxn.TransactionType, newTxn.Amount)
		if err != nil {
			return nil, fmt.Errorf("error calculating effect of transaction %d: %w", newTxn.TransactionID, err)
		}
		deltas[newTxn.AccountID] = deltas[newTxn.AccountID].Add(effect)
	}

	for accountID, delta := range deltas {
		if delta.IsZero() {
			delete(deltas, accountID)
		}
	}
	return deltas, nil
}

// SumSignedAmounts is the balance a set of transactions implies for their accounts.
func SumSignedAmounts(transactions []domain.Transaction) map[int64]decimal.Decimal {
	sums := make(map[int64]decimal.Decimal)
	for _, txn := range transactions {
		sums[txn.AccountID] = sums[txn.AccountID].Add(txn.SignedAmount())
	}
	return sums
}
