package domain

import "time"

// LedgerEventType names a committed change to the ledger.
type LedgerEventType string

const (
	EventTransactionCreated LedgerEventType = "transaction.created"
	EventTransactionUpdated LedgerEventType = "transaction.updated"
	EventTransactionDeleted LedgerEventType = "transaction.deleted"
	EventCreditPaymentMade  LedgerEventType = "credit.payment_recorded"
)

// LedgerEvent is published after the change it describes has been committed.
type LedgerEvent struct {
	Type       LedgerEventType `json:"type"`
	UserID     int64           `json:"user_id"`
	EntityID   int64           `json:"entity_id"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    any             `json:"payload,omitempty"`
}
