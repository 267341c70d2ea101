package ports

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// StatsCache stores computed statistics per user. Invalidate drops every
// entry of the user at once.
//
// Get reports the generation it looked under. Set must be given that
// generation so a value computed before an Invalidate is never readable after it.
type StatsCache interface {
	Get(ctx context.Context, userID int64, key string, dest any) (generation int64, hit bool, err error)
	Set(ctx context.Context, userID int64, generation int64, key string, value any) error
	Invalidate(ctx context.Context, userID int64) error
}

// EventPublisher forwards committed ledger events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.LedgerEvent) error
}

// LedgerMetrics records ledger activity.
type LedgerMetrics interface {
	RecordMutation(entity, operation string)
	RecordCacheLookup(hit bool)
}
