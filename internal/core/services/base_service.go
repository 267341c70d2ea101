package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/core/ports"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/SscSPs/finance_tracker/internal/platform/cache"
	"github.com/SscSPs/finance_tracker/internal/platform/events"
	"github.com/SscSPs/finance_tracker/internal/platform/metrics"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the request-scoped logger from context
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// authorizeOwner fails with Forbidden when the entity belongs to another user.
func (s *BaseService) authorizeOwner(ctx context.Context, entity string, entityID, ownerID, userID int64) error {
	if ownerID == userID {
		return nil
	}
	s.LogDebug(ctx, "Ownership check failed",
		slog.String("entity", entity),
		slog.Int64("entity_id", entityID),
		slog.Int64("owner_id", ownerID),
		slog.Int64("user_id", userID))
	return apperrors.NewForbiddenError(entity)
}

// ledgerHooks are the after-commit side channels of ledger writes.
// Failures are logged and never reach the caller.
type ledgerHooks struct {
	cache   ports.StatsCache
	events  ports.EventPublisher
	metrics ports.LedgerMetrics
	now     func() time.Time
}

// LedgerOption is a functional option for the services that write to the ledger
type LedgerOption func(*ledgerHooks)

// WithStatsCache sets the cache invalidated after every ledger write and read by the stats service.
func WithStatsCache(c ports.StatsCache) LedgerOption {
	return func(h *ledgerHooks) {
		if c != nil {
			h.cache = c
		}
	}
}

// WithEventPublisher sets where committed ledger events go.
func WithEventPublisher(p ports.EventPublisher) LedgerOption {
	return func(h *ledgerHooks) {
		if p != nil {
			h.events = p
		}
	}
}

// WithLedgerMetrics sets the metrics recorder.
func WithLedgerMetrics(m ports.LedgerMetrics) LedgerOption {
	return func(h *ledgerHooks) {
		if m != nil {
			h.metrics = m
		}
	}
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) LedgerOption {
	return func(h *ledgerHooks) {
		if now != nil {
			h.now = now
		}
	}
}

func newLedgerHooks(options ...LedgerOption) ledgerHooks {
	h := ledgerHooks{
		cache:   cache.NoopStatsCache{},
		events:  events.NoopPublisher{},
		metrics: metrics.NoopMetrics{},
		now:     time.Now,
	}
	for _, option := range options {
		option(&h)
	}
	return h
}

// afterCommit runs the side channels of a committed ledger change.
func (h ledgerHooks) afterCommit(ctx context.Context, base *BaseService, entity, operation string, event domain.LedgerEvent) {
	h.metrics.RecordMutation(entity, operation)

	if err := h.cache.Invalidate(ctx, event.UserID); err != nil {
		base.LogError(ctx, err, "Failed to invalidate stats cache", slog.Int64("user_id", event.UserID))
	}

	if event.Type == "" {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = h.now().UTC()
	}
	if err := h.events.Publish(ctx, event); err != nil {
		base.LogError(ctx, err, "Failed to publish ledger event",
			slog.String("event_type", string(event.Type)),
			slog.Int64("entity_id", event.EntityID))
	}
}
