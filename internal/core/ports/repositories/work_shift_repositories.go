package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// WorkShiftReader defines read operations for work shifts
type WorkShiftReader interface {
	FindShiftByID(ctx context.Context, shiftID int64) (*domain.WorkShift, error)
	// ListShifts returns matching shifts, latest date first.
	ListShifts(ctx context.Context, userID int64, filter domain.ShiftFilter) ([]domain.WorkShift, error)
	// ListShiftsBetween returns shifts within the inclusive range, earliest first.
	ListShiftsBetween(ctx context.Context, userID int64, from, to time.Time) ([]domain.WorkShift, error)
	// GetShiftStatusGroups aggregates matching shifts per status.
	GetShiftStatusGroups(ctx context.Context, userID int64, filter domain.ShiftFilter) ([]domain.ShiftStatusGroup, error)
}

// WorkShiftWriter defines write operations for work shifts
type WorkShiftWriter interface {
	SaveShift(ctx context.Context, shift domain.WorkShift) (*domain.WorkShift, error)
	UpdateShift(ctx context.Context, shift domain.WorkShift) (*domain.WorkShift, error)
	DeleteShift(ctx context.Context, shiftID int64) error
}

// WorkShiftRepositoryFacade combines all work-shift repository interfaces
type WorkShiftRepositoryFacade interface {
	WorkShiftReader
	WorkShiftWriter
}
