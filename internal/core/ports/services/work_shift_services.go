package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// WorkShiftReaderSvc defines read operations for work shifts
type WorkShiftReaderSvc interface {
	GetShiftByID(ctx context.Context, userID, shiftID int64) (*domain.WorkShift, error)
	ListShifts(ctx context.Context, userID int64, params dto.ListWorkShiftsParams) ([]domain.WorkShift, error)
	GetShiftStats(ctx context.Context, userID int64, params dto.ShiftStatsParams) (*domain.ShiftStats, error)
	// GetCalendar returns the shifts of one month, earliest first.
	GetCalendar(ctx context.Context, userID int64, year, month int) (*dto.CalendarResponse, error)
}

// WorkShiftWriterSvc defines write operations for work shifts
type WorkShiftWriterSvc interface {
	CreateShift(ctx context.Context, userID int64, req dto.CreateWorkShiftRequest) (*domain.WorkShift, error)
	UpdateShift(ctx context.Context, userID, shiftID int64, req dto.UpdateWorkShiftRequest) (*domain.WorkShift, error)
	DeleteShift(ctx context.Context, userID, shiftID int64) error
}

// WorkShiftSvcFacade combines all work-shift service interfaces
type WorkShiftSvcFacade interface {
	WorkShiftReaderSvc
	WorkShiftWriterSvc
}
