package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/utils/calendar"
	"github.com/SscSPs/finance_tracker/internal/utils/earnings"
	"github.com/shopspring/decimal"
)

type workShiftService struct {
	BaseService
	shiftRepo portsrepo.WorkShiftRepositoryFacade
	now       func() time.Time
}

// NewWorkShiftService creates a new work shift service
func NewWorkShiftService(repo portsrepo.WorkShiftRepositoryFacade) portssvc.WorkShiftSvcFacade {
	return &workShiftService{shiftRepo: repo, now: time.Now}
}

var _ portssvc.WorkShiftSvcFacade = (*workShiftService)(nil)

func (s *workShiftService) CreateShift(ctx context.Context, userID int64, req dto.CreateWorkShiftRequest) (*domain.WorkShift, error) {
	date, err := dto.ParseDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	status := domain.ShiftPlanned
	if req.Status != nil {
		status = *req.Status
	}

	now := s.now().UTC()
	shift := domain.WorkShift{
		UserID:      userID,
		Date:        date,
		Hours:       req.Hours,
		HourlyRate:  req.HourlyRate,
		Bonus:       req.Bonus,
		Advance:     req.Advance,
		Deduction:   req.Deduction,
		Notes:       req.Notes,
		Status:      status,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := validateShift(shift); err != nil {
		return nil, err
	}

	saved, err := s.shiftRepo.SaveShift(ctx, shift)
	if err != nil {
		s.LogError(ctx, err, "Failed to save work shift", slog.Int64("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Work shift created", slog.Int64("shift_id", saved.ShiftID))
	return saved, nil
}

func (s *workShiftService) GetShiftByID(ctx context.Context, userID, shiftID int64) (*domain.WorkShift, error) {
	shift, err := s.shiftRepo.FindShiftByID(ctx, shiftID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find work shift", slog.Int64("shift_id", shiftID))
		}
		return nil, err
	}
	if err := s.authorizeOwner(ctx, "work shift", shiftID, shift.UserID, userID); err != nil {
		return nil, err
	}
	return shift, nil
}

func (s *workShiftService) ListShifts(ctx context.Context, userID int64, params dto.ListWorkShiftsParams) ([]domain.WorkShift, error) {
	filter, err := params.ToDomain()
	if err != nil {
		return nil, err
	}

	shifts, err := s.shiftRepo.ListShifts(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list work shifts", slog.Int64("user_id", userID))
		return nil, err
	}
	if shifts == nil {
		shifts = []domain.WorkShift{}
	}
	return shifts, nil
}

func (s *workShiftService) UpdateShift(ctx context.Context, userID, shiftID int64, req dto.UpdateWorkShiftRequest) (*domain.WorkShift, error) {
	if req.IsEmpty() {
		return nil, apperrors.NewValidationFailedError("no fields to update")
	}

	shift, err := s.GetShiftByID(ctx, userID, shiftID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := dto.ParseDate("date", *req.Date)
		if err != nil {
			return nil, err
		}
		shift.Date = date
	}
	if req.Hours != nil {
		shift.Hours = *req.Hours
	}
	if req.HourlyRate != nil {
		shift.HourlyRate = *req.HourlyRate
	}
	if req.Bonus != nil {
		shift.Bonus = *req.Bonus
	}
	if req.Advance != nil {
		shift.Advance = *req.Advance
	}
	if req.Deduction != nil {
		shift.Deduction = *req.Deduction
	}
	if req.Notes != nil {
		shift.Notes = *req.Notes
	}
	if req.Status != nil {
		shift.Status = *req.Status
	}
	if err := validateShift(*shift); err != nil {
		return nil, err
	}
	shift.UpdatedAt = s.now().UTC()

	updated, err := s.shiftRepo.UpdateShift(ctx, *shift)
	if err != nil {
		s.LogError(ctx, err, "Failed to update work shift", slog.Int64("shift_id", shiftID))
		return nil, err
	}

	s.LogInfo(ctx, "Work shift updated", slog.Int64("shift_id", shiftID))
	return updated, nil
}

func (s *workShiftService) DeleteShift(ctx context.Context, userID, shiftID int64) error {
	if _, err := s.GetShiftByID(ctx, userID, shiftID); err != nil {
		return err
	}

	if err := s.shiftRepo.DeleteShift(ctx, shiftID); err != nil {
		s.LogError(ctx, err, "Failed to delete work shift", slog.Int64("shift_id", shiftID))
		return err
	}

	s.LogInfo(ctx, "Work shift deleted", slog.Int64("shift_id", shiftID))
	return nil
}

func (s *workShiftService) GetShiftStats(ctx context.Context, userID int64, params dto.ShiftStatsParams) (*domain.ShiftStats, error) {
	filter, err := params.ToDomain()
	if err != nil {
		return nil, err
	}

	groups, err := s.shiftRepo.GetShiftStatusGroups(ctx, userID, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate work shifts", slog.Int64("user_id", userID))
		return nil, err
	}

	stats := earnings.FoldShiftStats(groups)
	return &stats, nil
}

func (s *workShiftService) GetCalendar(ctx context.Context, userID int64, year, month int) (*dto.CalendarResponse, error) {
	start, end, err := calendar.MonthBounds(year, month)
	if err != nil {
		return nil, apperrors.NewValidationFailedError(err.Error())
	}

	shifts, err := s.shiftRepo.ListShiftsBetween(ctx, userID, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to load shift calendar",
			slog.Int("year", year),
			slog.Int("month", month))
		return nil, err
	}

	return &dto.CalendarResponse{
		Year:      year,
		Month:     month,
		StartDate: start,
		EndDate:   end,
		Shifts:    dto.ToListWorkShiftResponse(shifts),
	}, nil
}

var maxShiftHours = decimal.NewFromInt(24)

func validateShift(shift domain.WorkShift) error {
	switch {
	case !shift.Hours.IsPositive() || shift.Hours.GreaterThan(maxShiftHours):
		return apperrors.NewValidationFailedError("hours must be greater than 0 and at most 24")
	case shift.HourlyRate.IsNegative(), shift.Bonus.IsNegative(), shift.Advance.IsNegative(), shift.Deduction.IsNegative():
		return apperrors.NewValidationFailedError("money fields must not be negative")
	case shift.Status != domain.ShiftPlanned && shift.Status != domain.ShiftCompleted:
		return apperrors.NewValidationFailedError("status must be planned or completed")
	}
	return nil
}
