package dto

import (
	"time"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWorkShiftRequest logs a shift. Money fields default to zero and
// Status to planned.
type CreateWorkShiftRequest struct {
	Date       string              `json:"date" binding:"required,datetime=2006-01-02"`
	Hours      decimal.Decimal     `json:"hours" binding:"required,gt=0,lte=24"`
	HourlyRate decimal.Decimal     `json:"hourly_rate" binding:"gte=0"`
	Bonus      decimal.Decimal     `json:"bonus" binding:"gte=0"`
	Advance    decimal.Decimal     `json:"advance" binding:"gte=0"`
	Deduction  decimal.Decimal     `json:"deduction" binding:"gte=0"`
	Notes      string              `json:"notes" binding:"max=1000"`
	Status     *domain.ShiftStatus `json:"status" binding:"omitempty,oneof=planned completed"`
}

// UpdateWorkShiftRequest uses pointers to tell omitted fields from zero values.
type UpdateWorkShiftRequest struct {
	Date       *string             `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Hours      *decimal.Decimal    `json:"hours" binding:"omitempty,gt=0,lte=24"`
	HourlyRate *decimal.Decimal    `json:"hourly_rate" binding:"omitempty,gte=0"`
	Bonus      *decimal.Decimal    `json:"bonus" binding:"omitempty,gte=0"`
	Advance    *decimal.Decimal    `json:"advance" binding:"omitempty,gte=0"`
	Deduction  *decimal.Decimal    `json:"deduction" binding:"omitempty,gte=0"`
	Notes      *string             `json:"notes" binding:"omitempty,max=1000"`
	Status     *domain.ShiftStatus `json:"status" binding:"omitempty,oneof=planned completed"`
}

// IsEmpty reports whether no updatable field was supplied.
func (r UpdateWorkShiftRequest) IsEmpty() bool {
	return r.Date == nil && r.Hours == nil && r.HourlyRate == nil && r.Bonus == nil &&
		r.Advance == nil && r.Deduction == nil && r.Notes == nil && r.Status == nil
}

// ShiftStatsParams narrows the aggregation.
type ShiftStatsParams struct {
	DateRangeParams
	Status string `form:"status" binding:"omitempty,oneof=planned completed"`
}

// ToDomain converts the query into a shift filter.
func (p ShiftStatsParams) ToDomain() (domain.ShiftFilter, error) {
	dateRange, err := p.DateRangeParams.ToDomain()
	if err != nil {
		return domain.ShiftFilter{}, err
	}
	filter := domain.ShiftFilter{DateRange: dateRange}
	if p.Status != "" {
		status := domain.ShiftStatus(p.Status)
		filter.Status = &status
	}
	return filter, nil
}

// ListWorkShiftsParams defines query parameters for listing shifts.
type ListWorkShiftsParams struct {
	ShiftStatsParams
	Limit  int `form:"limit,default=100" binding:"gte=0,lte=1000"`
	Offset int `form:"offset,default=0" binding:"gte=0"`
}

// ToDomain converts the query into a paginated shift filter.
func (p ListWorkShiftsParams) ToDomain() (domain.ShiftFilter, error) {
	filter, err := p.ShiftStatsParams.ToDomain()
	if err != nil {
		return domain.ShiftFilter{}, err
	}
	filter.Limit = p.Limit
	filter.Offset = p.Offset
	return filter, nil
}

// WorkShiftResponse is a shift with its derived earnings.
type WorkShiftResponse struct {
	domain.WorkShift
	BaseEarnings decimal.Decimal `json:"base_earnings"`
	Total        decimal.Decimal `json:"total"`
}

// ToWorkShiftResponse converts a domain.WorkShift to WorkShiftResponse DTO
func ToWorkShiftResponse(s *domain.WorkShift) WorkShiftResponse {
	return WorkShiftResponse{WorkShift: *s, BaseEarnings: s.BaseEarnings(), Total: s.Total()}
}

// ToListWorkShiftResponse converts shifts to their response DTOs.
func ToListWorkShiftResponse(shifts []domain.WorkShift) []WorkShiftResponse {
	res := make([]WorkShiftResponse, len(shifts))
	for i := range shifts {
		res[i] = ToWorkShiftResponse(&shifts[i])
	}
	return res
}

// CalendarResponse lists the shifts of one month.
type CalendarResponse struct {
	Year      int                 `json:"year"`
	Month     int                 `json:"month"`
	StartDate time.Time           `json:"start_date"`
	EndDate   time.Time           `json:"end_date"`
	Shifts    []WorkShiftResponse `json:"shifts"`
}
