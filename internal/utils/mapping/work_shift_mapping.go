package mapping

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

// ToModelWorkShift converts a domain WorkShift to a model WorkShift
func ToModelWorkShift(d domain.WorkShift) models.WorkShift {
	return models.WorkShift{
		ShiftID:     d.ShiftID,
		UserID:      d.UserID,
		Date:        d.Date,
		Hours:       d.Hours,
		HourlyRate:  d.HourlyRate,
		Bonus:       d.Bonus,
		Advance:     d.Advance,
		Deduction:   d.Deduction,
		Notes:       d.Notes,
		Status:      string(d.Status),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWorkShift converts a model WorkShift to a domain WorkShift
func ToDomainWorkShift(m models.WorkShift) domain.WorkShift {
	return domain.WorkShift{
		ShiftID:     m.ShiftID,
		UserID:      m.UserID,
		Date:        m.Date,
		Hours:       m.Hours,
		HourlyRate:  m.HourlyRate,
		Bonus:       m.Bonus,
		Advance:     m.Advance,
		Deduction:   m.Deduction,
		Notes:       m.Notes,
		Status:      domain.ShiftStatus(m.Status),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainWorkShiftSlice converts a slice of model WorkShifts to a slice of domain WorkShifts
func ToDomainWorkShiftSlice(ms []models.WorkShift) []domain.WorkShift {
	ds := make([]domain.WorkShift, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainWorkShift(m)
	}
	return ds
}
