package dto

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// RegisterValidators teaches a validator engine to compare decimal.Decimal
// fields with the numeric tags (gt, gte, lte) and to report json field names.
func RegisterValidators(v *validator.Validate) {
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})
}

// ParseDate parses a YYYY-MM-DD value into UTC midnight.
func ParseDate(field, value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, apperrors.NewValidationFailedError(fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field))
	}
	return t, nil
}

// ParseOptionalDate parses value when it is non-empty.
func ParseOptionalDate(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := ParseDate(field, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// DateRangeParams is the optional inclusive date window accepted by list and stats endpoints.
type DateRangeParams struct {
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
}

// ToDomain parses the window and rejects an inverted one.
func (p DateRangeParams) ToDomain() (domain.DateRange, error) {
	start, err := ParseOptionalDate("start_date", p.StartDate)
	if err != nil {
		return domain.DateRange{}, err
	}
	end, err := ParseOptionalDate("end_date", p.EndDate)
	if err != nil {
		return domain.DateRange{}, err
	}
	if start != nil && end != nil && end.Before(*start) {
		return domain.DateRange{}, apperrors.NewValidationFailedError("end_date must not be before start_date")
	}
	return domain.DateRange{StartDate: start, EndDate: end}, nil
}
