package pgsql

import (
	"context"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	workShiftColumns = `id, user_id, date, hours, hourly_rate, bonus, advance, deduction, notes, status, created_at, updated_at`

	defaultShiftLimit = 100
	maxShiftLimit     = 1000
)

// PgxWorkShiftRepository implements portsrepo.WorkShiftRepositoryFacade
type PgxWorkShiftRepository struct {
	BaseRepository
}

func newPgxWorkShiftRepository(pool *pgxpool.Pool) *PgxWorkShiftRepository {
	return &PgxWorkShiftRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WorkShiftRepositoryFacade = (*PgxWorkShiftRepository)(nil)

func collectWorkShift(rows pgx.Rows) (*domain.WorkShift, error) {
	modelShift, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.WorkShift])
	if err != nil {
		return nil, err
	}
	shift := mapping.ToDomainWorkShift(modelShift)
	return &shift, nil
}

func shiftFilterBuilder(userID int64, filter domain.ShiftFilter) *filterBuilder {
	fb := newFilterBuilder("user_id = $%d", userID)
	if filter.StartDate != nil {
		fb.add("date >= $%d", *filter.StartDate)
	}
	if filter.EndDate != nil {
		fb.add("date <= $%d", *filter.EndDate)
	}
	if filter.Status != nil {
		fb.add("status = $%d", string(*filter.Status))
	}
	return fb
}

func (r *PgxWorkShiftRepository) FindShiftByID(ctx context.Context, shiftID int64) (*domain.WorkShift, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+workShiftColumns+` FROM work_shifts WHERE id = $1`, shiftID)
	if err != nil {
		return nil, mapPgError(err, "work shift", "find")
	}
	shift, err := collectWorkShift(rows)
	if err != nil {
		return nil, mapPgError(err, "work shift", "find")
	}
	return shift, nil
}

// ListShifts returns matching shifts ordered by date, latest first.
func (r *PgxWorkShiftRepository) ListShifts(ctx context.Context, userID int64, filter domain.ShiftFilter) ([]domain.WorkShift, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultShiftLimit
	}
	if limit > maxShiftLimit {
		limit = maxShiftLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	fb := shiftFilterBuilder(userID, filter)
	query := `SELECT ` + workShiftColumns + ` FROM work_shifts` + fb.where() +
		` ORDER BY date DESC, created_at DESC, id DESC LIMIT ` + fb.placeholder(limit) + ` OFFSET ` + fb.placeholder(offset)

	rows, err := r.Pool.Query(ctx, query, fb.args...)
	if err != nil {
		return nil, mapPgError(err, "work shifts", "list")
	}
	modelShifts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.WorkShift])
	if err != nil {
		return nil, mapPgError(err, "work shifts", "list")
	}
	return mapping.ToDomainWorkShiftSlice(modelShifts), nil
}

// ListShiftsBetween returns every shift in the inclusive range, earliest first.
func (r *PgxWorkShiftRepository) ListShiftsBetween(ctx context.Context, userID int64, from, to time.Time) ([]domain.WorkShift, error) {
	query := `SELECT ` + workShiftColumns + ` FROM work_shifts
		WHERE user_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC, id ASC`

	rows, err := r.Pool.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, mapPgError(err, "work shifts", "list")
	}
	modelShifts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.WorkShift])
	if err != nil {
		return nil, mapPgError(err, "work shifts", "list")
	}
	return mapping.ToDomainWorkShiftSlice(modelShifts), nil
}

// GetShiftStatusGroups aggregates matching shifts per status. Limit and offset are ignored.
func (r *PgxWorkShiftRepository) GetShiftStatusGroups(ctx context.Context, userID int64, filter domain.ShiftFilter) ([]domain.ShiftStatusGroup, error) {
	fb := shiftFilterBuilder(userID, filter)
	query := `
		SELECT
			status,
			COUNT(*) AS shifts,
			COALESCE(SUM(hours), 0) AS hours,
			COALESCE(SUM(bonus), 0) AS bonus,
			COALESCE(SUM(advance), 0) AS advance,
			COALESCE(SUM(deduction), 0) AS deduction,
			COALESCE(AVG(hourly_rate), 0) AS avg_hourly_rate,
			COALESCE(SUM(hours * hourly_rate), 0) AS exact_base_total
		FROM work_shifts` + fb.where() + `
		GROUP BY status
		ORDER BY status`

	rows, err := r.Pool.Query(ctx, query, fb.args...)
	if err != nil {
		return nil, apperrors.NewStorageError("failed to aggregate work shifts", err)
	}
	defer rows.Close()

	result := []domain.ShiftStatusGroup{}
	for rows.Next() {
		var g domain.ShiftStatusGroup
		var status string
		if err := rows.Scan(
			&status,
			&g.Shifts,
			&g.Hours,
			&g.Bonus,
			&g.Advance,
			&g.Deduction,
			&g.AvgHourlyRate,
			&g.ExactBaseTotal,
		); err != nil {
			return nil, apperrors.NewStorageError("failed to scan work shift aggregate", err)
		}
		g.Status = domain.ShiftStatus(status)
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError("failed to iterate work shift aggregates", err)
	}
	return result, nil
}

func (r *PgxWorkShiftRepository) SaveShift(ctx context.Context, shift domain.WorkShift) (*domain.WorkShift, error) {
	m := mapping.ToModelWorkShift(shift)

	query := `
		INSERT INTO work_shifts (user_id, date, hours, hourly_rate, bonus, advance, deduction, notes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + workShiftColumns

	rows, err := r.Pool.Query(ctx, query,
		m.UserID, m.Date, m.Hours, m.HourlyRate, m.Bonus, m.Advance, m.Deduction, m.Notes, m.Status, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return nil, mapPgError(err, "work shift", "save")
	}
	saved, err := collectWorkShift(rows)
	if err != nil {
		return nil, mapPgError(err, "work shift", "save")
	}
	return saved, nil
}

func (r *PgxWorkShiftRepository) UpdateShift(ctx context.Context, shift domain.WorkShift) (*domain.WorkShift, error) {
	m := mapping.ToModelWorkShift(shift)

	query := `
		UPDATE work_shifts
		SET date = $2, hours = $3, hourly_rate = $4, bonus = $5, advance = $6, deduction = $7,
			notes = $8, status = $9, updated_at = $10
		WHERE id = $1
		RETURNING ` + workShiftColumns

	rows, err := r.Pool.Query(ctx, query,
		m.ShiftID, m.Date, m.Hours, m.HourlyRate, m.Bonus, m.Advance, m.Deduction, m.Notes, m.Status, m.UpdatedAt,
	)
	if err != nil {
		return nil, mapPgError(err, "work shift", "update")
	}
	updated, err := collectWorkShift(rows)
	if err != nil {
		return nil, mapPgError(err, "work shift", "update")
	}
	return updated, nil
}

func (r *PgxWorkShiftRepository) DeleteShift(ctx context.Context, shiftID int64) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM work_shifts WHERE id = $1`, shiftID)
	if err != nil {
		return mapPgError(err, "work shift", "delete")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("work shift")
	}
	return nil
}
