package pgsql

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const categoryColumns = `id, user_id, name, type, color, icon, created_at`

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(pool *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, categoryID)
	if err != nil {
		return nil, mapPgError(err, "category", "find")
	}
	modelCat, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, mapPgError(err, "category", "find")
	}
	cat := mapping.ToDomainCategory(modelCat)
	return &cat, nil
}

// ListCategories returns built-in categories (user_id IS NULL) and the user's own, by name.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context, userID int64, categoryType *domain.TransactionType) ([]domain.Category, error) {
	fb := newFilterBuilder("(user_id IS NULL OR user_id = $%d)", userID)
	if categoryType != nil {
		fb.add("type = $%d", string(*categoryType))
	}

	query := `SELECT ` + categoryColumns + ` FROM categories` + fb.where() + ` ORDER BY name, id`

	rows, err := r.Pool.Query(ctx, query, fb.args...)
	if err != nil {
		return nil, mapPgError(err, "categories", "list")
	}
	modelCats, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, mapPgError(err, "categories", "list")
	}
	return mapping.ToDomainCategorySlice(modelCats), nil
}

// SaveCategory inserts a user-owned category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) (*domain.Category, error) {
	query := `
		INSERT INTO categories (user_id, name, type, color, icon, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + categoryColumns

	rows, err := r.Pool.Query(ctx, query,
		category.UserID,
		category.Name,
		string(category.CategoryType),
		category.Color,
		category.Icon,
		category.CreatedAt,
	)
	if err != nil {
		return nil, mapPgError(err, "category", "save")
	}
	modelCat, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.Category])
	if err != nil {
		return nil, mapPgError(err, "category", "save")
	}
	saved := mapping.ToDomainCategory(modelCat)
	return &saved, nil
}
