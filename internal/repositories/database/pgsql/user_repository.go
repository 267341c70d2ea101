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

const userColumns = `id, username, email, password_hash, auth_provider, created_at, updated_at`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) findUserBy(ctx context.Context, column string, value any) (*domain.User, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+userColumns+` FROM users WHERE `+column+` = $1`, value)
	if err != nil {
		return nil, mapPgError(err, "user", "find")
	}
	modelUser, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, mapPgError(err, "user", "find")
	}
	user := mapping.ToDomainUser(modelUser)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return r.findUserBy(ctx, "id", userID)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findUserBy(ctx, "username", username)
}

// FindUserByEmail matches case-insensitively; emails are stored lower-cased.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUserBy(ctx, "lower(email)", email)
}

// SaveUser inserts a new user. A taken username or email surfaces as a conflict.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (*domain.User, error) {
	modelUser := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (username, email, password_hash, auth_provider, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	rows, err := r.Pool.Query(ctx, query,
		modelUser.Username,
		modelUser.Email,
		modelUser.PasswordHash,
		modelUser.AuthProvider,
		modelUser.CreatedAt,
		modelUser.UpdatedAt,
	)
	if err != nil {
		return nil, mapPgError(err, "user", "save")
	}
	saved, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		return nil, mapPgError(err, "user", "save")
	}
	domainUser := mapping.ToDomainUser(saved)
	return &domainUser, nil
}
