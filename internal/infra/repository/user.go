package repository

import (
	"context"

	"student-travels/internal/domain/user"
	"student-travels/internal/infra"
	"student-travels/internal/infra/repository/converter"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) error
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	UpdateUserProfile(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserProfileParams) error
	UpdateLastLogin(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	UpsertSystemUser(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertSystemUserParams) (uuid.UUID, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	if err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUserByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get user", err)
	}
	return converter.UserFromRow(row)
}

func (r *UserRepository) UpdateProfile(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	params := sqlc.UpdateUserProfileParams{
		ID:          u.ID(),
		Phone:       u.Phone().Value(),
		DateOfBirth: pgconv.DatePtrToPgtype(u.DateOfBirth()),
		UpdatedAt:   pgconv.TimeToPgtype(u.UpdatedAt()),
	}
	if err := r.queries.UpdateUserProfile(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to update user profile", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error {
	if err := r.queries.UpdateLastLogin(ctx, tx, userID); err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

// UpsertSystemUser returns the ID of the inactive sender account, creating it on
// first use.
func (r *UserRepository) UpsertSystemUser(ctx context.Context, tx sqlc.DBTX, username, email, passwordHash string) (uuid.UUID, error) {
	id, err := r.queries.UpsertSystemUser(ctx, tx, sqlc.UpsertSystemUserParams{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert system user", err)
	}
	return id, nil
}
