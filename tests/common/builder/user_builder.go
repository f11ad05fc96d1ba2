//go:build unit || e2e

package builder

import (
	"time"

	"student-travels/internal/domain/authz"
	"student-travels/internal/domain/user"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/usecase/queries"
	"student-travels/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         string
	Phone        string
	DateOfBirth  *time.Time
	IsActive     bool
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Username:     "test_student",
		Email:        "test@example.com",
		PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		Role:         "student",
		Phone:        "+33 6 12 34 56 78",
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) AsInactive() *UserBuilder {
	b.IsActive = false
	return b
}

func (b *UserBuilder) AsRole(role user.Role) *UserBuilder {
	b.Role = role.String()
	return b
}

func (b *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(b.Username)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(b.Role)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhone(b.Phone)
	if err != nil {
		return nil, err
	}
	return user.NewUser(username, email, b.PasswordHash, role, phone, b.DateOfBirth, b.CreatedAt), nil
}

func (b *UserBuilder) BuildInfra() sqlc.Users {
	ts := pgtype.Timestamptz{Time: b.CreatedAt, Valid: true}
	row := sqlc.Users{
		ID:           b.ID,
		Username:     b.Username,
		Email:        b.Email,
		PasswordHash: b.PasswordHash,
		Role:         b.Role,
		Phone:        b.Phone,
		IsActive:     b.IsActive,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	if b.DateOfBirth != nil {
		row.DateOfBirth = pgtype.Date{Time: *b.DateOfBirth, Valid: true}
	}
	return row
}

func (b *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          b.ID,
		Username:    b.Username,
		Email:       b.Email,
		Role:        b.Role,
		Phone:       b.Phone,
		DateOfBirth: b.DateOfBirth,
		IsActive:    b.IsActive,
		CreatedAt:   b.CreatedAt,
	}
}

func (b *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:           b.ID,
		Username:     b.Username,
		Email:        b.Email,
		PasswordHash: b.PasswordHash,
		Role:         b.Role,
		IsActive:     b.IsActive,
	}
}

func (b *UserBuilder) BuildActor() authz.Actor {
	return authz.NewActor(b.ID, user.Role(b.Role))
}
