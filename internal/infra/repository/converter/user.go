package converter

import (
	"student-travels/internal/domain/user"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/pkg/pgconv"
)

func UserFromRow(row sqlc.Users) (*user.User, error) {
	username, err := user.NewUsername(row.Username)
	if err != nil {
		return nil, errs.Wrapf(err, "stored user %s", row.ID)
	}
	email, err := user.NewEmail(row.Email)
	if err != nil {
		return nil, errs.Wrapf(err, "stored user %s", row.ID)
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, errs.Wrapf(err, "stored user %s", row.ID)
	}
	phone, err := user.NewPhone(row.Phone)
	if err != nil {
		return nil, errs.Wrapf(err, "stored user %s", row.ID)
	}
	return user.ReconstructUser(
		row.ID, username, email, row.PasswordHash, role, phone,
		pgconv.DatePtrFromPgtype(row.DateOfBirth), row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Username:     u.Username().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Phone:        u.Phone().Value(),
		DateOfBirth:  pgconv.DatePtrToPgtype(u.DateOfBirth()),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	}
}
