package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the account together with its profile; the role is the single source
// of truth for authorization.
type User struct {
	id           uuid.UUID
	username     Username
	email        Email
	passwordHash string
	role         Role
	phone        Phone
	dateOfBirth  *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username Username, email Email, passwordHash string, role Role, phone Phone, dateOfBirth *time.Time, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		phone:        phone,
		dateOfBirth:  dateOfBirth,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

func ReconstructUser(id uuid.UUID, username Username, email Email, passwordHash string, role Role, phone Phone, dateOfBirth *time.Time, isActive bool, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		phone:        phone,
		dateOfBirth:  dateOfBirth,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) UpdateProfile(phone *Phone, dateOfBirth *time.Time, now time.Time) {
	if phone != nil {
		u.phone = *phone
	}
	if dateOfBirth != nil {
		d := *dateOfBirth
		u.dateOfBirth = &d
	}
	u.updatedAt = now
}

func (u *User) ID() uuid.UUID           { return u.id }
func (u *User) Username() Username      { return u.username }
func (u *User) Email() Email            { return u.email }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) Role() Role              { return u.role }
func (u *User) Phone() Phone            { return u.phone }
func (u *User) DateOfBirth() *time.Time { return u.dateOfBirth }
func (u *User) IsActive() bool          { return u.isActive }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }
