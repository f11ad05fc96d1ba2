//go:build unit

package readstore

import (
	"context"
	"testing"
	"time"

	"student-travels/internal/infra"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) GetUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) GetUserByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Users, error) {
	args := m.Called(ctx, db, username)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) CountUsers(ctx context.Context, db sqlc.DBTX) (int64, error) {
	args := m.Called(ctx, db)
	return args.Get(0).(int64), args.Error(1)
}

func TestFindByEmail(t *testing.T) {
	testUser := builder.NewUserBuilder().BuildInfra()
	inactiveUser := builder.NewUserBuilder().AsInactive().BuildInfra()

	tests := []struct {
		name       string
		email      string
		mockReturn sqlc.Users
		mockError  error
		wantHash   string
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success - active user",
			email:      testUser.Email,
			mockReturn: testUser,
			wantHash:   testUser.PasswordHash,
		},
		{
			name:       "success - inactive user (for validation)",
			email:      inactiveUser.Email,
			mockReturn: inactiveUser,
			wantHash:   inactiveUser.PasswordHash,
		},
		{
			name:      "user not found",
			email:     "notfound@example.com",
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			email:     testUser.Email,
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByEmail", mock.Anything, mock.Anything, tt.email).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, hash, err := readStore.FindByEmail(context.Background(), tt.email)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.Empty(t, hash)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, view)
				assert.Equal(t, tt.email, view.Email)
				assert.Equal(t, tt.mockReturn.IsActive, view.IsActive)
				assert.Equal(t, tt.wantHash, hash)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	dob := time.Date(2003, 5, 17, 0, 0, 0, 0, time.UTC)
	testUser := builder.NewUserBuilder().With(func(b *builder.UserBuilder) { b.DateOfBirth = &dob }).BuildInfra()

	tests := []struct {
		name       string
		userID     uuid.UUID
		mockReturn sqlc.Users
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{
			name:       "success",
			userID:     testUser.ID,
			mockReturn: testUser,
		},
		{
			name:      "user not found",
			userID:    uuid.New(),
			mockError: pgx.ErrNoRows,
			wantKind:  infra.KindNotFound,
		},
		{
			name:      "database error",
			userID:    testUser.ID,
			mockError: assert.AnError,
			wantKind:  infra.KindDBFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("GetUserByID", mock.Anything, mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			readStore := NewUserReadStore(mockQueries, nil)

			view, err := readStore.FindByID(context.Background(), tt.userID)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.Nil(t, view)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.userID, view.ID)
				assert.Equal(t, "test_student", view.Username)
				if assert.NotNil(t, view.DateOfBirth) {
					assert.True(t, dob.Equal(*view.DateOfBirth))
				}
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByUsername(t *testing.T) {
	advertiser := builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
		b.Username = "sunny_tours"
		b.Role = "advertiser"
	}).BuildInfra()

	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByUsername", mock.Anything, mock.Anything, "sunny_tours").Return(advertiser, nil)

		view, err := NewUserReadStore(mockQueries, nil).FindByUsername(context.Background(), "sunny_tours")

		assert.NoError(t, err)
		assert.Equal(t, "advertiser", view.Role)
		assert.Nil(t, view.DateOfBirth)
		mockQueries.AssertExpectations(t)
	})

	t.Run("user not found", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("GetUserByUsername", mock.Anything, mock.Anything, "ghost").Return(sqlc.Users{}, pgx.ErrNoRows)

		_, err := NewUserReadStore(mockQueries, nil).FindByUsername(context.Background(), "ghost")

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		mockQueries.AssertExpectations(t)
	})
}

func TestCount(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("CountUsers", mock.Anything, mock.Anything).Return(int64(42), nil)

		n, err := NewUserReadStore(mockQueries, nil).Count(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, int64(42), n)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("CountUsers", mock.Anything, mock.Anything).Return(int64(0), assert.AnError)

		_, err := NewUserReadStore(mockQueries, nil).Count(context.Background())

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
