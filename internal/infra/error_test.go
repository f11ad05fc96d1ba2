//go:build unit

package infra

import (
	"testing"

	"student-travels/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		kind       []RepositoryErrorKind
		want       RepositoryErrorKind
		constraint string
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: KindNotFound},
		{name: "unique", err: &pgconn.PgError{Code: "23505", ConstraintName: "bookings_student_offer_key"}, want: KindDuplicateKey, constraint: "bookings_student_offer_key"},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, want: KindForeignKeyViolated},
		{name: "check", err: &pgconn.PgError{Code: "23514", ConstraintName: "offers_available_spots_check"}, want: KindCheckViolated, constraint: "offers_available_spots_check"},
		{name: "other pg error", err: &pgconn.PgError{Code: "42P01"}, want: KindDBFailure},
		{name: "plain error", err: errs.New("boom"), want: KindDBFailure},
		{name: "explicit kind wins", err: errs.New("boom"), kind: []RepositoryErrorKind{KindNotFound}, want: KindNotFound},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := WrapRepoErr("op failed", c.err, c.kind...)
			assert.True(t, IsKind(err, c.want))
			if c.constraint != "" {
				assert.True(t, IsConstraint(err, c.constraint))
			}
			assert.ErrorIs(t, err, c.err)
		})
	}
}

func TestAsDomainErr(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "bookings_student_offer_key"}
	err := AsDomainErr(WrapRepoErr("create booking", pgErr), errs.ErrDuplicateBooking)

	assert.Equal(t, errs.ErrDuplicateBooking.Error(), err.Error(), "driver text stays out of the message")
	assert.True(t, errs.Is(err, errs.ErrDuplicateBooking))
	assert.Equal(t, errs.ErrDuplicate, errs.Kind(err))
	assert.False(t, errs.Is(err, errs.ErrDuplicateReview))
	assert.True(t, IsKind(err, KindDuplicateKey))
	assert.True(t, IsConstraint(err, "bookings_student_offer_key"))
	assert.Nil(t, AsDomainErr(nil, errs.ErrDuplicateBooking))
}
