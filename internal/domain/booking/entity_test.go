//go:build unit

package booking_test

import (
	"strings"
	"testing"
	"time"

	"student-travels/internal/domain/booking"
	"student-travels/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func newBooking(t *testing.T, status booking.Status) *booking.Booking {
	t.Helper()
	contact, err := booking.NewContactInfo("+44 20 7946 0000", "student@example.com", "")
	require.NoError(t, err)
	return booking.ReconstructBooking(uuid.New(), uuid.New(), uuid.New(), status, 50000, contact, now, now)
}

func TestNewBooking(t *testing.T) {
	contact, err := booking.NewContactInfo("123456", "a@example.com", "window seat")
	require.NoError(t, err)

	b := booking.NewBooking(uuid.New(), uuid.New(), 42000, contact, now)
	assert.Equal(t, booking.StatusPending, b.Status())
	assert.Equal(t, int64(42000), b.PricePaid())
	assert.Equal(t, "window seat", b.Contact().SpecialRequests())
}

func TestContactInfo(t *testing.T) {
	cases := []struct {
		name  string
		phone string
		email string
		extra string
		errIs error
	}{
		{name: "valid", phone: "+1 (555) 010-9999", email: "x@example.com"},
		{name: "missing phone", phone: "", email: "x@example.com", errIs: booking.ErrInvalidContactPhone},
		{name: "phone too long", phone: "123456789012345678901", email: "x@example.com", errIs: booking.ErrInvalidContactPhone},
		{name: "bad email", phone: "123", email: "nope", errIs: booking.ErrInvalidContactEmail},
		{name: "display name email", phone: "123", email: "Bob <bob@example.com>", errIs: booking.ErrInvalidContactEmail},
		{name: "email without domain suffix", phone: "123", email: "bob@localhost", errIs: booking.ErrInvalidContactEmail},
		{name: "requests too long", phone: "123", email: "x@example.com", extra: strings.Repeat("a", 1001), errIs: booking.ErrSpecialRequestsTooLong},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := booking.NewContactInfo(c.phone, c.email, c.extra)
			if c.errIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, c.errIs)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestContactInfo_EmailMatchesAccountRule(t *testing.T) {
	contact, err := booking.NewContactInfo("123", "  Ana.Silva@Example.COM ", "")
	require.NoError(t, err)
	assert.Equal(t, "ana.silva@example.com", contact.Email())
}

func TestTransitions(t *testing.T) {
	cases := []struct {
		from         booking.Status
		to           booking.Status
		ok           bool
		restoresSpot bool
	}{
		{from: booking.StatusPending, to: booking.StatusConfirmed, ok: true},
		{from: booking.StatusPending, to: booking.StatusCancelled, ok: true, restoresSpot: true},
		{from: booking.StatusPending, to: booking.StatusCompleted},
		{from: booking.StatusPending, to: booking.StatusPending},
		{from: booking.StatusConfirmed, to: booking.StatusCompleted, ok: true},
		{from: booking.StatusConfirmed, to: booking.StatusCancelled, ok: true, restoresSpot: true},
		{from: booking.StatusConfirmed, to: booking.StatusConfirmed},
		{from: booking.StatusConfirmed, to: booking.StatusPending},
	}
	for _, terminal := range []booking.Status{booking.StatusCancelled, booking.StatusCompleted} {
		for _, to := range []booking.Status{booking.StatusPending, booking.StatusConfirmed, booking.StatusCancelled, booking.StatusCompleted} {
			cases = append(cases, struct {
				from         booking.Status
				to           booking.Status
				ok           bool
				restoresSpot bool
			}{from: terminal, to: to})
		}
	}

	for _, c := range cases {
		t.Run(string(c.from)+"->"+string(c.to), func(t *testing.T) {
			b := newBooking(t, c.from)

			restores, err := b.TransitionTo(c.to, now.Add(time.Hour))
			if !c.ok {
				require.ErrorIs(t, err, booking.ErrInvalidTransition)
				assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
				assert.False(t, restores)
				assert.Equal(t, c.from, b.Status())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.restoresSpot, restores)
			assert.Equal(t, c.to, b.Status())
		})
	}
}

func TestCancelTwiceRestoresOnce(t *testing.T) {
	b := newBooking(t, booking.StatusConfirmed)

	restores, err := b.TransitionTo(booking.StatusCancelled, now)
	require.NoError(t, err)
	assert.True(t, restores)

	restores, err = b.TransitionTo(booking.StatusCancelled, now)
	require.ErrorIs(t, err, booking.ErrInvalidTransition)
	assert.False(t, restores)
}

func TestCheckReviewableBy(t *testing.T) {
	t.Run("completed by owner", func(t *testing.T) {
		b := newBooking(t, booking.StatusCompleted)
		assert.NoError(t, b.CheckReviewableBy(b.StudentID()))
	})

	t.Run("other student", func(t *testing.T) {
		b := newBooking(t, booking.StatusCompleted)
		err := b.CheckReviewableBy(uuid.New())
		require.ErrorIs(t, err, booking.ErrNotBookingStudent)
		assert.True(t, errs.Is(err, errs.ErrForbidden))
	})

	for _, st := range []booking.Status{booking.StatusPending, booking.StatusConfirmed, booking.StatusCancelled} {
		t.Run("not completed "+string(st), func(t *testing.T) {
			b := newBooking(t, st)
			err := b.CheckReviewableBy(b.StudentID())
			require.ErrorIs(t, err, booking.ErrNotCompleted)
			assert.True(t, errs.Is(err, errs.ErrInvalidState))
		})
	}
}
