//go:build unit

package authz_test

import (
	"testing"

	"student-travels/internal/domain/authz"
	"student-travels/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPredicates(t *testing.T) {
	advertiserID := uuid.New()
	studentID := uuid.New()

	owner := authz.NewActor(advertiserID, user.RoleAdvertiser)
	otherAdvertiser := authz.NewActor(uuid.New(), user.RoleAdvertiser)
	student := authz.NewActor(studentID, user.RoleStudent)
	otherStudent := authz.NewActor(uuid.New(), user.RoleStudent)
	moderator := authz.NewActor(uuid.New(), user.RoleModerator)
	admin := authz.NewActor(uuid.New(), user.RoleAdmin)
	anon := authz.Anonymous()

	cases := []struct {
		name  string
		check func(authz.Actor) bool
		allow []authz.Actor
		deny  []authz.Actor
	}{
		{
			name:  "CanEditOffer",
			check: func(a authz.Actor) bool { return authz.CanEditOffer(a, advertiserID) },
			allow: []authz.Actor{owner, moderator, admin},
			deny:  []authz.Actor{otherAdvertiser, student, anon},
		},
		{
			name:  "CanViewBooking",
			check: func(a authz.Actor) bool { return authz.CanViewBooking(a, studentID, advertiserID) },
			allow: []authz.Actor{owner, student, moderator, admin},
			deny:  []authz.Actor{otherAdvertiser, otherStudent, anon},
		},
		{
			name:  "CanUpdateBookingStatus",
			check: func(a authz.Actor) bool { return authz.CanUpdateBookingStatus(a, advertiserID) },
			allow: []authz.Actor{owner, moderator, admin},
			deny:  []authz.Actor{otherAdvertiser, student, anon},
		},
		{
			name:  "CanModerateOffer",
			check: authz.CanModerateOffer,
			allow: []authz.Actor{moderator, admin},
			deny:  []authz.Actor{owner, student, anon},
		},
		{
			name:  "CanCreateOffer",
			check: authz.CanCreateOffer,
			allow: []authz.Actor{owner, otherAdvertiser},
			deny:  []authz.Actor{student, moderator, admin, anon},
		},
		{
			name:  "CanBook",
			check: authz.CanBook,
			allow: []authz.Actor{student, otherStudent},
			deny:  []authz.Actor{owner, moderator, admin, anon},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			for _, a := range c.allow {
				assert.True(t, c.check(a), "expected %s to be allowed", a.Role)
			}
			for _, a := range c.deny {
				assert.False(t, c.check(a), "expected %q to be denied", a.Role)
			}
		})
	}
}

func TestAnonymousWithMatchingNilID(t *testing.T) {
	// a zero actor must never match a zero owner id
	assert.False(t, authz.CanEditOffer(authz.Anonymous(), uuid.Nil))
	assert.False(t, authz.CanViewBooking(authz.Anonymous(), uuid.Nil, uuid.Nil))
}

func TestUnknownRoleIsUnauthenticated(t *testing.T) {
	a := authz.NewActor(uuid.New(), user.Role("superuser"))
	assert.False(t, a.IsAuthenticated())
	assert.False(t, authz.CanModerateOffer(a))
}
