// Package authz holds the capability predicates consulted before every
// offer and booking mutation. Predicates are pure; an anonymous actor is
// denied by all of them.
package authz

import (
	"student-travels/internal/domain/user"

	"github.com/google/uuid"
)

type Actor struct {
	ID   uuid.UUID
	Role user.Role
}

func NewActor(id uuid.UUID, role user.Role) Actor {
	return Actor{ID: id, Role: role}
}

func Anonymous() Actor {
	return Actor{}
}

func (a Actor) IsAuthenticated() bool {
	return a.ID != uuid.Nil && a.Role.IsValid()
}

func (a Actor) Is(id uuid.UUID) bool {
	return a.IsAuthenticated() && a.ID == id
}

func (a Actor) isStaff() bool {
	return a.IsAuthenticated() && a.Role.IsStaff()
}

func CanEditOffer(a Actor, advertiserID uuid.UUID) bool {
	return a.Is(advertiserID) || a.isStaff()
}

func CanViewBooking(a Actor, studentID, advertiserID uuid.UUID) bool {
	return a.Is(studentID) || a.Is(advertiserID) || a.isStaff()
}

func CanUpdateBookingStatus(a Actor, advertiserID uuid.UUID) bool {
	return a.Is(advertiserID) || a.isStaff()
}

func CanModerateOffer(a Actor) bool {
	return a.isStaff()
}

func CanCreateOffer(a Actor) bool {
	return a.IsAuthenticated() && a.Role == user.RoleAdvertiser
}

func CanBook(a Actor) bool {
	return a.IsAuthenticated() && a.Role == user.RoleStudent
}

func CanManageCategories(a Actor) bool {
	return a.IsAuthenticated() && a.Role == user.RoleAdmin
}

func CanViewBookingStats(a Actor) bool {
	return a.IsAuthenticated() && a.Role == user.RoleAdmin
}
