package booking

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id        uuid.UUID
	studentID uuid.UUID
	offerID   uuid.UUID
	status    Status
	pricePaid int64
	contact   ContactInfo
	bookedAt  time.Time
	updatedAt time.Time
}

// NewBooking snapshots the offer price; pricePaid never changes afterwards.
func NewBooking(studentID, offerID uuid.UUID, pricePaid int64, contact ContactInfo, now time.Time) *Booking {
	return &Booking{
		id:        uuid.New(),
		studentID: studentID,
		offerID:   offerID,
		status:    StatusPending,
		pricePaid: pricePaid,
		contact:   contact,
		bookedAt:  now,
		updatedAt: now,
	}
}

func ReconstructBooking(id, studentID, offerID uuid.UUID, status Status, pricePaid int64, contact ContactInfo, bookedAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:        id,
		studentID: studentID,
		offerID:   offerID,
		status:    status,
		pricePaid: pricePaid,
		contact:   contact,
		bookedAt:  bookedAt,
		updatedAt: updatedAt,
	}
}

// TransitionTo moves the booking along the state machine. restoresSpot is true
// exactly when the move releases the spot taken at creation.
func (b *Booking) TransitionTo(next Status, now time.Time) (restoresSpot bool, err error) {
	if !b.status.CanTransitionTo(next) {
		return false, ErrInvalidTransition
	}
	restoresSpot = b.status.HoldsSpot() && !next.HoldsSpot()
	b.status = next
	b.updatedAt = now
	return restoresSpot, nil
}

// CheckReviewableBy gates review creation on ownership and completion.
func (b *Booking) CheckReviewableBy(studentID uuid.UUID) error {
	if b.studentID != studentID {
		return ErrNotBookingStudent
	}
	if b.status != StatusCompleted {
		return ErrNotCompleted
	}
	return nil
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) StudentID() uuid.UUID { return b.studentID }
func (b *Booking) OfferID() uuid.UUID   { return b.offerID }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) PricePaid() int64     { return b.pricePaid }
func (b *Booking) Contact() ContactInfo { return b.contact }
func (b *Booking) BookedAt() time.Time  { return b.bookedAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
