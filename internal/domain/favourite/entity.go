package favourite

import (
	"time"

	"github.com/google/uuid"
)

// Favourite is unique per (student, offer).
type Favourite struct {
	id        uuid.UUID
	studentID uuid.UUID
	offerID   uuid.UUID
	createdAt time.Time
}

func NewFavourite(studentID, offerID uuid.UUID, now time.Time) *Favourite {
	return &Favourite{
		id:        uuid.New(),
		studentID: studentID,
		offerID:   offerID,
		createdAt: now,
	}
}

func (f *Favourite) ID() uuid.UUID        { return f.id }
func (f *Favourite) StudentID() uuid.UUID { return f.studentID }
func (f *Favourite) OfferID() uuid.UUID   { return f.offerID }
func (f *Favourite) CreatedAt() time.Time { return f.createdAt }
