package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of the read-side view types.
type UserSnapshot struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

type CategorySnapshot struct {
	ID   uuid.UUID
	Name string
}

type OfferSnapshot struct {
	ID           uuid.UUID
	AdvertiserID uuid.UUID
	Title        string
	Status       string
}

type NotificationJob struct {
	ID          uuid.UUID
	Topic       string
	RecipientID uuid.UUID
	MessageID   *uuid.UUID
	Payload     []byte
	Attempts    int32
	RunAt       time.Time
}
