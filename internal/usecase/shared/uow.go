package shared

import (
	"context"
	"time"

	"student-travels/internal/domain/booking"
	"student-travels/internal/domain/category"
	"student-travels/internal/domain/favourite"
	"student-travels/internal/domain/message"
	"student-travels/internal/domain/offer"
	"student-travels/internal/domain/review"
	"student-travels/internal/domain/user"
	sqlc "student-travels/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Categories() CategoryRepository
	Offers() OfferRepository
	Bookings() BookingRepository
	Reviews() ReviewRepository
	Favourites() FavouriteRepository
	Messages() MessageRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	UserByUsername(ctx context.Context, username string) (*UserSnapshot, error)
	CategoryByID(ctx context.Context, id uuid.UUID) (*CategorySnapshot, error)
	OfferByID(ctx context.Context, id uuid.UUID) (*OfferSnapshot, error)
	BookingExists(ctx context.Context, studentID, offerID uuid.UUID) (bool, error)
	ReviewExistsForBooking(ctx context.Context, bookingID uuid.UUID) (bool, error)
	FavouriteExists(ctx context.Context, studentID, offerID uuid.UUID) (bool, error)
	MessageByID(ctx context.Context, id uuid.UUID) (*message.Message, error)
}

type UserRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error)
	UpdateProfile(ctx context.Context, tx sqlc.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	UpsertSystemUser(ctx context.Context, tx sqlc.DBTX, username, email, passwordHash string) (uuid.UUID, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *category.Category) error
}

type OfferRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, o *offer.Offer) error
	Update(ctx context.Context, tx sqlc.DBTX, o *offer.Offer) error
	// FindForUpdate locks the offer row until the transaction ends.
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*offer.Offer, error)
	// ReserveSpot decrements available spots only while they are positive.
	ReserveSpot(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	ReleaseSpot(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	ExpireStarted(ctx context.Context, tx sqlc.DBTX, today time.Time) (int64, error)
}

// LockedBooking carries the offer fields needed to authorize and notify.
type LockedBooking struct {
	Booking      *booking.Booking
	AdvertiserID uuid.UUID
	OfferTitle   string
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*LockedBooking, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}

type ReviewRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, rev *review.Review) error
}

type FavouriteRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, f *favourite.Favourite) error
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, tx sqlc.DBTX, studentID, offerID uuid.UUID) (bool, error)
}

type MessageRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, m *message.Message) error
	MarkRead(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	MarkConversationRead(ctx context.Context, tx sqlc.DBTX, recipientID, senderID uuid.UUID, offerID *uuid.UUID) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, job NotificationJob) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastError string, retryAt time.Time, dead bool) error
}
