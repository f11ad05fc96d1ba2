package queries

import (
	"context"

	"github.com/google/uuid"
)

// Read-side ports implemented by infra/readstore.

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
	FindByUsername(ctx context.Context, username string) (*AuthorizedUserView, error)
	Count(ctx context.Context) (int64, error)
}

type CategoryReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CategoryView, error)
	List(ctx context.Context) ([]*CategoryView, error)
}

type OfferReadStore interface {
	FindDetail(ctx context.Context, id uuid.UUID) (*OfferDetail, error)
	Search(ctx context.Context, filters OfferSearchFilters, after *Keyset, limit int32) ([]*OfferListItem, error)
	Featured(ctx context.Context, limit int32) ([]*OfferListItem, error)
	ByAdvertiser(ctx context.Context, advertiserID uuid.UUID, limit int32) ([]*OfferListItem, error)
	ByStatus(ctx context.Context, status string, limit int32) ([]*OfferListItem, error)
	AdvertiserCounts(ctx context.Context, advertiserID uuid.UUID) (*AdvertiserOfferCounts, error)
	CountByStatus(ctx context.Context, status *string) (int64, error)
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ByStudent(ctx context.Context, studentID uuid.UUID, after *Keyset, limit int32) ([]*BookingView, error)
	ByAdvertiser(ctx context.Context, advertiserID uuid.UUID, status *string, after *Keyset, limit int32) ([]*BookingView, error)
	Stats(ctx context.Context, advertiserID *uuid.UUID) (*BookingStats, error)
	StudentBookingForOffer(ctx context.Context, studentID, offerID uuid.UUID) (*uuid.UUID, error)
	CountByStudent(ctx context.Context, studentID uuid.UUID) (int64, error)
}

type ReviewReadStore interface {
	ByOffer(ctx context.Context, offerID uuid.UUID, after *Keyset, limit int32) ([]*ReviewListItem, error)
	Rating(ctx context.Context, offerID uuid.UUID) (*OfferRating, error)
}

type FavouriteReadStore interface {
	ByStudent(ctx context.Context, studentID uuid.UUID, limit int32) ([]*FavouriteItem, error)
	Exists(ctx context.Context, studentID, offerID uuid.UUID) (bool, error)
	CountByStudent(ctx context.Context, studentID uuid.UUID) (int64, error)
}

type MessageReadStore interface {
	List(ctx context.Context, userID uuid.UUID, box MessageBox, after *Keyset, limit int32) ([]*MessageView, error)
	Conversation(ctx context.Context, userID, otherUserID uuid.UUID, offerID *uuid.UUID, limit int32) ([]*MessageView, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
}
