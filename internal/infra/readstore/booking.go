package readstore

import (
	"context"

	"student-travels/internal/infra"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/pkg/pgconv"
	"student-travels/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingReadQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetBookingViewRow, error)
	ListBookingsByStudent(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByStudentParams) ([]sqlc.ListBookingsByStudentRow, error)
	ListBookingsByAdvertiser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsByAdvertiserParams) ([]sqlc.ListBookingsByAdvertiserRow, error)
	GetBookingStats(ctx context.Context, db sqlc.DBTX, advertiserID pgtype.UUID) (sqlc.GetBookingStatsRow, error)
	GetStudentBookingForOffer(ctx context.Context, db sqlc.DBTX, arg sqlc.GetStudentBookingForOfferParams) (sqlc.GetStudentBookingForOfferRow, error)
	BookingExistsForStudentOffer(ctx context.Context, db sqlc.DBTX, arg sqlc.BookingExistsForStudentOfferParams) (bool, error)
	CountBookingsByStudent(ctx context.Context, db sqlc.DBTX, studentID uuid.UUID) (int64, error)
	CountActiveBookingsForOffer(ctx context.Context, db sqlc.DBTX, offerID uuid.UUID) (int64, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		return nil, wrapFind("booking", err)
	}
	return toBookingView(row), nil
}

func (r *BookingReadStore) ByStudent(ctx context.Context, studentID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.BookingView, error) {
	params := sqlc.ListBookingsByStudentParams{StudentID: studentID, Limit: limit}
	if after != nil {
		params.AfterBookedAt = pgconv.TimeToPgtype(after.At)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}
	rows, err := r.queries.ListBookingsByStudent(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list student bookings", err)
	}
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = toBookingView(sqlc.GetBookingViewRow(row))
	}
	return result, nil
}

func (r *BookingReadStore) ByAdvertiser(ctx context.Context, advertiserID uuid.UUID, status *string, after *queries.Keyset, limit int32) ([]*queries.BookingView, error) {
	params := sqlc.ListBookingsByAdvertiserParams{
		AdvertiserID: advertiserID,
		Status:       pgconv.StringPtrToPgtype(status),
		Limit:        limit,
	}
	if after != nil {
		params.AfterBookedAt = pgconv.TimeToPgtype(after.At)
		params.AfterID = pgconv.UUIDToPgtype(after.ID)
	}
	rows, err := r.queries.ListBookingsByAdvertiser(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list advertiser bookings", err)
	}
	result := make([]*queries.BookingView, len(rows))
	for i, row := range rows {
		result[i] = toBookingView(sqlc.GetBookingViewRow(row))
	}
	return result, nil
}

// Stats covers every booking when advertiserID is nil.
func (r *BookingReadStore) Stats(ctx context.Context, advertiserID *uuid.UUID) (*queries.BookingStats, error) {
	row, err := r.queries.GetBookingStats(ctx, r.db, pgconv.UUIDPtrToPgtype(advertiserID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get booking stats", err)
	}
	return &queries.BookingStats{
		Total:     row.Total,
		Pending:   row.Pending,
		Confirmed: row.Confirmed,
		Cancelled: row.Cancelled,
		Completed: row.Completed,
	}, nil
}

// StudentBookingForOffer returns nil when the student has not booked the offer.
func (r *BookingReadStore) StudentBookingForOffer(ctx context.Context, studentID, offerID uuid.UUID) (*uuid.UUID, error) {
	row, err := r.queries.GetStudentBookingForOffer(ctx, r.db, sqlc.GetStudentBookingForOfferParams{
		StudentID: studentID,
		OfferID:   offerID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get student booking for offer", err)
	}
	return &row.ID, nil
}

func (r *BookingReadStore) Exists(ctx context.Context, studentID, offerID uuid.UUID) (bool, error) {
	ok, err := r.queries.BookingExistsForStudentOffer(ctx, r.db, sqlc.BookingExistsForStudentOfferParams{
		StudentID: studentID,
		OfferID:   offerID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking existence", err)
	}
	return ok, nil
}

func (r *BookingReadStore) CountByStudent(ctx context.Context, studentID uuid.UUID) (int64, error) {
	n, err := r.queries.CountBookingsByStudent(ctx, r.db, studentID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count student bookings", err)
	}
	return n, nil
}

// CountActiveForOffer counts bookings that hold a spot.
func (r *BookingReadStore) CountActiveForOffer(ctx context.Context, offerID uuid.UUID) (int64, error) {
	n, err := r.queries.CountActiveBookingsForOffer(ctx, r.db, offerID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active bookings", err)
	}
	return n, nil
}

func toBookingView(row sqlc.GetBookingViewRow) *queries.BookingView {
	return &queries.BookingView{
		ID:                 row.ID,
		StudentID:          row.StudentID,
		StudentUsername:    row.StudentUsername,
		OfferID:            row.OfferID,
		OfferTitle:         row.OfferTitle,
		OfferDestination:   row.OfferDestination,
		OfferStartDate:     pgconv.DateFromPgtype(row.OfferStartDate),
		OfferEndDate:       pgconv.DateFromPgtype(row.OfferEndDate),
		AdvertiserID:       row.AdvertiserID,
		AdvertiserUsername: row.AdvertiserUsername,
		Status:             row.Status,
		PricePaidCents:     row.PricePaidCents,
		ContactPhone:       row.ContactPhone,
		ContactEmail:       row.ContactEmail,
		SpecialRequests:    row.SpecialRequests,
		BookedAt:           pgconv.TimeFromPgtype(row.BookedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
		HasReview:          row.HasReview,
	}
}
