package converter

import (
	"student-travels/internal/domain/booking"
	sqlc "student-travels/internal/infra/sqlc/generated"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/pkg/pgconv"
)

func BookingFromLockedRow(row sqlc.GetBookingForUpdateRow) (*booking.Booking, error) {
	status, err := booking.NewStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "stored booking %s", row.ID)
	}
	contact, err := booking.NewContactInfo(row.ContactPhone, row.ContactEmail, row.SpecialRequests)
	if err != nil {
		return nil, errs.Wrapf(err, "stored booking %s", row.ID)
	}
	return booking.ReconstructBooking(
		row.ID, row.StudentID, row.OfferID,
		status, row.PricePaidCents, contact,
		pgconv.TimeFromPgtype(row.BookedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:              b.ID(),
		StudentID:       b.StudentID(),
		OfferID:         b.OfferID(),
		Status:          b.Status().String(),
		PricePaidCents:  b.PricePaid(),
		ContactPhone:    b.Contact().Phone(),
		ContactEmail:    b.Contact().Email(),
		SpecialRequests: b.Contact().SpecialRequests(),
		BookedAt:        pgconv.TimeToPgtype(b.BookedAt()),
	}
}
