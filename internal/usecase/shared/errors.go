package shared

import (
	"student-travels/internal/infra"
	"student-travels/internal/pkg/errs"
)

// Not-found sentinels shared by commands and queries so handlers map both the
// same way.
var (
	ErrUserNotFound     = errs.NewOfKind(errs.ErrNotFound, "user not found")
	ErrCategoryNotFound = errs.NewOfKind(errs.ErrNotFound, "category not found")
	ErrOfferNotFound    = errs.NewOfKind(errs.ErrNotFound, "offer not found")
	ErrBookingNotFound  = errs.NewOfKind(errs.ErrNotFound, "booking not found")
	ErrMessageNotFound  = errs.NewOfKind(errs.ErrNotFound, "message not found")
)

// MapNotFound swaps a repository not-found error for the given sentinel and
// passes anything else through.
func MapNotFound(err, sentinel error) error {
	if err == nil {
		return nil
	}
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.WithSecondary(sentinel, err)
	}
	return err
}
