// Package validation registers the request-binding rules shared by the DTOs
// on gin's validator engine.
package validation

import (
	"reflect"
	"time"

	"student-travels/internal/domain/booking"
	"student-travels/internal/domain/offer"
	"student-travels/internal/domain/user"
	"student-travels/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var errUnexpectedEngine = errs.New("binding validator is not go-playground/validator")

// Register is idempotent; re-registering a tag replaces the previous rule.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errUnexpectedEngine
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	rules := map[string]validator.Func{
		"booking_status": bookingStatus,
		"offer_status":   offerStatus,
		"user_role":      userRole,
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return errs.Wrapf(err, "register %s", tag)
		}
	}
	return errs.Wrap(v.RegisterValidation("date_after", dateAfter), "register date_after")
}

func bookingStatus(fl validator.FieldLevel) bool {
	return booking.Status(fl.Field().String()).IsValid()
}

// offer_status only accepts the states a moderator can set.
func offerStatus(fl validator.FieldLevel) bool {
	return offer.Status(fl.Field().String()).IsModerationTarget()
}

func userRole(fl validator.FieldLevel) bool {
	return user.Role(fl.Field().String()).IsValid()
}

// date_after=Field holds when the field is strictly later than the named
// sibling. Either side left empty passes; required handles presence.
func dateAfter(fl validator.FieldLevel) bool {
	field, ok := timeOf(fl.Field())
	if !ok {
		return true
	}
	other, _, _, found := fl.GetStructFieldOKAdvanced2(fl.Parent(), fl.Param())
	if !found {
		return false
	}
	start, ok := timeOf(other)
	if !ok {
		return true
	}
	return field.After(start)
}

func timeOf(v reflect.Value) (time.Time, bool) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return time.Time{}, false
		}
		v = v.Elem()
	}
	if !v.CanInterface() {
		return time.Time{}, false
	}
	t, ok := v.Interface().(time.Time)
	return t, ok && !t.IsZero()
}
