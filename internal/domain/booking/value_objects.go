package booking

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"student-travels/internal/domain/user"
	"student-travels/internal/pkg/errs"
)

const MaxSpecialRequestsLength = 1000

var (
	ErrInvalidStatus          = errs.Validation("invalid booking status")
	ErrInvalidContactPhone    = errs.Validation("contact phone is required and must be at most 20 characters")
	ErrInvalidContactEmail    = errs.Validation("contact email is invalid")
	ErrSpecialRequestsTooLong = errs.Validation("special requests exceed maximum length")
	ErrInvalidTransition      = errs.NewOfKind(errs.ErrInvalidTransition, "booking status transition not allowed")
	ErrNotCompleted           = errs.NewOfKind(errs.ErrInvalidState, "booking is not completed")
	ErrNotBookingStudent      = errs.NewOfKind(errs.ErrForbidden, "booking belongs to another student")
)

var contactPhoneRegex = regexp.MustCompile(`^[0-9+\-() ]{1,20}$`)

type ContactInfo struct {
	phone           string
	email           string
	specialRequests string
}

func NewContactInfo(phone, email, specialRequests string) (ContactInfo, error) {
	phone = strings.TrimSpace(phone)
	if !contactPhoneRegex.MatchString(phone) {
		return ContactInfo{}, ErrInvalidContactPhone
	}
	addr, err := user.NewEmail(email)
	if err != nil {
		return ContactInfo{}, errs.WithSecondary(ErrInvalidContactEmail, err)
	}
	email = addr.Value()
	specialRequests = strings.TrimSpace(specialRequests)
	if utf8.RuneCountInString(specialRequests) > MaxSpecialRequestsLength {
		return ContactInfo{}, ErrSpecialRequestsTooLong
	}
	return ContactInfo{phone: phone, email: email, specialRequests: specialRequests}, nil
}

func (c ContactInfo) Phone() string           { return c.phone }
func (c ContactInfo) Email() string           { return c.email }
func (c ContactInfo) SpecialRequests() string { return c.specialRequests }
