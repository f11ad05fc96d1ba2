package errs

// Error kinds shared by every layer. Specific errors belong to exactly one of
// these so the transport can map them without knowing each sentinel.
var (
	ErrNotFound          = New("resource not found")
	ErrForbidden         = New("forbidden")
	ErrUnauthenticated   = New("unauthenticated")
	ErrInvalidTransition = New("invalid status transition")
	ErrInvalidState      = New("invalid state")
	ErrUnavailable       = New("unavailable")
	ErrValidation        = New("validation error")
	ErrDuplicate         = New("duplicate")

	ErrDuplicateBooking   = NewOfKind(ErrDuplicate, "booking already exists for this offer")
	ErrDuplicateReview    = NewOfKind(ErrDuplicate, "review already exists for this booking")
	ErrDuplicateFavourite = NewOfKind(ErrDuplicate, "offer already in favourites")
)

var kinds = []error{
	ErrNotFound,
	ErrForbidden,
	ErrUnauthenticated,
	ErrInvalidTransition,
	ErrInvalidState,
	ErrUnavailable,
	ErrValidation,
	ErrDuplicate,
}

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

// NewOfKind returns a sentinel that matches both itself and kind under Is.
// Messages must be unique: marks compare by type and message.
func NewOfKind(kind error, msg string) error {
	return &kindError{msg: msg, kind: kind}
}

// Validation returns a sentinel of the validation kind.
func Validation(msg string) error {
	return NewOfKind(ErrValidation, msg)
}

// Kind returns the error kind err belongs to, or nil.
func Kind(err error) error {
	for _, k := range kinds {
		if Is(err, k) {
			return k
		}
	}
	return nil
}
