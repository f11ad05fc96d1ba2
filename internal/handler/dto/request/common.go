package request

import (
	"strings"
	"time"

	"student-travels/internal/pkg/errs"
	"student-travels/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var errInvalidDate = errs.Validation("dates must be formatted as YYYY-MM-DD")

// Date is a calendar date carried as "YYYY-MM-DD" in JSON bodies.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return errs.WithSecondary(errInvalidDate, err)
	}
	d.Time = t
	return nil
}

func NewDate(t time.Time) *Date {
	return &Date{Time: t}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

type PageQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q PageQuery) ToCursor() *queries.Cursor {
	if q.Cursor == "" {
		return nil
	}
	return &queries.Cursor{After: q.Cursor}
}

// Binding has already checked the format; an unparsable value is dropped.
func parseOptionalUUID(s string) *uuid.UUID {
	if s == "" {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}
