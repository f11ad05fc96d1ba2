package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"student-travels/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

var ErrInvalidCursor = errs.Validation("invalid cursor")

type Cursor struct {
	After string `json:"after,omitempty"`
}

// Keyset is the (timestamp, id) position of the last row on a page. Lists are
// ordered by both columns descending.
type Keyset struct {
	At time.Time
	ID uuid.UUID
}

// Uses microsecond precision to align with PostgreSQL timestamp precision
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	cursorData := fmt.Sprintf("%s:%d-%s", CursorVersionV1, t.UnixMicro(), id.String())
	return base64.URLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	if cursor == "" {
		return time.Time{}, uuid.Nil, errs.New("cursor cannot be empty")
	}
	decoded, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "invalid cursor encoding")
	}
	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return time.Time{}, uuid.Nil, errs.New("unsupported cursor version")
	}

	parts := strings.SplitN(payload, "-", 2)
	if len(parts) != 2 {
		return time.Time{}, uuid.Nil, errs.New("invalid cursor format: expected '<micros>-<uuid>'")
	}
	micros, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "invalid timestamp")
	}
	id, err := uuid.Parse(parts[1])
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "invalid UUID")
	}
	return time.UnixMicro(micros).UTC(), id, nil
}

// ParseCursor returns nil for the first page.
func ParseCursor(c *Cursor) (*Keyset, error) {
	if c == nil || c.After == "" {
		return nil, nil
	}
	at, id, err := DecodeAfterCursor(c.After)
	if err != nil {
		return nil, errs.WithSecondary(ErrInvalidCursor, err)
	}
	return &Keyset{At: at, ID: id}, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

// NextPage trims a limit+1 fetch to limit rows and builds the cursor for the
// following page when more rows exist.
func NextPage[T any](rows []T, limit int, key func(T) Keyset) ([]T, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	last := key(rows[limit-1])
	return rows[:limit], &Cursor{After: EncodeAfterCursor(last.At, last.ID)}
}
