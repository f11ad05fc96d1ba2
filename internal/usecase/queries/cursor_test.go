//go:build unit

package queries

import (
	"encoding/base64"
	"testing"
	"time"

	"student-travels/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	at := time.Date(2026, 5, 4, 10, 30, 0, 123456789, time.UTC)
	id := uuid.New()

	keyset, err := ParseCursor(&Cursor{After: EncodeAfterCursor(at, id)})

	require.NoError(t, err)
	require.NotNil(t, keyset)
	assert.Equal(t, id, keyset.ID)
	assert.True(t, keyset.At.Equal(at.Truncate(time.Microsecond)))
}

func TestParseCursor(t *testing.T) {
	t.Run("first page", func(t *testing.T) {
		for _, c := range []*Cursor{nil, {}} {
			keyset, err := ParseCursor(c)
			assert.NoError(t, err)
			assert.Nil(t, keyset)
		}
	})

	invalid := map[string]string{
		"not base64":    "%%%",
		"wrong version": base64.URLEncoding.EncodeToString([]byte("v0:1-" + uuid.NewString())),
		"no separator":  base64.URLEncoding.EncodeToString([]byte("v1:12345")),
		"bad timestamp": base64.URLEncoding.EncodeToString([]byte("v1:abc-" + uuid.NewString())),
		"bad uuid":      base64.URLEncoding.EncodeToString([]byte("v1:12345-nope")),
	}
	for name, raw := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCursor(&Cursor{After: raw})
			assert.ErrorIs(t, err, ErrInvalidCursor)
			assert.True(t, errs.Is(err, errs.ErrValidation))
		})
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, DefaultListLimit, ValidateLimit(0))
	assert.Equal(t, DefaultListLimit, ValidateLimit(-5))
	assert.Equal(t, 7, ValidateLimit(7))
	assert.Equal(t, MaxListLimit, ValidateLimit(MaxListLimit+1))
}

func TestNextPage(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]Keyset, 4)
	for i := range rows {
		rows[i] = Keyset{At: base.Add(-time.Duration(i) * time.Hour), ID: uuid.New()}
	}
	key := func(k Keyset) Keyset { return k }

	t.Run("more rows than the limit", func(t *testing.T) {
		items, next := NextPage(rows, 3, key)

		require.Len(t, items, 3)
		require.NotNil(t, next)
		keyset, err := ParseCursor(next)
		require.NoError(t, err)
		assert.Equal(t, rows[2].ID, keyset.ID)
		assert.True(t, keyset.At.Equal(rows[2].At))
	})

	t.Run("last page", func(t *testing.T) {
		items, next := NextPage(rows, 4, key)
		assert.Len(t, items, 4)
		assert.Nil(t, next)
	})
}
