//go:build unit

package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndCompare(t *testing.T) {
	Cost = bcrypt.MinCost

	hashed, err := Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hashed)

	assert.NoError(t, Compare(hashed, "correct horse"))
	assert.ErrorIs(t, Compare(hashed, "wrong"), ErrMismatch)
	assert.ErrorIs(t, Compare("", "x"), ErrInvalidPassword)

	_, err = Hash("")
	assert.ErrorIs(t, err, ErrInvalidPassword)
}
