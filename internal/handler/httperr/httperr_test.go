//go:build unit

package httperr_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"student-travels/internal/handler/httperr"
	"student-travels/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.NewOfKind(errs.ErrNotFound, "thing not found"), http.StatusNotFound},
		{"forbidden", errs.NewOfKind(errs.ErrForbidden, "not yours"), http.StatusForbidden},
		{"unauthenticated", errs.NewOfKind(errs.ErrUnauthenticated, "who are you"), http.StatusUnauthorized},
		{"duplicate", errs.ErrDuplicateBooking, http.StatusConflict},
		{"transition", errs.NewOfKind(errs.ErrInvalidTransition, "cannot go back"), http.StatusConflict},
		{"unavailable", errs.NewOfKind(errs.ErrUnavailable, "sold out"), http.StatusConflict},
		{"invalid state", errs.NewOfKind(errs.ErrInvalidState, "not completed"), http.StatusUnprocessableEntity},
		{"validation", errs.Validation("bad phone"), http.StatusBadRequest},
		{"wrapped kind", errs.Wrap(errs.ErrDuplicateReview, "create review"), http.StatusConflict},
		{"unclassified", errs.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, httperr.StatusOf(tt.err))
		})
	}
}

func TestAbortWithDomainError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	run := func(err error) (*httptest.ResponseRecorder, httperr.Response) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		httperr.AbortWithDomainError(c, err)

		var body httperr.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return w, body
	}

	t.Run("domain message is returned", func(t *testing.T) {
		w, body := run(errs.ErrDuplicateFavourite)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "offer already in favourites", body.Error.Message)
	})

	t.Run("internal message is hidden", func(t *testing.T) {
		w, body := run(errs.New("pq: connection refused"))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", body.Error.Message)
	})
}
