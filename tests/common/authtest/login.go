//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"student-travels/internal/handler/dto/request"
	"student-travels/internal/pkg/cookie"
	"student-travels/tests/common/dbtest"
	"student-travels/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	loginPath  = "/api/auth/login"
	logoutPath = "/api/auth/logout"
)

// LoginUser logs in through the API and returns the access token taken from
// the cookie, which also proves the cookie was set.
func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, loginPath,
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, "login %s: %s", email, w.Body.String())

	c := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, c, "%s cookie missing", cookie.AccessTokenCookieName)
	require.NotEmpty(t, c.Value)
	return c.Value
}

// CreateAndLogin seeds username with the shared test password and logs in.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, username, role string) (uuid.UUID, string) {
	t.Helper()
	id := dbtest.CreateTestUser(t, db, username, role)
	return id, LoginUser(t, router, username+"@example.com", dbtest.TestPassword)
}

// LogoutUser posts the login cookies back and expects them to be cleared.
func LogoutUser(t *testing.T, router *gin.Engine, cookies []*http.Cookie) {
	t.Helper()

	w := httptest.PerformRequestWithCookies(t, router, http.MethodPost, logoutPath, nil, cookies, "")
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	cleared := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, cleared, "logout did not reset the access cookie")
	require.True(t, cleared.MaxAge < 0 || cleared.Value == "", "access cookie still set")
}
