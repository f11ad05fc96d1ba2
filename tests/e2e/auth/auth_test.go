//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"student-travels/internal/domain/user"
	"student-travels/internal/handler/dto/request"
	resdto "student-travels/internal/handler/dto/response"
	"student-travels/internal/pkg/cookie"
	"student-travels/tests/common/authtest"
	"student-travels/tests/common/dbtest"
	"student-travels/tests/common/httptest"
	"student-travels/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "ana", string(user.RoleStudent))
	dbtest.CreateTestUser(s.T(), s.DB, "sunny_trips", string(user.RoleAdvertiser))
	dbtest.CreateTestUser(s.T(), s.DB, "inactive", string(user.RoleStudent))

	_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE username = 'inactive'")
	require.NoError(s.T(), err)
}

func (s *authSuite) TestRegister() {
	tests := []struct {
		name           string
		req            request.RegisterRequest
		expectedStatus int
	}{
		{
			name:           "student signs up",
			req:            request.RegisterRequest{Username: "bruno", Email: "bruno@example.com", Password: "password123", Role: "student"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "advertiser signs up",
			req:            request.RegisterRequest{Username: "alps_tours", Email: "alps@example.com", Password: "password123", Role: "advertiser"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "staff roles cannot self-register",
			req:            request.RegisterRequest{Username: "mod", Email: "mod@example.com", Password: "password123", Role: "moderator"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "email already registered",
			req:            request.RegisterRequest{Username: "ana2", Email: "ana@example.com", Password: "password123", Role: "student"},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "username already taken",
			req:            request.RegisterRequest{Username: "ana", Email: "other@example.com", Password: "password123", Role: "student"},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "short password",
			req:            request.RegisterRequest{Username: "carla", Email: "carla@example.com", Password: "short", Role: "student"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, tt.req, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusCreated {
				var res resdto.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
				require.NotEmpty(t, res.AccessToken)
				require.Equal(t, tt.req.Username, res.User.Username)
				require.Equal(t, tt.req.Role, res.User.Role)
				require.NotNil(t, httptest.ExtractCookie(w, cookie.AccessTokenCookieName))
			}
		})
	}
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{name: "valid credentials", email: "ana@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusOK},
		{name: "unknown user", email: "nobody@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusUnauthorized},
		{name: "wrong password", email: "ana@example.com", password: "wrongpassword", expectedStatus: http.StatusUnauthorized},
		{name: "inactive user", email: "inactive@example.com", password: dbtest.TestPassword, expectedStatus: http.StatusUnauthorized},
		{name: "empty email", email: "", password: dbtest.TestPassword, expectedStatus: http.StatusBadRequest},
		{name: "empty password", email: "ana@example.com", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var loginRes resdto.LoginResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &loginRes))
				require.NotEmpty(t, loginRes.AccessToken)
				require.NotEmpty(t, loginRes.RefreshToken)

				var lastLogin any
				err := s.DB.QueryRow(t.Context(), "SELECT last_login FROM users WHERE email = $1", tt.email).Scan(&lastLogin)
				require.NoError(t, err)
				require.NotNil(t, lastLogin, "last_login was not updated")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	tests := []struct {
		name              string
		setupRefreshToken func() string
		expectedStatus    int
	}{
		{
			name: "valid refresh token",
			setupRefreshToken: func() string {
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
					request.LoginRequest{Email: "ana@example.com", Password: dbtest.TestPassword}, "")
				var loginRes resdto.LoginResponse
				require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &loginRes))
				return loginRes.RefreshToken
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:              "garbage refresh token",
			setupRefreshToken: func() string { return "invalid-refresh-token" },
			expectedStatus:    http.StatusUnauthorized,
		},
		{
			name:              "missing refresh token",
			setupRefreshToken: func() string { return "" },
			expectedStatus:    http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := request.RefreshRequest{RefreshToken: tt.setupRefreshToken()}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var refreshRes resdto.TokenResponse
				require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &refreshRes))
				require.NotEmpty(t, refreshRes.AccessToken)
				require.NotEmpty(t, refreshRes.RefreshToken)
			}
		})
	}

	s.Run("access token is not accepted as a refresh token", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "ana@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, request.RefreshRequest{RefreshToken: token}, "")

		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestLogout() {
	s.Run("clears cookies", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "ana@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)

		authtest.LogoutUser(t, s.Router, httptest.ExtractCookies(w))
	})

	s.Run("requires a token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "invalid-token")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestMe() {
	s.Run("returns the profile without secrets", func() {
		t := s.T()
		_, token := authtest.CreateAndLogin(t, s.DB, s.Router, "modesto", string(user.RoleModerator))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		body := w.Body.String()
		require.Contains(t, body, "modesto@example.com")
		require.Contains(t, body, string(user.RoleModerator))
		require.NotContains(t, body, "password")
	})

	s.Run("updates phone and date of birth", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "ana@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, meURL,
			map[string]any{"phone": "+351 912 345 678", "date_of_birth": "2003-05-17"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res resdto.UserResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "+351 912 345 678", res.Phone)
		require.NotNil(t, res.DateOfBirth)
	})

	s.Run("expired token is rejected", func() {
		t := s.T()
		id := dbtest.CreateTestUser(t, s.DB, "expiry", string(user.RoleStudent))
		expired := s.jwtHelper.CreateExpiredToken(t, id, user.RoleStudent)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expired)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("no token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(s.T(), http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("both sessions stay valid", func() {
		t := s.T()

		token1 := authtest.LoginUser(t, s.Router, "sunny_trips@example.com", dbtest.TestPassword)
		token2 := authtest.LoginUser(t, s.Router, "sunny_trips@example.com", dbtest.TestPassword)

		w1 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token1)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token2)

		require.Equal(t, http.StatusOK, w1.Code)
		require.Equal(t, http.StatusOK, w2.Code)
	})
}
