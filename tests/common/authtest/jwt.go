//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"student-travels/internal/domain/user"
	"student-travels/internal/pkg/config"
	"student-travels/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens signed with the same secret the app under test uses,
// so suites can act as any role without going through /login.
type JWTHelper struct {
	service *jwt.Service
	expired *jwt.Service
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{
		service: jwt.NewService(cfg.Secret, cfg.AccessDuration, cfg.RefreshDuration),
		// a negative lifetime puts exp in the past, beyond any parser leeway
		expired: jwt.NewService(cfg.Secret, -time.Minute, -time.Minute),
	}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateRefreshToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.service.GenerateRefreshToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, err := h.expired.GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}
