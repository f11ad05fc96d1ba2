package middleware

import (
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"student-travels/internal/domain/authz"
	"student-travels/internal/domain/user"
	"student-travels/internal/handler/httperr"
	"student-travels/internal/pkg/cookie"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errMissingToken     = errs.NewOfKind(errs.ErrUnauthenticated, "access token required")
	errRoleNotPermitted = errs.NewOfKind(errs.ErrForbidden, "insufficient permissions")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxActorKey = "actor"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		SetActor(c, authz.NewActor(userID, role))
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := GetActor(c)
		if !actor.IsAuthenticated() {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, "Access token required", nil)
			return
		}
		if !slices.Contains(roles, actor.Role) {
			httperr.AbortWithError(c, http.StatusForbidden, errRoleNotPermitted, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not
// abort on failure. Public pages render differently for signed-in students.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		userID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		SetActor(c, authz.NewActor(userID, role))
		c.Next()
	}
}

// Cookie first, then the Authorization header.
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func SetActor(c *gin.Context, actor authz.Actor) {
	c.Set(ctxActorKey, actor)
}

// GetActor returns the anonymous actor when the request is unauthenticated.
func GetActor(c *gin.Context) authz.Actor {
	v, exists := c.Get(ctxActorKey)
	if !exists {
		return authz.Anonymous()
	}
	actor, ok := v.(authz.Actor)
	if !ok {
		return authz.Anonymous()
	}
	return actor
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	actor := GetActor(c)
	if !actor.IsAuthenticated() {
		return uuid.Nil, false
	}
	return actor.ID, true
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	actor := GetActor(c)
	if !actor.IsAuthenticated() {
		return "", false
	}
	return actor.Role, true
}
