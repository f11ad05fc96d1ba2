package commands

import (
	"context"
	"log/slog"
	"time"

	"student-travels/internal/domain/user"
	"student-travels/internal/infra"
	"student-travels/internal/pkg/clock"
	"student-travels/internal/pkg/errs"
	"student-travels/internal/pkg/jwt"
	"student-travels/internal/pkg/password"
	"student-travels/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.NewOfKind(errs.ErrUnauthenticated, "invalid credentials")
	ErrUserInactive         = errs.NewOfKind(errs.ErrUnauthenticated, "user inactive")
	ErrTokenValidation      = errs.NewOfKind(errs.ErrUnauthenticated, "token validation failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrRoleNotRegistrable   = errs.Validation("only student and advertiser accounts can be registered")
	ErrEmailTaken           = errs.NewOfKind(errs.ErrDuplicate, "email already registered")
	ErrUsernameTaken        = errs.NewOfKind(errs.ErrDuplicate, "username already taken")
	ErrAuthenticationFailed = errs.NewOfKind(errs.ErrUnauthenticated, "authentication failed")
)

const (
	usersEmailKey    = "users_email_key"
	usersUsernameKey = "users_username_key"
)

type LoginRequest struct {
	Email    string
	Password string
}

type RegisterRequest struct {
	Username    string
	Email       string
	Password    string
	Role        string
	Phone       string
	DateOfBirth *time.Time
}

type LoginResult struct {
	UserID    uuid.UUID
	Role      user.Role
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*LoginResult, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (*LoginResult, error) {
	role, err := user.NewRole(req.Role)
	if err != nil {
		return nil, err
	}
	if !role.IsSelfRegistrable() {
		return nil, ErrRoleNotRegistrable
	}
	username, err := user.NewUsername(req.Username)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	pw, err := user.NewPassword(req.Password)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhone(req.Phone)
	if err != nil {
		return nil, err
	}

	hash, err := password.Hash(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	u := user.NewUser(username, email, hash, role, phone, req.DateOfBirth, a.clock.Now())
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, tx.DB(), u)
	})
	if err != nil {
		switch {
		case infra.IsConstraint(err, usersEmailKey):
			return nil, errs.WithSecondary(ErrEmailTaken, err)
		case infra.IsConstraint(err, usersUsernameKey):
			return nil, errs.WithSecondary(ErrUsernameTaken, err)
		}
		return nil, err
	}

	slog.Info("user registered", "user_id", u.ID(), "role", role)

	pair, err := a.issueTokens(u.ID(), role)
	if err != nil {
		return nil, err
	}
	return &LoginResult{UserID: u.ID(), Role: role, TokenPair: pair}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	credentials, err := user.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, errs.WithSecondary(ErrAuthenticationFailed, err)
	}

	snapshot, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(snapshot.Role)
	if err != nil {
		return nil, errs.WithSecondary(ErrAuthenticationFailed, err)
	}

	pair, err := a.issueTokens(snapshot.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), snapshot.ID)
	})
	if err != nil {
		// login already succeeded
		slog.Warn("failed to update last login", "user_id", snapshot.ID, "error", err.Error())
	}

	return &LoginResult{UserID: snapshot.ID, Role: role, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.WithSecondary(ErrTokenValidation, err)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	snapshot, err := a.uow.CommandReads().UserByID(ctx, claims.UserID)
	if err != nil {
		return nil, shared.MapNotFound(err, shared.ErrUserNotFound)
	}
	if !snapshot.IsActive {
		return nil, ErrUserInactive
	}

	// the stored role wins over the one in the token
	role, err := user.NewRole(snapshot.Role)
	if err != nil {
		return nil, errs.WithSecondary(ErrTokenValidation, err)
	}
	return a.issueTokens(snapshot.ID, role)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.WithSecondary(ErrTokenGeneration, err)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.WithSecondary(ErrTokenGeneration, err)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials user.Credentials) (*shared.UserSnapshot, error) {
	snapshot, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// same answer as a wrong password
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !snapshot.IsActive {
		return nil, ErrUserInactive
	}
	if err := password.Compare(snapshot.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}
	return snapshot, nil
}
