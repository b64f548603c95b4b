package commands

import (
	"context"
	"log/slog"

	"mysterybox-storefront/internal/domain/user"
	"mysterybox-storefront/internal/infra"
	"mysterybox-storefront/internal/pkg/errs"
	"mysterybox-storefront/internal/pkg/jwt"
	"mysterybox-storefront/internal/pkg/password"
	"mysterybox-storefront/internal/usecase/queries"
	"mysterybox-storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errs.New("user not found")
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrUserInactive         = errs.New("user inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
	ErrTokenValidation      = errs.New("token validation failed")
	ErrUserAlreadyExists    = errs.New("user already exists")
	ErrInvalidUser          = errs.New("invalid user")
)

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
	Login(ctx context.Context, email, pass string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	// CreateUser provisions panel accounts from the CLI.
	CreateUser(ctx context.Context, email, pass, role string) (uuid.UUID, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService TokenService
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService TokenService) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pass string) (*LoginResult, error) {
	addr, err := user.NewEmail(email)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}
	if pass == "" {
		return nil, ErrAuthenticationFailed
	}

	userView, err := a.validateUser(ctx, addr.Value(), pass)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(userView.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	pair, err := a.issue(userView.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if updateErr := tx.Users().UpdateLastLogin(ctx, tx.DB(), userView.ID); updateErr != nil {
			slog.Warn("failed to update last login", "user_id", userView.ID, "error", updateErr.Error())
		}
		return nil
	})
	if err != nil {
		// Login already succeeded; only the last_login stamp is lost.
		slog.Warn("transaction failed during login", "user_id", userView.ID, "error", err.Error())
	}

	return &LoginResult{
		UserID:    userView.ID,
		Role:      role,
		TokenPair: pair,
	}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	userView, err := a.readStore.FindByID(ctx, claims.UserID)
	if err != nil || userView == nil {
		return nil, ErrUserNotFound
	}
	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	// Role comes from storage so a demotion takes effect on the next refresh.
	role, err := user.NewRole(userView.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	return a.issue(claims.UserID, role)
}

func (a *authCommandsImpl) CreateUser(ctx context.Context, email, pass, role string) (uuid.UUID, error) {
	addr, err := user.NewEmail(email)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidUser)
	}
	pw, err := user.NewPassword(pass)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidUser)
	}
	r, err := user.NewRole(role)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidUser)
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return uuid.Nil, err
	}

	var id uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var createErr error
		id, createErr = tx.Users().Create(ctx, tx.DB(), user.NewUser(addr, hash, r))
		return createErr
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrUserAlreadyExists
		}
		return uuid.Nil, err
	}

	slog.Info("user created", "user_id", id, "role", r.String())
	return id, nil
}

func (a *authCommandsImpl) issue(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, email, pass string) (*queries.AuthorizedUserView, error) {
	userView, hashedPassword, err := a.readStore.FindByEmail(ctx, email)
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if userView == nil {
		return nil, ErrUserNotFound
	}

	if !userView.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(hashedPassword, pass); err != nil {
		return nil, ErrInvalidCredentials
	}

	return userView, nil
}
