package commands

import (
	"context"
	"log/slog"

	"stayhub/internal/domain/auth"
	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/jwt"
	"stayhub/internal/pkg/password"
	"stayhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.Mark(auth.ErrInvalidCredentials, errs.ErrUnauthenticated)
	ErrUserInactive       = errs.Mark(auth.ErrUserInactive, errs.ErrForbidden)
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.Mark(errs.New("token validation failed"), errs.ErrUnauthenticated)
)

// TokenIssuer is the subset of jwt.Service the auth commands need.
type TokenIssuer interface {
	GenerateTokenPair(userID uuid.UUID, role user.Role) (jwt.TokenPair, error)
	ValidateRefreshToken(tokenString string) (*jwt.Claims, error)
}

type RegisterRequest struct {
	Email           string
	Password        string
	PasswordConfirm string
	FirstName       string
	LastName        string
	PhoneNumber     *string
	Role            string
}

type LoginRequest struct {
	Email    string
	Password string
}

type AuthResult struct {
	User   *user.User
	Tokens jwt.TokenPair
}

type AuthCommands interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
	clock  clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		tokens: tokens,
		clock:  clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	pw, err := user.NewConfirmedPassword(req.Password, req.PasswordConfirm)
	if err != nil {
		return nil, err
	}
	name, err := user.NewName(req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}
	phone, err := user.NewPhone(req.PhoneNumber)
	if err != nil {
		return nil, err
	}
	role, err := user.NewSignupRole(req.Role)
	if err != nil {
		return nil, err
	}

	hash, err := password.HashPassword(pw.Value())
	if err != nil {
		return nil, err
	}

	u := user.NewUser(email, hash, name, phone, role, a.clock.Now())
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Users().FindByEmail(ctx, tx.DB(), email); err == nil {
			return user.ErrEmailAlreadyTaken
		} else if !infra.IsKind(err, infra.KindNotFound) {
			return err
		}

		if _, err := tx.Users().Create(ctx, tx.DB(), u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return user.ErrEmailAlreadyTaken
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	pair, err := a.tokens.GenerateTokenPair(u.ID(), u.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &AuthResult{User: u, Tokens: pair}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	credentials, err := auth.NewCredentials(req.Email, req.Password)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	var found *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, err := tx.Users().FindByEmail(ctx, tx.DB(), credentials.Email())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				// Same error as a password mismatch so emails can't be enumerated
				return ErrInvalidCredentials
			}
			return err
		}
		if err := password.ComparePassword(u.PasswordHash(), credentials.Password()); err != nil {
			return ErrInvalidCredentials
		}
		if !u.IsActive() {
			return ErrUserInactive
		}
		found = u

		if err := tx.Users().UpdateLastLogin(ctx, tx.DB(), u.ID(), a.clock.Now()); err != nil {
			slog.Warn("failed to update last login", "user_id", u.ID(), "error", err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	pair, err := a.tokens.GenerateTokenPair(found.ID(), found.Role())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &AuthResult{User: found, Tokens: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error) {
	claims, err := a.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// The user may have been deactivated or had its role changed since the token was issued
	snap, err := a.uow.CommandReads().UserByID(ctx, claims.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTokenValidation
		}
		return nil, err
	}
	if !snap.IsActive {
		return nil, ErrUserInactive
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	pair, err := a.tokens.GenerateTokenPair(snap.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &pair, nil
}
