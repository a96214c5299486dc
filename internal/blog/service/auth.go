package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/inkwelldev/inkwell/internal/blog/domain"
	"github.com/inkwelldev/inkwell/internal/blog/store"
	"github.com/inkwelldev/inkwell/internal/blog/validate"
	"github.com/inkwelldev/inkwell/pkg/cryptox"
	"github.com/inkwelldev/inkwell/pkg/idx"
	"github.com/inkwelldev/inkwell/pkg/jwtx"
	"github.com/inkwelldev/inkwell/pkg/slogx"
)

// dummyHash is a valid bcrypt hash of a random string, compared against when
// the login identifier doesn't exist.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService handles registration, login and the token lifecycle.
type AuthService struct {
	Store  store.Store
	Hasher cryptox.PasswordHasher
	Tokens *jwtx.Tokens
}

// Register creates a new account and logs it straight in, returning the
// created user with a fresh token pair.
//
// Username and email uniqueness is checked up front for friendly errors, and
// again at commit time: a concurrent registration that wins the race shows up
// as a unique violation from the store and is translated to the same
// DuplicateError instead of a server error.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (domain.User, domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	username, err := validate.Username(username)
	if err != nil {
		return domain.User{}, domain.TokenPair{}, err
	}
	email, err = validate.Email(email)
	if err != nil {
		return domain.User{}, domain.TokenPair{}, err
	}
	if err := validate.Password(password); err != nil {
		return domain.User{}, domain.TokenPair{}, err
	}

	if _, err := s.Store.Users().GetUserByUsername(ctx, username); err == nil {
		return domain.User{}, domain.TokenPair{}, DuplicateError{Field: "username", Value: username}
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, domain.TokenPair{}, err
	}
	if _, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
		return domain.User{}, domain.TokenPair{}, DuplicateError{Field: "email", Value: email}
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.User{}, domain.TokenPair{}, err
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return domain.User{}, domain.TokenPair{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		IsActive:     true,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameExists):
			return domain.User{}, domain.TokenPair{}, DuplicateError{Field: "username", Value: username}
		case errors.Is(err, store.ErrEmailExists):
			return domain.User{}, domain.TokenPair{}, DuplicateError{Field: "email", Value: email}
		}
		return domain.User{}, domain.TokenPair{}, err
	}

	created, err := s.Store.Users().GetUserByID(ctx, user.ID)
	if err != nil {
		return domain.User{}, domain.TokenPair{}, err
	}

	pair, err := s.issueTokens(created.ID)
	if err != nil {
		return domain.User{}, domain.TokenPair{}, err
	}

	l.Info("user registered",
		slog.String("user_id", created.ID),
		slog.String("username", created.Username),
	)

	return created, pair, nil
}

// Authenticate verifies an identifier (username or email) and password and
// returns the user with a fresh token pair. Every failure mode, unknown
// identifier, wrong password or deactivated account, comes back as
// ErrInvalidCredentials so callers can't probe which part was wrong.
func (s *AuthService) Authenticate(ctx context.Context, identifier, password string) (domain.User, domain.TokenPair, error) {
	l := slogx.FromContext(ctx)

	identifier = strings.ToLower(strings.TrimSpace(identifier))

	var (
		user domain.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = s.Store.Users().GetUserByEmail(ctx, identifier)
	} else {
		user, err = s.Store.Users().GetUserByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Burn a hash comparison anyway so lookups for unknown and known
			// identifiers take comparable time.
			_ = s.Hasher.Verify(password, dummyHash)
			return domain.User{}, domain.TokenPair{}, ErrInvalidCredentials
		}
		return domain.User{}, domain.TokenPair{}, err
	}

	if err := s.Hasher.Verify(password, user.PasswordHash); err != nil {
		l.Info("login failed", slog.String("user_id", user.ID))
		return domain.User{}, domain.TokenPair{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		l.Info("login rejected for deactivated account", slog.String("user_id", user.ID))
		return domain.User{}, domain.TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.issueTokens(user.ID)
	if err != nil {
		return domain.User{}, domain.TokenPair{}, err
	}

	return user, pair, nil
}

// ChangePassword swaps a user's password after verifying the current one.
// A wrong old password is ErrInvalidCredentials, same as a failed login, so
// a stolen access token alone is not enough to take over the account.
func (s *AuthService) ChangePassword(ctx context.Context, user domain.User, oldPassword, newPassword string) error {
	if err := s.Hasher.Verify(oldPassword, user.PasswordHash); err != nil {
		slogx.FromContext(ctx).Info("password change rejected", slog.String("user_id", user.ID))
		return ErrInvalidCredentials
	}

	if err := validate.Password(newPassword); err != nil {
		return err
	}

	hash, err := s.Hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.Store.Users().UpdatePasswordHash(ctx, user.ID, hash); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NotFoundError{Kind: "user", ID: user.ID}
		}
		return err
	}

	slogx.FromContext(ctx).Info("password changed", slog.String("user_id", user.ID))
	return nil
}

// Refresh exchanges a valid refresh token for a new access token. The
// refresh token itself is not rotated. The user is re-resolved so a
// deactivated or deleted account can't keep minting access tokens.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.Tokens.Verify(refreshToken, jwtx.KindRefresh)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !user.IsActive {
		return "", ErrInvalidCredentials
	}

	return s.Tokens.IssueAccess(user.ID)
}

func (s *AuthService) issueTokens(userID string) (domain.TokenPair, error) {
	access, err := s.Tokens.IssueAccess(userID)
	if err != nil {
		return domain.TokenPair{}, err
	}
	refresh, err := s.Tokens.IssueRefresh(userID)
	if err != nil {
		return domain.TokenPair{}, err
	}

	return domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		TokenType:    "Bearer",
		ExpiresIn:    s.Tokens.AccessTTL,
	}, nil
}
