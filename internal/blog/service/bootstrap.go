package service

import (
	"context"
	"log/slog"

	"github.com/inkwelldev/inkwell/internal/blog/domain"
	"github.com/inkwelldev/inkwell/internal/blog/store"
	"github.com/inkwelldev/inkwell/internal/blog/validate"
	"github.com/inkwelldev/inkwell/pkg/cryptox"
	"github.com/inkwelldev/inkwell/pkg/idx"
	"github.com/inkwelldev/inkwell/pkg/slogx"
)

// BootstrapService seeds the very first admin account on an empty database.
// Registration only ever mints plain users, so without a seed there is no
// way to get moderation powers on a fresh deployment.
type BootstrapService struct {
	Store  store.Store
	Hasher cryptox.PasswordHasher
}

// SeedAdmin creates an admin account if and only if no users exist yet.
// It reports whether an account was created; a non-empty store is a no-op,
// not an error, so restarts are safe.
func (s *BootstrapService) SeedAdmin(ctx context.Context, username, email, password string) (domain.User, bool, error) {
	l := slogx.FromContext(ctx)

	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		return domain.User{}, false, err
	}
	if !empty {
		l.Debug("admin seed skipped, users already exist")
		return domain.User{}, false, nil
	}

	username, err = validate.Username(username)
	if err != nil {
		return domain.User{}, false, err
	}
	email, err = validate.Email(email)
	if err != nil {
		return domain.User{}, false, err
	}
	if err := validate.Password(password); err != nil {
		return domain.User{}, false, err
	}

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return domain.User{}, false, err
	}

	admin := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		IsActive:     true,
	}
	if err := s.Store.Users().CreateUser(ctx, admin); err != nil {
		return domain.User{}, false, err
	}

	created, err := s.Store.Users().GetUserByID(ctx, admin.ID)
	if err != nil {
		return domain.User{}, false, err
	}

	l.Info("admin account seeded",
		slog.String("user_id", created.ID),
		slog.String("username", created.Username),
	)
	return created, true, nil
}
