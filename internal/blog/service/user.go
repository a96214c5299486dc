package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/inkwelldev/inkwell/internal/blog/domain"
	"github.com/inkwelldev/inkwell/internal/blog/store"
	"github.com/inkwelldev/inkwell/internal/blog/validate"
	"github.com/inkwelldev/inkwell/pkg/cryptox"
	"github.com/inkwelldev/inkwell/pkg/slogx"
)

// UserService covers profile reads and updates plus account lifecycle.
type UserService struct {
	Store  store.Store
	Hasher cryptox.PasswordHasher
}

// ProfileUpdate carries the optional fields of a profile update. Nil means
// leave the field alone.
type ProfileUpdate struct {
	Email    *string
	Password *string
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	user, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, NotFoundError{Kind: "user", ID: userID}
		}
		return domain.User{}, err
	}
	return user, nil
}

// UpdateProfile applies an email and/or password change and returns the
// updated user. A new email is checked for uniqueness up front, and a losing
// race at commit comes back as the same DuplicateError.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (domain.User, error) {
	l := slogx.FromContext(ctx)

	if _, err := s.GetUserByID(ctx, userID); err != nil {
		return domain.User{}, err
	}

	// Validate and hash everything before touching the store so a bad
	// password can't leave a half-applied update behind.
	var email, hash string

	if update.Email != nil {
		var err error
		email, err = validate.Email(*update.Email)
		if err != nil {
			return domain.User{}, err
		}

		if existing, err := s.Store.Users().GetUserByEmail(ctx, email); err == nil {
			if existing.ID != userID {
				return domain.User{}, DuplicateError{Field: "email", Value: email}
			}
		} else if !errors.Is(err, store.ErrNotFound) {
			return domain.User{}, err
		}
	}

	if update.Password != nil {
		if err := validate.Password(*update.Password); err != nil {
			return domain.User{}, err
		}

		var err error
		hash, err = s.Hasher.Hash(*update.Password)
		if err != nil {
			return domain.User{}, err
		}
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if update.Email != nil {
			if err := tx.Users().UpdateEmail(ctx, userID, email); err != nil {
				return err
			}
		}
		if update.Password != nil {
			if err := tx.Users().UpdatePasswordHash(ctx, userID, hash); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return domain.User{}, DuplicateError{Field: "email", Value: email}
		}
		return domain.User{}, err
	}

	l.Info("profile updated", slog.String("user_id", userID))

	return s.GetUserByID(ctx, userID)
}

// Deactivate flips is_active off. Outstanding tokens stay valid as
// signatures but every protected request re-checks the flag, so the account
// is locked out from the next request on.
func (s *UserService) Deactivate(ctx context.Context, userID string) error {
	if err := s.Store.Users().SetActive(ctx, userID, false); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NotFoundError{Kind: "user", ID: userID}
		}
		return err
	}

	slogx.FromContext(ctx).Info("user deactivated", slog.String("user_id", userID))
	return nil
}

// Delete removes the account and all of its posts in one transaction, so a
// failure partway leaves both intact.
func (s *UserService) Delete(ctx context.Context, userID string) error {
	l := slogx.FromContext(ctx)

	var deletedPosts int
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.Posts().DeletePostsByAuthor(ctx, userID)
		if err != nil {
			return err
		}
		deletedPosts = n

		return tx.Users().DeleteUser(ctx, userID)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return NotFoundError{Kind: "user", ID: userID}
		}
		return err
	}

	l.Info("user deleted",
		slog.String("user_id", userID),
		slog.Int("posts_removed", deletedPosts),
	)
	return nil
}
