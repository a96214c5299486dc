package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkwelldev/inkwell/internal/blog/domain"
	"github.com/inkwelldev/inkwell/internal/blog/validate"
	"github.com/inkwelldev/inkwell/pkg/idx"
)

// newTestStack builds the full service trio over one in-memory store with
// two registered users, alice and bob.
func newTestStack(t *testing.T) (auth *AuthService, users *UserService, posts *PostService, alice, bob domain.User) {
	t.Helper()
	ctx := context.Background()

	auth = newTestAuthService(t)
	users = &UserService{Store: auth.Store, Hasher: auth.Hasher}
	posts = &PostService{Store: auth.Store}

	var err error
	alice, _, err = auth.Register(ctx, "alice", "alice@example.com", testPassword)
	require.NoError(t, err)
	bob, _, err = auth.Register(ctx, "bob", "bob@example.com", testPassword)
	require.NoError(t, err)

	return auth, users, posts, alice, bob
}

func TestGetUserByID(t *testing.T) {
	ctx := context.Background()
	_, users, _, alice, _ := newTestStack(t)

	got, err := users.GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", got.Username)

	_, err = users.GetUserByID(ctx, idx.New().String())
	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "user", notFound.Kind)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	auth, users, _, alice, bob := newTestStack(t)

	strPtr := func(s string) *string { return &s }

	t.Run("updates email", func(t *testing.T) {
		got, err := users.UpdateProfile(ctx, alice.ID, ProfileUpdate{Email: strPtr("New@Example.com")})
		require.NoError(t, err)
		require.Equal(t, "new@example.com", got.Email)
	})

	t.Run("updates password and old one stops working", func(t *testing.T) {
		_, err := users.UpdateProfile(ctx, alice.ID, ProfileUpdate{Password: strPtr("N3w!passw0rd")})
		require.NoError(t, err)

		_, _, err = auth.Authenticate(ctx, "alice", testPassword)
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, _, err = auth.Authenticate(ctx, "alice", "N3w!passw0rd")
		require.NoError(t, err)
	})

	t.Run("rejects another user's email", func(t *testing.T) {
		_, err := users.UpdateProfile(ctx, alice.ID, ProfileUpdate{Email: &bob.Email})

		var dup DuplicateError
		require.ErrorAs(t, err, &dup)
		require.Equal(t, "email", dup.Field)
	})

	t.Run("keeping your own email is not a conflict", func(t *testing.T) {
		got, err := users.UpdateProfile(ctx, bob.ID, ProfileUpdate{Email: &bob.Email})
		require.NoError(t, err)
		require.Equal(t, bob.Email, got.Email)
	})

	t.Run("weak password leaves the email untouched", func(t *testing.T) {
		before, err := users.GetUserByID(ctx, bob.ID)
		require.NoError(t, err)

		_, err = users.UpdateProfile(ctx, bob.ID, ProfileUpdate{
			Email:    strPtr("would-change@example.com"),
			Password: strPtr("weak"),
		})
		var fieldErr validate.FieldError
		require.ErrorAs(t, err, &fieldErr)
		require.Equal(t, "password", fieldErr.Field)

		after, err := users.GetUserByID(ctx, bob.ID)
		require.NoError(t, err)
		require.Equal(t, before.Email, after.Email)
	})

	t.Run("empty update is a no-op", func(t *testing.T) {
		got, err := users.UpdateProfile(ctx, bob.ID, ProfileUpdate{})
		require.NoError(t, err)
		require.Equal(t, "bob", got.Username)
	})
}

func TestDeactivate(t *testing.T) {
	ctx := context.Background()
	auth, users, _, alice, _ := newTestStack(t)

	require.NoError(t, users.Deactivate(ctx, alice.ID))

	got, err := users.GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	require.False(t, got.IsActive)

	_, _, err = auth.Authenticate(ctx, "alice", testPassword)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	var notFound NotFoundError
	require.ErrorAs(t, users.Deactivate(ctx, idx.New().String()), &notFound)
}

func TestDeleteUserCascadesPosts(t *testing.T) {
	ctx := context.Background()
	_, users, posts, alice, bob := newTestStack(t)

	for range 3 {
		_, err := posts.Create(ctx, alice, "A post", "content long enough")
		require.NoError(t, err)
	}
	kept, err := posts.Create(ctx, bob, "Bob's post", "content long enough")
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, alice.ID))

	_, err = users.GetUserByID(ctx, alice.ID)
	var notFound NotFoundError
	require.ErrorAs(t, err, &notFound)

	page, err := posts.List(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 1, page.Total, "only bob's post survives")
	require.Equal(t, kept.ID, page.Items[0].ID)

	require.ErrorAs(t, users.Delete(ctx, alice.ID), &notFound)
}
