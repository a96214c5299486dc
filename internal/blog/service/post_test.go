package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inkwelldev/inkwell/internal/blog/domain"
	"github.com/inkwelldev/inkwell/internal/blog/validate"
	"github.com/inkwelldev/inkwell/pkg/idx"
)

func TestCreatePost(t *testing.T) {
	ctx := context.Background()
	_, _, posts, alice, _ := newTestStack(t)

	t.Run("creates and returns the post with its author", func(t *testing.T) {
		post, err := posts.Create(ctx, alice, "First post", "content long enough")
		require.NoError(t, err)

		require.NotEmpty(t, post.ID)
		require.Equal(t, alice.ID, post.AuthorID)
		require.Equal(t, "alice", post.Author.Username)
		require.False(t, post.CreatedAt.IsZero())
	})

	t.Run("rejects invalid title and content", func(t *testing.T) {
		var fieldErr validate.FieldError

		_, err := posts.Create(ctx, alice, "", "content long enough")
		require.ErrorAs(t, err, &fieldErr)
		require.Equal(t, "title", fieldErr.Field)

		_, err = posts.Create(ctx, alice, strings.Repeat("t", 201), "content long enough")
		require.ErrorAs(t, err, &fieldErr)
		require.Equal(t, "title", fieldErr.Field)

		_, err = posts.Create(ctx, alice, "A title", "too short")
		require.ErrorAs(t, err, &fieldErr)
		require.Equal(t, "content", fieldErr.Field)
	})
}

func TestListPosts(t *testing.T) {
	ctx := context.Background()
	_, _, posts, alice, bob := newTestStack(t)

	var newest string
	for range 3 {
		p, err := posts.Create(ctx, alice, "Alice post", "content long enough")
		require.NoError(t, err)
		newest = p.ID
	}
	_, err := posts.Create(ctx, bob, "Bob post", "content long enough")
	require.NoError(t, err)
	last, err := posts.Create(ctx, bob, "Bob post two", "content long enough")
	require.NoError(t, err)

	t.Run("newest first across authors", func(t *testing.T) {
		page, err := posts.List(ctx, 1, 10)
		require.NoError(t, err)
		require.Equal(t, 5, page.Total)
		require.Equal(t, last.ID, page.Items[0].ID)
	})

	t.Run("rejects bad pagination instead of clamping", func(t *testing.T) {
		var fieldErr validate.FieldError

		_, err := posts.List(ctx, 0, 10)
		require.ErrorAs(t, err, &fieldErr)
		require.Equal(t, "page", fieldErr.Field)

		_, err = posts.List(ctx, 1, 0)
		require.ErrorAs(t, err, &fieldErr)
		require.Equal(t, "per_page", fieldErr.Field)

		_, err = posts.List(ctx, 1, 101)
		require.ErrorAs(t, err, &fieldErr)
		require.Equal(t, "per_page", fieldErr.Field)
	})

	t.Run("by author", func(t *testing.T) {
		page, err := posts.ListByAuthor(ctx, alice.ID, 1, 10)
		require.NoError(t, err)
		require.Equal(t, 3, page.Total)
		require.Equal(t, newest, page.Items[0].ID)
	})

	t.Run("unknown author is not found, not empty", func(t *testing.T) {
		_, err := posts.ListByAuthor(ctx, idx.New().String(), 1, 10)

		var notFound NotFoundError
		require.ErrorAs(t, err, &notFound)
		require.Equal(t, "user", notFound.Kind)
	})
}

func TestUpdatePost(t *testing.T) {
	ctx := context.Background()
	_, _, posts, alice, bob := newTestStack(t)

	strPtr := func(s string) *string { return &s }

	post, err := posts.Create(ctx, alice, "Original", "content long enough")
	require.NoError(t, err)

	admin := asAdmin(bob)

	t.Run("author can update both fields", func(t *testing.T) {
		got, err := posts.Update(ctx, alice, post.ID, PostUpdate{
			Title:   strPtr("Edited"),
			Content: strPtr("rewritten content here"),
		})
		require.NoError(t, err)
		require.Equal(t, "Edited", got.Title)
		require.Equal(t, "rewritten content here", got.Content)
	})

	t.Run("title-only update leaves content untouched", func(t *testing.T) {
		got, err := posts.Update(ctx, alice, post.ID, PostUpdate{Title: strPtr("Retitled")})
		require.NoError(t, err)
		require.Equal(t, "Retitled", got.Title)
		require.Equal(t, "rewritten content here", got.Content)
	})

	t.Run("content-only update leaves title untouched", func(t *testing.T) {
		got, err := posts.Update(ctx, alice, post.ID, PostUpdate{Content: strPtr("rewritten a second time")})
		require.NoError(t, err)
		require.Equal(t, "Retitled", got.Title)
		require.Equal(t, "rewritten a second time", got.Content)
	})

	t.Run("empty update changes nothing", func(t *testing.T) {
		got, err := posts.Update(ctx, alice, post.ID, PostUpdate{})
		require.NoError(t, err)
		require.Equal(t, "Retitled", got.Title)
		require.Equal(t, "rewritten a second time", got.Content)
	})

	t.Run("provided fields are still validated", func(t *testing.T) {
		var fieldErr validate.FieldError

		_, err := posts.Update(ctx, alice, post.ID, PostUpdate{Title: strPtr("")})
		require.ErrorAs(t, err, &fieldErr)
		require.Equal(t, "title", fieldErr.Field)

		_, err = posts.Update(ctx, alice, post.ID, PostUpdate{Content: strPtr("short")})
		require.ErrorAs(t, err, &fieldErr)
		require.Equal(t, "content", fieldErr.Field)
	})

	t.Run("non-author cannot update", func(t *testing.T) {
		_, err := posts.Update(ctx, bob, post.ID, PostUpdate{Title: strPtr("Hijack")})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("admin cannot update someone else's post either", func(t *testing.T) {
		_, err := posts.Update(ctx, admin, post.ID, PostUpdate{Title: strPtr("Moderated")})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("missing post is not found", func(t *testing.T) {
		_, err := posts.Update(ctx, alice, idx.New().String(), PostUpdate{Title: strPtr("Title")})

		var notFound NotFoundError
		require.ErrorAs(t, err, &notFound)
		require.Equal(t, "post", notFound.Kind)
	})
}

func TestDeletePost(t *testing.T) {
	ctx := context.Background()
	_, _, posts, alice, bob := newTestStack(t)

	admin := asAdmin(bob)

	t.Run("author can delete and gets a snapshot back", func(t *testing.T) {
		post, err := posts.Create(ctx, alice, "Doomed", "content long enough")
		require.NoError(t, err)

		snapshot, err := posts.Delete(ctx, alice, post.ID)
		require.NoError(t, err)
		require.Equal(t, "Doomed", snapshot.Title)

		_, err = posts.Get(ctx, post.ID)
		var notFound NotFoundError
		require.ErrorAs(t, err, &notFound)
	})

	t.Run("admin can delete someone else's post", func(t *testing.T) {
		post, err := posts.Create(ctx, alice, "Moderated away", "content long enough")
		require.NoError(t, err)

		snapshot, err := posts.Delete(ctx, admin, post.ID)
		require.NoError(t, err)
		require.Equal(t, post.ID, snapshot.ID)
	})

	t.Run("plain non-author cannot delete", func(t *testing.T) {
		plain := admin
		plain.Role = domain.RoleUser

		post, err := posts.Create(ctx, alice, "Safe", "content long enough")
		require.NoError(t, err)

		_, err = posts.Delete(ctx, plain, post.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})
}

// asAdmin returns a copy of the user carrying the admin role. Ownership
// checks read the role off the actor the middleware resolved, so tests can
// promote a copy without touching the database.
func asAdmin(u domain.User) domain.User {
	u.Role = domain.RoleAdmin
	return u
}
