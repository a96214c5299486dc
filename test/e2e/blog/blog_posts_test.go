package blog_test

import (
	"fmt"
	"testing"

	"github.com/inkwelldev/inkwell/pkg/blogsdk"
	"github.com/stretchr/testify/require"
)

const postContent = "This is a post body long enough to clear the minimum length."

// TestPostLifecycle walks a post through create, read, update and delete.
func TestPostLifecycle(t *testing.T) {
	baseURL, cleanup := setupBlogContainer(t)
	defer cleanup()

	client := blogsdk.NewClient(baseURL)
	session := registerUser(t, client, "kim")

	created, err := session.CreatePost(t.Context(), "First post", postContent)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "First post", created.Title)
	require.Equal(t, "kim", created.Author.Username)

	// Anyone can read it.
	fetched, err := client.GetPost(t.Context(), created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, fetched.ID)

	updated, err := session.UpdatePost(t.Context(), created.ID, blogsdk.UpdatePostRequest{
		Title:   strPtr("First post, revised"),
		Content: strPtr(postContent + " Now revised."),
	})
	require.NoError(t, err)
	require.Equal(t, "First post, revised", updated.Title)

	// A partial update touches only the field it names.
	retitled, err := session.UpdatePost(t.Context(), created.ID, blogsdk.UpdatePostRequest{
		Title: strPtr("First post, final"),
	})
	require.NoError(t, err)
	require.Equal(t, "First post, final", retitled.Title)
	require.Equal(t, postContent+" Now revised.", retitled.Content)

	reworded, err := session.UpdatePost(t.Context(), created.ID, blogsdk.UpdatePostRequest{
		Content: strPtr(postContent + " Final wording."),
	})
	require.NoError(t, err)
	require.Equal(t, "First post, final", reworded.Title)
	require.Equal(t, postContent+" Final wording.", reworded.Content)

	snapshot, err := session.DeletePost(t.Context(), created.ID)
	require.NoError(t, err)
	require.Equal(t, "First post, final", snapshot.Title)

	_, err = client.GetPost(t.Context(), created.ID)
	require.True(t, blogsdk.IsNotFound(err), "deleted post should be gone, got: %v", err)
}

// TestPostOwnership verifies one user cannot rewrite or remove another's post.
func TestPostOwnership(t *testing.T) {
	baseURL, cleanup := setupBlogContainer(t)
	defer cleanup()

	client := blogsdk.NewClient(baseURL)
	author := registerUser(t, client, "liam")
	intruder := registerUser(t, client, "mallory")

	post, err := author.CreatePost(t.Context(), "Mine alone", postContent)
	require.NoError(t, err)

	_, err = intruder.UpdatePost(t.Context(), post.ID, blogsdk.UpdatePostRequest{Title: strPtr("Hijacked")})
	assertForbidden(t, err, "update of someone else's post")

	_, err = intruder.DeletePost(t.Context(), post.ID)
	assertForbidden(t, err, "delete of someone else's post")

	// The post is untouched.
	fetched, err := client.GetPost(t.Context(), post.ID)
	require.NoError(t, err)
	require.Equal(t, "Mine alone", fetched.Title)
}

// TestPostListing exercises pagination and the per-author listing.
func TestPostListing(t *testing.T) {
	baseURL, cleanup := setupBlogContainer(t)
	defer cleanup()

	client := blogsdk.NewClient(baseURL)
	nina := registerUser(t, client, "nina")
	omar := registerUser(t, client, "omar")

	for i := 1; i <= 7; i++ {
		_, err := nina.CreatePost(t.Context(), fmt.Sprintf("Nina %d", i), postContent)
		require.NoError(t, err)
	}
	_, err := omar.CreatePost(t.Context(), "Omar 1", postContent)
	require.NoError(t, err)

	// Newest first across all authors.
	page1, err := client.ListPosts(t.Context(), 1, 5)
	require.NoError(t, err)
	require.Equal(t, 8, page1.Total)
	require.Equal(t, 2, page1.Pages)
	require.Len(t, page1.Posts, 5)
	require.Equal(t, "Omar 1", page1.Posts[0].Title)

	page2, err := client.ListPosts(t.Context(), 2, 5)
	require.NoError(t, err)
	require.Len(t, page2.Posts, 3)

	// Per-author view excludes everyone else.
	ninaPosts, err := client.UserPosts(t.Context(), nina.User().ID, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 7, ninaPosts.Total)
	for _, p := range ninaPosts.Posts {
		require.Equal(t, "nina", p.Author.Username)
	}

	// Unknown author is a 404, out-of-range paging a 400.
	_, err = client.UserPosts(t.Context(), "01K0000000000000000000UNKN", 1, 10)
	require.True(t, blogsdk.IsNotFound(err), "unknown author, got: %v", err)

	_, err = client.ListPosts(t.Context(), 1, 101)
	assertValidationError(t, err, "per_page")

	// The SDK never sends page=0, so hit the endpoint raw.
	resp, err := client.HTTPClient.Get(client.BaseURL + "/posts?page=0")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, 400, resp.StatusCode)
}

// TestPostValidation verifies title and content bounds at the wire level.
func TestPostValidation(t *testing.T) {
	baseURL, cleanup := setupBlogContainer(t)
	defer cleanup()

	client := blogsdk.NewClient(baseURL)
	session := registerUser(t, client, "pat")

	_, err := session.CreatePost(t.Context(), "", postContent)
	assertValidationError(t, err, "title")

	_, err = session.CreatePost(t.Context(), "Short body", "too short")
	assertValidationError(t, err, "content")
}
