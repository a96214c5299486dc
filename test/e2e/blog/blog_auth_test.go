package blog_test

import (
	"testing"

	"github.com/inkwelldev/inkwell/pkg/blogsdk"
	"github.com/stretchr/testify/require"
)

// TestRegisterAndLogin covers the full account creation and login flow.
func TestRegisterAndLogin(t *testing.T) {
	baseURL, cleanup := setupBlogContainer(t)
	defer cleanup()

	client := blogsdk.NewClient(baseURL)

	session := registerUser(t, client, "alice")
	require.Equal(t, "alice", session.User().Username)
	require.Equal(t, "alice@example.com", session.User().Email)
	require.Equal(t, "user", session.User().Role)
	require.True(t, session.User().IsActive)

	// Log back in by username.
	byUsername, err := client.Login(t.Context(), "alice", testPassword)
	require.NoError(t, err)
	assertSessionTokens(t, byUsername)

	// And by email, with mixed casing.
	byEmail, err := client.Login(t.Context(), "Alice@Example.COM", testPassword)
	require.NoError(t, err)
	require.Equal(t, session.User().ID, byEmail.User().ID)
}

// TestRegisterNormalizesCasing verifies usernames and emails are stored
// lowercased no matter how they were typed.
func TestRegisterNormalizesCasing(t *testing.T) {
	baseURL, cleanup := setupBlogContainer(t)
	defer cleanup()

	client := blogsdk.NewClient(baseURL)

	session, err := client.Register(t.Context(), "BoB_99", "BoB@Example.com", testPassword)
	require.NoError(t, err)
	require.Equal(t, "bob_99", session.User().Username)
	require.Equal(t, "bob@example.com", session.User().Email)
}

// TestRegisterRejectsDuplicates verifies username and email uniqueness is
// case-insensitive.
func TestRegisterRejectsDuplicates(t *testing.T) {
	baseURL, cleanup := setupBlogContainer(t)
	defer cleanup()

	client := blogsdk.NewClient(baseURL)
	registerUser(t, client, "carol")

	_, err := client.Register(t.Context(), "CAROL", "other@example.com", testPassword)
	assertValidationError(t, err, "carol")

	_, err = client.Register(t.Context(), "carol2", "Carol@Example.com", testPassword)
	assertValidationError(t, err, "carol@example.com")
}

// TestRegisterValidation spot-checks the field rules at the wire level.
func TestRegisterValidation(t *testing.T) {
	baseURL, cleanup := setupBlogContainer(t)
	defer cleanup()

	client := blogsdk.NewClient(baseURL)

	cases := []struct {
		name     string
		username string
		email    string
		password string
		field    string
	}{
		{"short username", "ab", "ab@example.com", testPassword, "username"},
		{"bad characters", "no spaces", "ns@example.com", testPassword, "username"},
		{"bad email", "dave", "not-an-email", testPassword, "email"},
		{"weak password", "dave", "dave@example.com", "alllowercase1!", "password"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := client.Register(t.Context(), tc.username, tc.email, tc.password)
			assertValidationError(t, err, tc.field)
		})
	}
}

// TestLoginFailuresAreGeneric verifies unknown accounts and wrong passwords
// produce the same 401.
func TestLoginFailuresAreGeneric(t *testing.T) {
	baseURL, cleanup := setupBlogContainer(t)
	defer cleanup()

	client := blogsdk.NewClient(baseURL)
	registerUser(t, client, "erin")

	_, err := client.Login(t.Context(), "erin", "WrongPassword1!")
	assertUnauthorized(t, err, "wrong password")
	wrongPass := err.Error()

	_, err = client.Login(t.Context(), "nobody", testPassword)
	assertUnauthorized(t, err, "unknown account")
	require.Equal(t, wrongPass, err.Error(), "both failures should read identically")
}

// TestRefreshFlow verifies a refresh token mints a usable access token and
// that access tokens are rejected in its place.
func TestRefreshFlow(t *testing.T) {
	baseURL, cleanup := setupBlogContainer(t)
	defer cleanup()

	client := blogsdk.NewClient(baseURL)
	session := registerUser(t, client, "frank")

	refreshed, err := client.Refresh(t.Context(), session.RefreshToken())
	require.NoError(t, err)
	require.NotEmpty(t, refreshed.AccessToken)
	require.Equal(t, "Bearer", refreshed.TokenType)
	require.Positive(t, refreshed.ExpiresIn)

	// An access token is the wrong kind for the refresh endpoint.
	_, err = client.Refresh(t.Context(), session.AccessToken())
	assertUnauthorized(t, err, "access token used as refresh token")

	_, err = client.Refresh(t.Context(), "not-a-token")
	assertUnauthorized(t, err, "garbage refresh token")
}
