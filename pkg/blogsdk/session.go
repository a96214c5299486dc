package blogsdk

import (
	"context"
	"net/http"
	"net/url"
	"sync"
	"time"
)

// refreshBuffer is how long before expiry a session refreshes its access
// token, so a token never expires mid-request.
const refreshBuffer = 30 * time.Second

// Session is an authenticated client bound to one account. Safe for
// concurrent use.
type Session struct {
	client *Client

	mu           sync.Mutex
	user         UserProfile
	accessToken  string
	refreshToken string
	expiresAt    time.Time
}

func newSession(c *Client, auth AuthResponse) *Session {
	return &Session{
		client:       c,
		user:         auth.User,
		accessToken:  auth.AccessToken,
		refreshToken: auth.RefreshToken,
		expiresAt:    time.Now().Add(time.Duration(auth.ExpiresIn) * time.Second),
	}
}

// User returns the profile captured when the session was created.
func (s *Session) User() UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// AccessToken returns the current raw access token without refreshing it.
// Intended for tests that need to tamper with or inspect the token.
func (s *Session) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessToken
}

// RefreshToken returns the session's refresh token.
func (s *Session) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshToken
}

// token returns a valid access token, refreshing first when the current one
// is within refreshBuffer of expiry.
func (s *Session) token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if time.Until(s.expiresAt) > refreshBuffer {
		return s.accessToken, nil
	}

	refreshed, err := s.client.Refresh(ctx, s.refreshToken)
	if err != nil {
		return "", err
	}

	s.accessToken = refreshed.AccessToken
	s.expiresAt = time.Now().Add(time.Duration(refreshed.ExpiresIn) * time.Second)
	return s.accessToken, nil
}

// Me fetches the current profile.
func (s *Session) Me(ctx context.Context) (UserProfile, error) {
	var out UserProfile
	token, err := s.token(ctx)
	if err != nil {
		return out, err
	}
	err = s.client.doJSON(ctx, http.MethodGet, "/users/me", token, nil, http.StatusOK, &out)
	return out, err
}

// UpdateProfile changes the account's email and/or password.
func (s *Session) UpdateProfile(ctx context.Context, update UpdateProfileRequest) (UserProfile, error) {
	var out UserProfile
	token, err := s.token(ctx)
	if err != nil {
		return out, err
	}
	err = s.client.doJSON(ctx, http.MethodPut, "/users/me", token, update, http.StatusOK, &out)
	return out, err
}

// CreatePost publishes a new post owned by this session's user.
func (s *Session) CreatePost(ctx context.Context, title, content string) (Post, error) {
	var out Post
	token, err := s.token(ctx)
	if err != nil {
		return out, err
	}
	err = s.client.doJSON(ctx, http.MethodPost, "/posts", token,
		PostRequest{Title: title, Content: content}, http.StatusCreated, &out)
	return out, err
}

// UpdatePost rewrites a post this session's user owns. Nil fields in the
// update are left as they were.
func (s *Session) UpdatePost(ctx context.Context, id string, update UpdatePostRequest) (Post, error) {
	var out Post
	token, err := s.token(ctx)
	if err != nil {
		return out, err
	}
	err = s.client.doJSON(ctx, http.MethodPut, "/posts/"+url.PathEscape(id), token,
		update, http.StatusOK, &out)
	return out, err
}

// DeletePost removes a post, returning a snapshot of what was deleted.
func (s *Session) DeletePost(ctx context.Context, id string) (Post, error) {
	var out Post
	token, err := s.token(ctx)
	if err != nil {
		return out, err
	}
	err = s.client.doJSON(ctx, http.MethodDelete, "/posts/"+url.PathEscape(id), token,
		nil, http.StatusOK, &out)
	return out, err
}
