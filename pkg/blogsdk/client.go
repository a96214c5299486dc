package blogsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the blog API. It covers the unauthenticated surface and
// creates Sessions for the rest.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates an account and returns a logged-in session for it.
func (c *Client) Register(ctx context.Context, username, email, password string) (*Session, error) {
	var auth AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/register", "",
		RegisterRequest{Username: username, Email: email, Password: password},
		http.StatusCreated, &auth)
	if err != nil {
		return nil, err
	}
	return newSession(c, auth), nil
}

// Login authenticates by username or email and returns a session.
func (c *Client) Login(ctx context.Context, identifier, password string) (*Session, error) {
	var auth AuthResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/login", "",
		LoginRequest{Identifier: identifier, Password: password},
		http.StatusOK, &auth)
	if err != nil {
		return nil, err
	}
	return newSession(c, auth), nil
}

// Refresh exchanges a refresh token for a new access token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (RefreshResponse, error) {
	var out RefreshResponse
	err := c.doJSON(ctx, http.MethodPost, "/auth/refresh", "",
		RefreshRequest{RefreshToken: refreshToken},
		http.StatusOK, &out)
	return out, err
}

// ListPosts fetches one page of the public post listing.
func (c *Client) ListPosts(ctx context.Context, page, perPage int) (PostList, error) {
	var out PostList
	err := c.doJSON(ctx, http.MethodGet, listPath("/posts", page, perPage), "", nil,
		http.StatusOK, &out)
	return out, err
}

// GetPost fetches a single post by id.
func (c *Client) GetPost(ctx context.Context, id string) (Post, error) {
	var out Post
	err := c.doJSON(ctx, http.MethodGet, "/posts/"+url.PathEscape(id), "", nil,
		http.StatusOK, &out)
	return out, err
}

// UserPosts fetches one page of a single author's posts.
func (c *Client) UserPosts(ctx context.Context, userID string, page, perPage int) (PostList, error) {
	var out PostList
	path := listPath("/users/"+url.PathEscape(userID)+"/posts", page, perPage)
	err := c.doJSON(ctx, http.MethodGet, path, "", nil, http.StatusOK, &out)
	return out, err
}

// Health reports whether the service considers itself healthy.
func (c *Client) Health(ctx context.Context) (HealthResponse, error) {
	var out HealthResponse
	err := c.doJSON(ctx, http.MethodGet, "/health", "", nil, http.StatusOK, &out)
	return out, err
}

// Info fetches the API info document from the root endpoint.
func (c *Client) Info(ctx context.Context) (APIInfo, error) {
	var out APIInfo
	err := c.doJSON(ctx, http.MethodGet, "/", "", nil, http.StatusOK, &out)
	return out, err
}

func listPath(base string, page, perPage int) string {
	q := url.Values{}
	if page > 0 {
		q.Set("page", fmt.Sprint(page))
	}
	if perPage > 0 {
		q.Set("per_page", fmt.Sprint(perPage))
	}
	if len(q) == 0 {
		return base
	}
	return base + "?" + q.Encode()
}

// doJSON sends an optional JSON body and decodes the envelope's data field
// into target. A non-expected status is returned as an *APIError.
func (c *Client) doJSON(
	ctx context.Context,
	method, path, token string,
	body any,
	expectedStatus int,
	target any,
) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return parseErrorResponse(resp.StatusCode, payload)
	}

	if target == nil {
		return nil
	}

	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, target); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}
