package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/inkwelldev/inkwell/internal/blog/domain"
	"github.com/inkwelldev/inkwell/internal/blog/service"
	"github.com/inkwelldev/inkwell/pkg/blogsdk"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles account registration.
//
//	@Summary		Register a new account
//	@Description	Creates a user account and returns the profile with a fresh token pair. Usernames and emails are stored lowercased and must be unique.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		blogsdk.RegisterRequest	true	"Account details"
//	@Success		201		{object}	blogsdk.AuthResponse	"Account created and logged in"
//	@Failure		400		{object}	blogsdk.Envelope		"Validation failure or duplicate username/email"
//	@Failure		429		{object}	blogsdk.Envelope		"Rate limited"
//	@Router			/auth/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req blogsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, msgBadBody)
		return
	}

	user, pair, err := h.AuthService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondMessage(w, http.StatusCreated, "User registered successfully", authResponse(user, pair))
}

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles login by username or email.
//
//	@Summary		Log in
//	@Description	Authenticates by username or email plus password. All failures return the same generic 401.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		blogsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	blogsdk.AuthResponse	"Logged in"
//	@Failure		401		{object}	blogsdk.Envelope		"Invalid credentials"
//	@Failure		429		{object}	blogsdk.Envelope		"Rate limited"
//	@Router			/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req blogsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, msgBadBody)
		return
	}

	user, pair, err := h.AuthService.Authenticate(r.Context(), req.Identifier, req.Password)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "Login successful", authResponse(user, pair))
}

type RefreshHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP exchanges a refresh token for a new access token.
//
//	@Summary		Refresh the access token
//	@Description	Verifies the refresh token, re-checks the account is active, and mints a new access token. The refresh token is not rotated.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		blogsdk.RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	blogsdk.RefreshResponse	"New access token"
//	@Failure		401		{object}	blogsdk.Envelope		"Invalid, expired or wrong-kind token"
//	@Router			/auth/refresh [post].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req blogsdk.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, msgBadBody)
		return
	}

	access, err := h.AuthService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, blogsdk.RefreshResponse{
		AccessToken: access,
		TokenType:   "Bearer",
		ExpiresIn:   int(h.AuthService.Tokens.AccessTTL / time.Second),
	})
}

func authResponse(user domain.User, pair domain.TokenPair) blogsdk.AuthResponse {
	return blogsdk.AuthResponse{
		User:         userProfile(user),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    pair.TokenType,
		ExpiresIn:    int(pair.ExpiresIn / time.Second),
	}
}
