package http

import (
	"errors"
	"net/http"

	"github.com/inkwelldev/inkwell/internal/blog/domain"
	"github.com/inkwelldev/inkwell/internal/blog/service"
	"github.com/inkwelldev/inkwell/internal/blog/validate"
	"github.com/inkwelldev/inkwell/pkg/blogsdk"
	"github.com/inkwelldev/inkwell/pkg/httpx"
	"github.com/inkwelldev/inkwell/pkg/slogx"
)

// Stable client-facing messages. Authentication failures are deliberately
// uniform so a caller can't tell a bad token from a deactivated account.
const (
	msgAuthRequired = "Authentication required"
	msgBadLogin     = "Invalid credentials"
	msgForbidden    = "You do not have permission to perform this action"
	msgServerError  = "Internal server error"
	msgBadBody      = "Request body must be valid JSON"
)

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondData(w http.ResponseWriter, code int, data any) {
	httpx.WriteJSON(w, code, envelope{Success: true, Data: data})
}

func respondMessage(w http.ResponseWriter, code int, message string, data any) {
	httpx.WriteJSON(w, code, envelope{Success: true, Message: message, Data: data})
}

func respondError(w http.ResponseWriter, code int, message string) {
	httpx.WriteJSON(w, code, envelope{Success: false, Error: message})
}

// respondServiceError maps a service error onto exactly one status code.
// Anything unrecognised is an infrastructure failure: logged server-side,
// generic 500 to the client.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		fieldErr validate.FieldError
		dupErr   service.DuplicateError
		notFound service.NotFoundError
	)

	switch {
	case errors.As(err, &fieldErr):
		respondError(w, http.StatusBadRequest, fieldErr.Error())
	case errors.As(err, &dupErr):
		respondError(w, http.StatusBadRequest, dupErr.Error())
	case errors.As(err, &notFound):
		respondError(w, http.StatusNotFound, notFound.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, msgBadLogin)
	case errors.Is(err, service.ErrForbidden):
		respondError(w, http.StatusForbidden, msgForbidden)
	default:
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		respondError(w, http.StatusInternalServerError, msgServerError)
	}
}

// Wire-format builders shared by the handlers.

func userProfile(u domain.User) blogsdk.UserProfile {
	return blogsdk.UserProfile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func postResponse(p domain.Post) blogsdk.Post {
	return blogsdk.Post{
		ID:      p.ID,
		Title:   p.Title,
		Content: p.Content,
		Author: blogsdk.PostAuthor{
			ID:       p.Author.ID,
			Username: p.Author.Username,
			Role:     p.Author.Role,
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func postList(page domain.PostPage) blogsdk.PostList {
	posts := make([]blogsdk.Post, 0, len(page.Items))
	for _, p := range page.Items {
		posts = append(posts, postResponse(p))
	}
	return blogsdk.PostList{
		Posts:   posts,
		Total:   page.Total,
		Page:    page.Page,
		PerPage: page.PerPage,
		Pages:   page.Pages(),
	}
}
