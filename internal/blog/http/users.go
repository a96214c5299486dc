package http

import (
	"encoding/json"
	"net/http"

	"github.com/inkwelldev/inkwell/internal/blog/service"
	"github.com/inkwelldev/inkwell/pkg/blogsdk"
)

type MeHandler struct {
	UserService *service.UserService
}

// HandleGet returns the authenticated user's profile.
//
//	@Summary		Get own profile
//	@Tags			Users
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	blogsdk.UserProfile
//	@Failure		401	{object}	blogsdk.Envelope	"Missing, invalid or expired token"
//	@Router			/users/me [get].
func (h *MeHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, msgAuthRequired)
		return
	}

	respondData(w, http.StatusOK, userProfile(user))
}

// HandlePut updates the authenticated user's email and/or password.
//
//	@Summary		Update own profile
//	@Description	Applies any subset of email and password. Both changes land in one transaction or not at all.
//	@Tags			Users
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		blogsdk.UpdateProfileRequest	true	"Fields to change"
//	@Success		200		{object}	blogsdk.UserProfile
//	@Failure		400		{object}	blogsdk.Envelope	"Validation failure or email already taken"
//	@Failure		401		{object}	blogsdk.Envelope
//	@Router			/users/me [put].
func (h *MeHandler) HandlePut(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, msgAuthRequired)
		return
	}

	var req blogsdk.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, msgBadBody)
		return
	}

	updated, err := h.UserService.UpdateProfile(r.Context(), user.ID, service.ProfileUpdate{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "Profile updated successfully", userProfile(updated))
}

type UserPostsHandler struct {
	PostService *service.PostService
}

// ServeHTTP lists one author's posts publicly, newest first.
//
//	@Summary		List a user's posts
//	@Tags			Users
//	@Produce		json
//	@Param			id			path		string	true	"Author id"
//	@Param			page		query		int		false	"Page number (default 1)"
//	@Param			per_page	query		int		false	"Items per page, 1-100 (default 10)"
//	@Success		200			{object}	blogsdk.PostList
//	@Failure		400			{object}	blogsdk.Envelope	"Pagination out of range"
//	@Failure		404			{object}	blogsdk.Envelope	"Unknown author"
//	@Router			/users/{id}/posts [get].
func (h *UserPostsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page, perPage, err := paginationParams(r)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	result, err := h.PostService.ListByAuthor(r.Context(), r.PathValue("id"), page, perPage)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, postList(result))
}
