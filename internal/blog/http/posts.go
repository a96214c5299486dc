package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/inkwelldev/inkwell/internal/blog/service"
	"github.com/inkwelldev/inkwell/internal/blog/validate"
	"github.com/inkwelldev/inkwell/pkg/blogsdk"
)

// Listing defaults when the query string leaves them out.
const (
	defaultPage    = 1
	defaultPerPage = 10
)

// paginationParams reads page/per_page off the query string. Absent values
// take the defaults; non-integer values are validation failures rather than
// silent fallbacks.
func paginationParams(r *http.Request) (page, perPage int, err error) {
	page, err = queryInt(r, "page", defaultPage)
	if err != nil {
		return 0, 0, validate.FieldError{Field: "page", Msg: "must be an integer"}
	}
	perPage, err = queryInt(r, "per_page", defaultPerPage)
	if err != nil {
		return 0, 0, validate.FieldError{Field: "per_page", Msg: "must be an integer"}
	}
	return page, perPage, nil
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

type PostsHandler struct {
	PostService *service.PostService
}

// HandleList returns one page of all posts, newest first.
//
//	@Summary		List posts
//	@Tags			Posts
//	@Produce		json
//	@Param			page		query		int	false	"Page number (default 1)"
//	@Param			per_page	query		int	false	"Items per page, 1-100 (default 10)"
//	@Success		200			{object}	blogsdk.PostList
//	@Failure		400			{object}	blogsdk.Envelope	"Pagination out of range"
//	@Router			/posts [get].
func (h *PostsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, perPage, err := paginationParams(r)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	result, err := h.PostService.List(r.Context(), page, perPage)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, postList(result))
}

// HandleCreate publishes a new post owned by the authenticated user.
//
//	@Summary		Create a post
//	@Tags			Posts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		blogsdk.PostRequest	true	"Title and content"
//	@Success		201		{object}	blogsdk.Post
//	@Failure		400		{object}	blogsdk.Envelope	"Title or content out of range"
//	@Failure		401		{object}	blogsdk.Envelope
//	@Router			/posts [post].
func (h *PostsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, msgAuthRequired)
		return
	}

	var req blogsdk.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, msgBadBody)
		return
	}

	post, err := h.PostService.Create(r.Context(), user, req.Title, req.Content)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondMessage(w, http.StatusCreated, "Post created successfully", postResponse(post))
}

// HandleGet returns a single post by id.
//
//	@Summary		Get a post
//	@Tags			Posts
//	@Produce		json
//	@Param			id	path		string	true	"Post id"
//	@Success		200	{object}	blogsdk.Post
//	@Failure		404	{object}	blogsdk.Envelope
//	@Router			/posts/{id} [get].
func (h *PostsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	post, err := h.PostService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondData(w, http.StatusOK, postResponse(post))
}

// HandleUpdate rewrites a post. Only provided fields change; author only,
// moderation does not extend to editing other people's posts.
//
//	@Summary		Update a post
//	@Tags			Posts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Post id"
//	@Param			request	body		blogsdk.UpdatePostRequest	true	"Fields to change"
//	@Success		200		{object}	blogsdk.Post
//	@Failure		400		{object}	blogsdk.Envelope
//	@Failure		401		{object}	blogsdk.Envelope
//	@Failure		403		{object}	blogsdk.Envelope	"Not the author"
//	@Failure		404		{object}	blogsdk.Envelope
//	@Router			/posts/{id} [put].
func (h *PostsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, msgAuthRequired)
		return
	}

	var req blogsdk.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, msgBadBody)
		return
	}

	post, err := h.PostService.Update(r.Context(), user, r.PathValue("id"), service.PostUpdate{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "Post updated successfully", postResponse(post))
}

// HandleDelete removes a post for its author or an admin.
//
//	@Summary		Delete a post
//	@Tags			Posts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string			true	"Post id"
//	@Success		200	{object}	blogsdk.Post	"Snapshot of the deleted post"
//	@Failure		401	{object}	blogsdk.Envelope
//	@Failure		403	{object}	blogsdk.Envelope	"Not the author nor an admin"
//	@Failure		404	{object}	blogsdk.Envelope
//	@Router			/posts/{id} [delete].
func (h *PostsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, msgAuthRequired)
		return
	}

	post, err := h.PostService.Delete(r.Context(), user, r.PathValue("id"))
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	respondMessage(w, http.StatusOK, "Post deleted successfully", postResponse(post))
}
