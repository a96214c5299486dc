package http

import (
	"net/http"

	"github.com/inkwelldev/inkwell/internal/blog/store"
	"github.com/inkwelldev/inkwell/pkg/blogsdk"
	"github.com/inkwelldev/inkwell/pkg/httpx"
)

// InfoHandler godoc
//
//	@Summary		API info
//	@Description	Service name, version and a map of the available endpoints.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	blogsdk.APIInfo
//	@Router			/ [get].
func InfoHandler(version string) http.HandlerFunc {
	info := blogsdk.APIInfo{
		Name:    "Inkwell Blog API",
		Version: version,
		Endpoints: map[string]string{
			"register":   "POST /auth/register",
			"login":      "POST /auth/login",
			"refresh":    "POST /auth/refresh",
			"me":         "GET|PUT /users/me",
			"user_posts": "GET /users/{id}/posts",
			"posts":      "GET|POST /posts",
			"post":       "GET|PUT|DELETE /posts/{id}",
			"health":     "GET /health",
			"docs":       "GET /swagger/index.html",
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		respondData(w, http.StatusOK, info)
	}
}

// HealthHandler godoc
//
//	@Summary		Health check
//	@Description	Pings the database and reports healthy or unhealthy.
//	@Tags			System
//	@Produce		json
//	@Success		200	{object}	blogsdk.HealthResponse
//	@Failure		503	{object}	blogsdk.HealthResponse	"Database unreachable"
//	@Router			/health [get].
func HealthHandler(st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := st.Ping(r.Context()); err != nil {
			httpx.WriteJSON(w, http.StatusServiceUnavailable, envelope{
				Success: false,
				Data:    blogsdk.HealthResponse{Status: "unhealthy"},
				Error:   "database unreachable",
			})
			return
		}

		respondData(w, http.StatusOK, blogsdk.HealthResponse{Status: "healthy"})
	}
}
