package http

import (
	"log/slog"
	"net/http"

	"github.com/inkwelldev/inkwell/internal/blog/service"
	"github.com/inkwelldev/inkwell/internal/blog/store"
	"github.com/inkwelldev/inkwell/pkg/httpx"
	"github.com/inkwelldev/inkwell/pkg/jwtx"
	"github.com/inkwelldev/inkwell/pkg/slogx"

	_ "github.com/inkwelldev/inkwell/api/blog" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier      jwtx.Verifier
	buildVersion  string
	logger        *slog.Logger
	rateLimiting  bool
	allowedOrigin []string

	store       store.Store
	AuthService *service.AuthService
	UserService *service.UserService
	PostService *service.PostService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
	corsOrigins []string,
	rateLimiting bool,
) *Router {
	r := &Router{
		Mux:           http.NewServeMux(),
		verifier:      verifier,
		buildVersion:  buildVersion,
		store:         st,
		logger:        logger,
		rateLimiting:  rateLimiting,
		allowedOrigin: corsOrigins,
	}

	// Global middleware chain; request logging first so every request gets a
	// req_id-scoped logger, CORS before any handler can reject.
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORSMiddleware(r.allowedOrigin),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerPosts()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Inkwell Blog API
//	@version		0.1.0
//	@description	A blog platform backend: user accounts with JWT auth and ownership-controlled posts.
//	@description
//	@description				Access and refresh tokens are HS256 JWTs distinguished by a "kind" claim.
//	@description				Every response uses the envelope {"success": bool, "data"?, "message"?, "error"?}.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

// limit gates a rate limiting middleware behind the config flag, so tests
// and local dev can switch limiting off without touching the route table.
func (r *Router) limit(mw httpx.Middleware) httpx.Middleware {
	if !r.rateLimiting {
		return func(h http.Handler) http.Handler { return h }
	}
	return mw
}

func (r *Router) registerAuth() {
	// Credential endpoints get the strict per-IP limit against brute force.
	r.Mux.Handle("POST /auth/register",
		httpx.Chain(&RegisterHandler{AuthService: r.AuthService},
			r.limit(httpx.RateLimitByIP(httpx.StrictLimit)),
		))

	r.Mux.Handle("POST /auth/login",
		httpx.Chain(&LoginHandler{AuthService: r.AuthService},
			r.limit(httpx.RateLimitByIP(httpx.StrictLimit)),
		))

	r.Mux.Handle("POST /auth/refresh",
		httpx.Chain(&RefreshHandler{AuthService: r.AuthService},
			r.limit(httpx.RateLimitByIP(httpx.ModerateLimit)),
		))
}

func (r *Router) registerUsers() {
	me := &MeHandler{UserService: r.UserService}
	auth := requireAuth(r.verifier, r.store)

	// Auth runs before the limiter so per-user buckets key off the resolved
	// user id rather than falling back to the IP.
	r.Mux.Handle("GET /users/me",
		httpx.Chain(http.HandlerFunc(me.HandleGet),
			auth,
			r.limit(httpx.RateLimitByUser(httpx.LenientLimit)),
		))

	r.Mux.Handle("PUT /users/me",
		httpx.Chain(http.HandlerFunc(me.HandlePut),
			auth,
			r.limit(httpx.RateLimitByUser(httpx.ModerateLimit)),
		))

	// Public reads take best-effort identity: a logged-in reader is limited
	// by user id, everyone else by IP.
	r.Mux.Handle("GET /users/{id}/posts",
		httpx.Chain(&UserPostsHandler{PostService: r.PostService},
			optionalAuth(r.verifier, r.store),
			r.limit(httpx.RateLimitByUser(httpx.PublicLimit)),
		))
}

func (r *Router) registerPosts() {
	posts := &PostsHandler{PostService: r.PostService}
	auth := requireAuth(r.verifier, r.store)
	optional := optionalAuth(r.verifier, r.store)

	r.Mux.Handle("GET /posts",
		httpx.Chain(http.HandlerFunc(posts.HandleList),
			optional,
			r.limit(httpx.RateLimitByUser(httpx.PublicLimit)),
		))

	r.Mux.Handle("GET /posts/{id}",
		httpx.Chain(http.HandlerFunc(posts.HandleGet),
			optional,
			r.limit(httpx.RateLimitByUser(httpx.PublicLimit)),
		))

	r.Mux.Handle("POST /posts",
		httpx.Chain(http.HandlerFunc(posts.HandleCreate),
			auth,
			r.limit(httpx.RateLimitByUser(httpx.ModerateLimit)),
		))

	r.Mux.Handle("PUT /posts/{id}",
		httpx.Chain(http.HandlerFunc(posts.HandleUpdate),
			auth,
			r.limit(httpx.RateLimitByUser(httpx.ModerateLimit)),
		))

	r.Mux.Handle("DELETE /posts/{id}",
		httpx.Chain(http.HandlerFunc(posts.HandleDelete),
			auth,
			r.limit(httpx.RateLimitByUser(httpx.ModerateLimit)),
		))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /{$}",
		httpx.Chain(InfoHandler(r.buildVersion),
			r.limit(httpx.RateLimitByIP(httpx.PublicLimit)),
		))

	r.Mux.Handle("GET /health",
		httpx.Chain(HealthHandler(r.store),
			r.limit(httpx.RateLimitByIP(httpx.LenientLimit)),
		))
}
