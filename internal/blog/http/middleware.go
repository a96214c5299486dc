package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/inkwelldev/inkwell/internal/blog/domain"
	"github.com/inkwelldev/inkwell/internal/blog/store"
	"github.com/inkwelldev/inkwell/pkg/httpx"
	"github.com/inkwelldev/inkwell/pkg/jwtx"
	"github.com/inkwelldev/inkwell/pkg/slogx"
)

type ctxKey string

const ctxKeyUser ctxKey = "auth_user"

// userFromContext returns the user the auth middleware resolved for this
// request.
func userFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(ctxKeyUser).(domain.User)
	return u, ok
}

var errNoUser = errors.New("no resolvable user on request")

// resolveUser turns a bearer access token into the live user record.
//
// The token alone is not enough: the account is re-resolved on every request
// so a deleted or deactivated user is locked out the moment the flag flips,
// not when their token expires.
func resolveUser(r *http.Request, verifier jwtx.Verifier, st store.Store) (domain.User, error) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	raw, ok := bearerToken(r)
	if !ok {
		return domain.User{}, errNoUser
	}

	claims, err := verifier.Verify(raw, jwtx.KindAccess)
	if err != nil {
		log.Warn("token rejected", "err", err)
		return domain.User{}, errNoUser
	}

	user, err := st.Users().GetUserByID(ctx, claims.Subject)
	if err != nil {
		log.Warn("token subject not resolvable", "user_id", claims.Subject, "err", err)
		return domain.User{}, errNoUser
	}

	if !user.IsActive {
		log.Info("request from deactivated account", "user_id", user.ID)
		return domain.User{}, errNoUser
	}

	return user, nil
}

func withUser(r *http.Request, user domain.User) *http.Request {
	ctx := context.WithValue(r.Context(), ctxKeyUser, user)
	ctx = httpx.ContextWithUserID(ctx, user.ID)
	return r.WithContext(ctx)
}

// requireAuth authenticates the request and loads the acting user into the
// context. Every failure gets the same generic 401, so callers can't tell a
// missing token from a bad signature or a deactivated account.
func requireAuth(verifier jwtx.Verifier, st store.Store) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := resolveUser(r, verifier, st)
			if err != nil {
				respondError(w, http.StatusUnauthorized, msgAuthRequired)
				return
			}

			next.ServeHTTP(w, withUser(r, user))
		})
	}
}

// requireAdmin authenticates like requireAuth and then checks the admin
// role. An authenticated non-admin gets a 403, distinct from the 401 an
// unauthenticated caller sees.
func requireAdmin(verifier jwtx.Verifier, st store.Store) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := resolveUser(r, verifier, st)
			if err != nil {
				respondError(w, http.StatusUnauthorized, msgAuthRequired)
				return
			}
			if !user.IsAdmin() {
				respondError(w, http.StatusForbidden, msgForbidden)
				return
			}

			next.ServeHTTP(w, withUser(r, user))
		})
	}
}

// optionalAuth attaches the acting user when a valid token is presented and
// proceeds anonymously otherwise. Public endpoints use it so an
// authenticated reader still gets identity-keyed rate limiting and logging
// without auth being mandatory.
func optionalAuth(verifier jwtx.Verifier, st store.Store) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user, err := resolveUser(r, verifier, st); err == nil {
				r = withUser(r, user)
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
	return token, token != ""
}
