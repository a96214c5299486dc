// Package httpx holds the HTTP plumbing shared by every route: middleware
// composition, JSON responses, CORS and rate limiting.
package httpx

import "net/http"

// Middleware wraps an http.Handler with additional behaviour.
type Middleware func(http.Handler) http.Handler

// Chain composes middlewares around h. The first middleware listed becomes
// the outermost layer, so it sees the request first:
//
//	Chain(h, logging, authn, ratelimit)
//
// runs logging, then authn, then ratelimit, then h.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
