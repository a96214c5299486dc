package domain

import "time"

// TokenPair is what login and register hand back: a short-lived access token
// and a long-lived refresh token, both HS256 JWTs. The wire shape lives in
// blogsdk.AuthResponse, which converts ExpiresIn to whole seconds.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string // typically "Bearer"
	ExpiresIn    time.Duration
}
