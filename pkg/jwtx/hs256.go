// Package jwtx issues and validates the signed, self-contained tokens that
// carry an authenticated user id between requests. Tokens are HS256-signed
// with a single server-held secret: validation needs no store round-trip,
// and invalidation happens only through expiry or deactivating the user.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformed    = errors.New("jwtx: malformed token")
	ErrInvalidSig   = errors.New("jwtx: invalid signature")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrKindMismatch = errors.New("jwtx: token kind mismatch")
	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrNoSecret     = errors.New("jwtx: signing secret must not be empty")
)

// Verifier validates a token of the expected kind and gives you back the
// claims if it's legit. Satisfied by *Tokens; the seam exists so middleware
// tests can substitute their own.
type Verifier interface {
	Verify(token, expectedKind string) (Claims, error)
}

// Tokens signs and verifies access/refresh token pairs with a shared HS256
// secret. Issue and Verify are pure CPU-bound work and safe for concurrent
// use without locks.
type Tokens struct {
	secret     []byte
	issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// New builds a Tokens instance. The secret must be non-empty; TTLs of zero
// fall back to the package defaults.
func New(secret, issuer string, accessTTL, refreshTTL time.Duration) (*Tokens, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	if accessTTL <= 0 {
		accessTTL = DefaultAccessTokenTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = DefaultRefreshTokenTTL
	}

	return &Tokens{
		secret:     []byte(secret),
		issuer:     issuer,
		AccessTTL:  accessTTL,
		RefreshTTL: refreshTTL,
	}, nil
}

// IssueAccess mints a short-lived access token for the given user id.
func (t *Tokens) IssueAccess(userID string) (string, error) {
	return t.sign(NewClaims(userID, KindAccess, t.issuer, t.AccessTTL, time.Now().UTC()))
}

// IssueRefresh mints a long-lived refresh token for the given user id.
func (t *Tokens) IssueRefresh(userID string) (string, error) {
	return t.sign(NewClaims(userID, KindRefresh, t.issuer, t.RefreshTTL, time.Now().UTC()))
}

func (t *Tokens) sign(claims Claims) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify parses and validates a raw token string. It checks the signature,
// expiry window, issuer and kind discriminator, returning the claims on
// success. Tampering with any part of the token fails the signature check.
func (t *Tokens) Verify(raw, expectedKind string) (Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(raw, &claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrMalformed
		}
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return Claims{}, ErrNotYetValid
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		default:
			return Claims{}, ErrMalformed
		}
	}

	if err := claims.ValidateIssuer(t.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateKind(expectedKind); err != nil {
		return Claims{}, err
	}

	return claims, nil
}
