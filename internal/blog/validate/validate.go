// Package validate holds the field validators for user and post input.
// Each validator reports a FieldError naming the offending field so handlers
// can surface per-field messages.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	UsernameMinLen = 3
	UsernameMaxLen = 50
	PasswordMinLen = 8
	TitleMaxLen    = 200
	ContentMinLen  = 10
	PerPageMax     = 100
)

// FieldError is a validation failure tied to a named input field.
type FieldError struct {
	Field string
	Msg   string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

var usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// emailRe is deliberately loose; the mailbox is never verified, so this only
// rejects obviously malformed addresses.
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Username checks and canonicalises a username. Valid names are returned
// lowercased, which is how they are stored and compared.
func Username(username string) (string, error) {
	if n := utf8.RuneCountInString(username); n < UsernameMinLen || n > UsernameMaxLen {
		return "", FieldError{
			Field: "username",
			Msg:   fmt.Sprintf("must be between %d and %d characters", UsernameMinLen, UsernameMaxLen),
		}
	}
	if !usernameRe.MatchString(username) {
		return "", FieldError{
			Field: "username",
			Msg:   "may only contain letters, digits and underscores",
		}
	}
	return strings.ToLower(username), nil
}

// Email checks and canonicalises an email address, returning it lowercased.
func Email(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || !emailRe.MatchString(email) {
		return "", FieldError{Field: "email", Msg: "must be a valid email address"}
	}
	return strings.ToLower(email), nil
}

// Password enforces the strength rule: at least PasswordMinLen characters
// with an upper-case letter, a lower-case letter, a digit and a special
// character. Lengths count runes, not bytes, so multibyte passwords are not
// short-changed.
func Password(password string) error {
	if utf8.RuneCountInString(password) < PasswordMinLen {
		return FieldError{
			Field: "password",
			Msg:   fmt.Sprintf("must be at least %d characters", PasswordMinLen),
		}
	}

	var upper, lower, digit, special bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}

	switch {
	case !upper:
		return FieldError{Field: "password", Msg: "must contain an upper-case letter"}
	case !lower:
		return FieldError{Field: "password", Msg: "must contain a lower-case letter"}
	case !digit:
		return FieldError{Field: "password", Msg: "must contain a digit"}
	case !special:
		return FieldError{Field: "password", Msg: "must contain a special character"}
	}
	return nil
}

// Title checks a post title.
func Title(title string) error {
	if title == "" || utf8.RuneCountInString(title) > TitleMaxLen {
		return FieldError{
			Field: "title",
			Msg:   fmt.Sprintf("must be between 1 and %d characters", TitleMaxLen),
		}
	}
	return nil
}

// Content checks post content.
func Content(content string) error {
	if utf8.RuneCountInString(content) < ContentMinLen {
		return FieldError{
			Field: "content",
			Msg:   fmt.Sprintf("must be at least %d characters", ContentMinLen),
		}
	}
	return nil
}

// Pagination checks listing parameters. Out-of-range values are rejected
// rather than clamped so callers learn they asked for something impossible.
func Pagination(page, perPage int) error {
	if page < 1 {
		return FieldError{Field: "page", Msg: "must be at least 1"}
	}
	if perPage < 1 || perPage > PerPageMax {
		return FieldError{
			Field: "per_page",
			Msg:   fmt.Sprintf("must be between 1 and %d", PerPageMax),
		}
	}
	return nil
}
