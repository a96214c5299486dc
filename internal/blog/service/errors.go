package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials covers every login failure: unknown identifier,
	// wrong password, deactivated account. Callers get no hint which one it
	// was.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	// ErrForbidden means the caller is authenticated but not allowed to act
	// on the resource.
	ErrForbidden = errors.New("forbidden")
)

// DuplicateError reports a uniqueness violation on a user field. It is
// returned both from the pre-flight check and when a concurrent insert loses
// the race at commit.
type DuplicateError struct {
	Field string
	Value string
}

func (e DuplicateError) Error() string {
	return fmt.Sprintf("%s %q is already taken", e.Field, e.Value)
}

// NotFoundError reports a missing resource by kind and id.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}
