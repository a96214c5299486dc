package store

import (
	"context"
	"errors"

	"github.com/inkwelldev/inkwell/internal/blog/domain"
)

var (
	ErrNotFound       = errors.New("store: not found")
	ErrUsernameExists = errors.New("store: username already exists")
	ErrEmailExists    = errors.New("store: email already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Posts() Posts

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// Use it for multi-step operations that must be atomic (e.g., deleting a
	// user together with their posts). The caller MUST call Commit() or
	// Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// This is the recommended way to handle transactions as it automatically
	// handles commit/rollback logic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login; usernames are stored lowercase.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// GetUserByEmail is used during login with an email identifier.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Unique violations surface as ErrUsernameExists or ErrEmailExists.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateEmail sets the email and bumps updated_at.
	UpdateEmail(ctx context.Context, userID string, email string) error

	// UpdatePasswordHash sets the password_hash (bcrypt) and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID string, newHash string) error

	// SetActive flips the is_active flag and bumps updated_at.
	SetActive(ctx context.Context, userID string, active bool) error

	// DeleteUser removes the user row only. Callers that need posts removed
	// too must do both inside one Tx.
	DeleteUser(ctx context.Context, userID string) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Posts interface {
	// GetPostByID returns a post with its author joined in.
	GetPostByID(ctx context.Context, id string) (domain.Post, error)

	// ListPosts returns one page of posts, newest first, with the total count.
	ListPosts(ctx context.Context, page, perPage int) (domain.PostPage, error)

	// ListPostsByAuthor is ListPosts scoped to one author.
	ListPostsByAuthor(ctx context.Context, authorID string, page, perPage int) (domain.PostPage, error)

	// CreatePost inserts a new post (id is ULID).
	CreatePost(ctx context.Context, p domain.Post) error

	// UpdatePost sets title, content and updated_at.
	UpdatePost(ctx context.Context, id, title, content string) error

	// DeletePost removes a post by id.
	DeletePost(ctx context.Context, id string) error

	// DeletePostsByAuthor removes every post by the author, returning the
	// number deleted. Used inside the user deletion transaction.
	DeletePostsByAuthor(ctx context.Context, authorID string) (int, error)
}
