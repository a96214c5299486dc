package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/inkwelldev/inkwell/internal/blog/domain"
	"github.com/inkwelldev/inkwell/internal/blog/store"
	"github.com/inkwelldev/inkwell/internal/blog/validate"
	"github.com/inkwelldev/inkwell/pkg/idx"
	"github.com/inkwelldev/inkwell/pkg/slogx"
)

// PostService covers the post CRUD surface and its ownership rules.
type PostService struct {
	Store store.Store
}

// List returns one page of all posts, newest first.
func (s *PostService) List(ctx context.Context, page, perPage int) (domain.PostPage, error) {
	if err := validate.Pagination(page, perPage); err != nil {
		return domain.PostPage{}, err
	}
	return s.Store.Posts().ListPosts(ctx, page, perPage)
}

// ListByAuthor returns one page of a single author's posts. The author must
// exist; an unknown id is a NotFoundError, not an empty page.
func (s *PostService) ListByAuthor(ctx context.Context, authorID string, page, perPage int) (domain.PostPage, error) {
	if err := validate.Pagination(page, perPage); err != nil {
		return domain.PostPage{}, err
	}

	if _, err := s.Store.Users().GetUserByID(ctx, authorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.PostPage{}, NotFoundError{Kind: "user", ID: authorID}
		}
		return domain.PostPage{}, err
	}

	return s.Store.Posts().ListPostsByAuthor(ctx, authorID, page, perPage)
}

// Get fetches a single post by id.
func (s *PostService) Get(ctx context.Context, id string) (domain.Post, error) {
	post, err := s.Store.Posts().GetPostByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Post{}, NotFoundError{Kind: "post", ID: id}
		}
		return domain.Post{}, err
	}
	return post, nil
}

// Create writes a new post owned by author.
func (s *PostService) Create(ctx context.Context, author domain.User, title, content string) (domain.Post, error) {
	if err := validate.Title(title); err != nil {
		return domain.Post{}, err
	}
	if err := validate.Content(content); err != nil {
		return domain.Post{}, err
	}

	post := domain.Post{
		ID:       idx.New().String(),
		Title:    title,
		Content:  content,
		AuthorID: author.ID,
	}
	if err := s.Store.Posts().CreatePost(ctx, post); err != nil {
		return domain.Post{}, err
	}

	slogx.FromContext(ctx).Info("post created",
		slog.String("post_id", post.ID),
		slog.String("author_id", author.ID),
	)

	return s.Get(ctx, post.ID)
}

// PostUpdate carries the optional fields of a post update. Nil means leave
// the field alone.
type PostUpdate struct {
	Title   *string
	Content *string
}

// Update rewrites the provided fields of a post; nil fields keep their
// stored value. Only the author may update, admins included: moderation
// powers cover removal, not rewriting someone else's words.
func (s *PostService) Update(ctx context.Context, actor domain.User, id string, update PostUpdate) (domain.Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}

	if post.AuthorID != actor.ID {
		return domain.Post{}, ErrForbidden
	}

	title, content := post.Title, post.Content
	if update.Title != nil {
		if err := validate.Title(*update.Title); err != nil {
			return domain.Post{}, err
		}
		title = *update.Title
	}
	if update.Content != nil {
		if err := validate.Content(*update.Content); err != nil {
			return domain.Post{}, err
		}
		content = *update.Content
	}

	if err := s.Store.Posts().UpdatePost(ctx, id, title, content); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Post{}, NotFoundError{Kind: "post", ID: id}
		}
		return domain.Post{}, err
	}

	return s.Get(ctx, id)
}

// Delete removes a post for its author or for an admin, returning a snapshot
// of the deleted post.
func (s *PostService) Delete(ctx context.Context, actor domain.User, id string) (domain.Post, error) {
	post, err := s.Get(ctx, id)
	if err != nil {
		return domain.Post{}, err
	}

	if post.AuthorID != actor.ID && !actor.IsAdmin() {
		return domain.Post{}, ErrForbidden
	}

	if err := s.Store.Posts().DeletePost(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Post{}, NotFoundError{Kind: "post", ID: id}
		}
		return domain.Post{}, err
	}

	slogx.FromContext(ctx).Info("post deleted",
		slog.String("post_id", id),
		slog.String("actor_id", actor.ID),
		slog.Bool("by_admin", post.AuthorID != actor.ID),
	)

	return post, nil
}
