package sqlite

import (
	"context"
	"time"

	"github.com/inkwelldev/inkwell/internal/blog/domain"
)

type postsRepo struct {
	db dbtx
}

// Post reads join the author so handlers never need a second lookup.
const postSelect = `
	SELECT p.id, p.title, p.content, p.author_id, p.created_at, p.updated_at,
	       u.id, u.username, u.role
	FROM posts p
	JOIN users u ON u.id = p.author_id`

// ULIDs embed their creation time, so id DESC breaks created_at ties in
// insertion order.
const postOrder = ` ORDER BY p.created_at DESC, p.id DESC`

func scanPost(row interface{ Scan(...any) error }) (domain.Post, error) {
	var p domain.Post
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.AuthorID,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.Author.ID,
		&p.Author.Username,
		&p.Author.Role,
	)
	if err != nil {
		return domain.Post{}, mapNotFound(err)
	}
	return p, nil
}

func (r *postsRepo) GetPostByID(ctx context.Context, id string) (domain.Post, error) {
	return scanPost(r.db.QueryRowContext(ctx, postSelect+` WHERE p.id = ?`, id))
}

func (r *postsRepo) ListPosts(ctx context.Context, page, perPage int) (domain.PostPage, error) {
	return r.listPage(ctx, page, perPage,
		postSelect+postOrder+` LIMIT ? OFFSET ?`,
		`SELECT COUNT(*) FROM posts`,
		nil)
}

func (r *postsRepo) ListPostsByAuthor(ctx context.Context, authorID string, page, perPage int) (domain.PostPage, error) {
	return r.listPage(ctx, page, perPage,
		postSelect+` WHERE p.author_id = ?`+postOrder+` LIMIT ? OFFSET ?`,
		`SELECT COUNT(*) FROM posts WHERE author_id = ?`,
		[]any{authorID})
}

func (r *postsRepo) listPage(ctx context.Context, page, perPage int, query, countQuery string, filterArgs []any) (domain.PostPage, error) {
	result := domain.PostPage{
		Items:   []domain.Post{},
		Page:    page,
		PerPage: perPage,
	}

	if err := r.db.QueryRowContext(ctx, countQuery, filterArgs...).Scan(&result.Total); err != nil {
		return domain.PostPage{}, err
	}

	offset := (page - 1) * perPage
	args := append(append([]any{}, filterArgs...), perPage, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.PostPage{}, err
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return domain.PostPage{}, err
		}
		result.Items = append(result.Items, p)
	}
	if err := rows.Err(); err != nil {
		return domain.PostPage{}, err
	}

	return result, nil
}

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) error {
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO posts (id, title, content, author_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Content, p.AuthorID, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *postsRepo) UpdatePost(ctx context.Context, id, title, content string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE posts SET title = ?, content = ?, updated_at = ? WHERE id = ?`,
		title, content, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *postsRepo) DeletePost(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *postsRepo) DeletePostsByAuthor(ctx context.Context, authorID string) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE author_id = ?`, authorID)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}
