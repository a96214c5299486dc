package domain

import "time"

type Post struct {
	ID        string
	Title     string
	Content   string
	AuthorID  string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Author is populated on reads by joining the users table.
	Author Author
}

// PostPage is one page of a post listing, newest first.
type PostPage struct {
	Items   []Post
	Total   int
	Page    int
	PerPage int
}

// Pages is the total page count for the listing, never below 1.
func (p PostPage) Pages() int {
	if p.Total == 0 || p.PerPage == 0 {
		return 1
	}
	return (p.Total + p.PerPage - 1) / p.PerPage
}
