package models

import "time"

// Post is a single blog entry.
type Post struct {
	// ID is the server-assigned identifier of the post.
	ID int64 `json:"id"`

	// Name is the author display name as supplied by the client.
	Name string `json:"name"`

	// Title is the post headline.
	Title string `json:"title"`

	// Contents is the post body. Omitted from list responses, which
	// carry only the summary columns.
	Contents string `json:"contents,omitempty"`

	// Date is the publication date used for ordering the post feed.
	Date time.Time `json:"date"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "danwooblog"
}

// PostListQuery holds validated pagination parameters for the post feed.
type PostListQuery struct {
	// Limit is the page size, bounded to 1..100.
	Limit uint64

	// Page is the 1-based page number.
	Page uint64
}

// Offset returns the number of rows to skip for the requested page.
func (q PostListQuery) Offset() uint64 {
	return q.Limit * (q.Page - 1)
}
