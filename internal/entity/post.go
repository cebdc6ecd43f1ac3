package entity

import "time"

// Post is a Markdown article. Title and Content are non-empty after
// trimming; AuthorID is immutable after creation.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	AuthorID  string    `json:"author_id"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostCounts holds the read-time aggregates for a post.
type PostCounts struct {
	Comments int64 `json:"comments"`
	Likes    int64 `json:"likes"`
}
