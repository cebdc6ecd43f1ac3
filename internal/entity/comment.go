package entity

import "time"

// Comment is append-only: once created it is never updated or deleted on
// its own, only removed together with its post.
type Comment struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}
