package entity

import "time"

// Like records that one user likes one post. At most one Like exists per
// (PostID, UserID) pair; the store enforces this with a unique index.
type Like struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
