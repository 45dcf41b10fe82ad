package domain

import "time"

// Like marks that a user liked a post. At most one like exists per
// (post, user) pair, enforced by a unique index on the collection.
type Like struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
