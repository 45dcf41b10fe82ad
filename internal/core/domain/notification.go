package domain

import "time"

// Notification kinds, also used as the message templates' selector.
const (
	NotificationComment = "comment"
	NotificationLike    = "like"
	NotificationFollow  = "follow"
)

// Notification tells a user that someone acted on their content or profile.
// Notifications are write-once: after creation only the Read flag changes.
type Notification struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Type         string    `json:"type"`
	Message      string    `json:"message"`
	ActionUserID string    `json:"action_user_id"`
	PostID       string    `json:"post_id,omitempty"`
	CommentID    string    `json:"comment_id,omitempty"`
	Read         bool      `json:"read"`
	CreatedAt    time.Time `json:"created_at"`
}
