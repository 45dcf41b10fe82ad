package domain

import "time"

// Post types supported by the platform. A "progress" post carries a progress
// template; an "achievement" post carries achievement entries.
const (
	PostTypeGeneral     = "general"
	PostTypeProgress    = "progress"
	PostTypeAchievement = "achievement"
)

// MediaItem holds metadata for a media attachment. The binary itself lives in
// external blob storage; only the descriptor is persisted with the post.
type MediaItem struct {
	ID          string `json:"id" bson:"id"`
	Filename    string `json:"filename" bson:"filename"`
	ContentType string `json:"content_type" bson:"content_type"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Type        string `json:"type" bson:"type"`
	Size        int64  `json:"size" bson:"size"`
}

// ProgressTemplate tracks which steps of a learning template are completed.
type ProgressTemplate struct {
	Type      string   `json:"type" bson:"type"`
	Completed []string `json:"completed" bson:"completed"`
}

// Achievement records a milestone attached to an achievement post.
type Achievement struct {
	Type        string `json:"type" bson:"type"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Date        string `json:"date,omitempty" bson:"date,omitempty"`
}

// Post is a user-authored entry on the platform.
type Post struct {
	ID               string            `json:"id"`
	UserID           string            `json:"user_id"`
	Title            string            `json:"title"`
	Content          string            `json:"content"`
	Type             string            `json:"type"`
	Media            []MediaItem       `json:"media"`
	ProgressTemplate *ProgressTemplate `json:"progress_template,omitempty"`
	Achievements     []Achievement     `json:"achievements,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}
