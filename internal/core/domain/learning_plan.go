package domain

import "time"

// Lesson is a single unit within a learning plan.
type Lesson struct {
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	VideoID     string   `json:"video_id,omitempty" bson:"video_id,omitempty"`
	DocumentIDs []string `json:"document_ids" bson:"documents"`
}

// LearningPlan is a user-curated curriculum for a skill.
type LearningPlan struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	Skill       string    `json:"skill"`
	SkillLevel  string    `json:"skill_level"`
	Description string    `json:"description,omitempty"`
	Lessons     []Lesson  `json:"lessons"`
	Duration    string    `json:"duration,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
