package ports

import (
	"context"

	"github.com/skillshare/skillshare-api/internal/core/domain"
)

// CreateLearningPlanInput carries the fields accepted when creating a plan.
type CreateLearningPlanInput struct {
	Title       string
	Thumbnail   string
	Skill       string
	SkillLevel  string
	Description string
	Lessons     []domain.Lesson
	Duration    string
}

// UpdateLearningPlanInput carries the mutable plan fields. Nil means
// unchanged; Lessons nil means unchanged, empty slice clears.
type UpdateLearningPlanInput struct {
	Title       *string
	Thumbnail   *string
	Skill       *string
	SkillLevel  *string
	Description *string
	Lessons     []domain.Lesson
	Duration    *string
}

// LearningPlanService defines use-case operations for learning plans.
type LearningPlanService interface {
	List(ctx context.Context, filter LearningPlanFilter) ([]*domain.LearningPlan, error)
	Get(ctx context.Context, id string) (*domain.LearningPlan, error)
	Create(ctx context.Context, userID string, input CreateLearningPlanInput) (*domain.LearningPlan, error)
	Update(ctx context.Context, userID, planID string, input UpdateLearningPlanInput) (*domain.LearningPlan, error)
	Delete(ctx context.Context, userID, planID string) error
}
