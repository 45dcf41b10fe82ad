package ports

import (
	"context"

	"github.com/skillshare/skillshare-api/internal/core/domain"
)

// LearningPlanFilter narrows a learning plan listing. Empty fields match all.
type LearningPlanFilter struct {
	UserID     string
	Skill      string
	SkillLevel string
}

// LearningPlanRepository defines persistence operations for learning plans.
type LearningPlanRepository interface {
	Create(ctx context.Context, plan *domain.LearningPlan) (*domain.LearningPlan, error)
	FindByID(ctx context.Context, id string) (*domain.LearningPlan, error)
	List(ctx context.Context, filter LearningPlanFilter) ([]*domain.LearningPlan, error)
	Update(ctx context.Context, plan *domain.LearningPlan) error
	Delete(ctx context.Context, id string) error
}
