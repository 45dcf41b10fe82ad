package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillshare/skillshare-api/internal/core/domain"
	"github.com/skillshare/skillshare-api/internal/core/ports"
)

// LearningPlanService implements CRUD for learning plans with ownership
// checks on writes.
type LearningPlanService struct {
	plans ports.LearningPlanRepository
	log   zerolog.Logger
}

func NewLearningPlanService(plans ports.LearningPlanRepository, log zerolog.Logger) *LearningPlanService {
	return &LearningPlanService{plans: plans, log: log}
}

func (s *LearningPlanService) List(ctx context.Context, filter ports.LearningPlanFilter) ([]*domain.LearningPlan, error) {
	return s.plans.List(ctx, filter)
}

func (s *LearningPlanService) Get(ctx context.Context, id string) (*domain.LearningPlan, error) {
	return s.plans.FindByID(ctx, id)
}

func (s *LearningPlanService) Create(ctx context.Context, userID string, input ports.CreateLearningPlanInput) (*domain.LearningPlan, error) {
	now := time.Now().UTC()
	plan := &domain.LearningPlan{
		UserID:      userID,
		Title:       input.Title,
		Thumbnail:   input.Thumbnail,
		Skill:       input.Skill,
		SkillLevel:  input.SkillLevel,
		Description: input.Description,
		Lessons:     input.Lessons,
		Duration:    input.Duration,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if plan.Lessons == nil {
		plan.Lessons = []domain.Lesson{}
	}

	created, err := s.plans.Create(ctx, plan)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("plan_id", created.ID).Str("user_id", userID).Msg("learning plan created")
	return created, nil
}

func (s *LearningPlanService) Update(ctx context.Context, userID, planID string, input ports.UpdateLearningPlanInput) (*domain.LearningPlan, error) {
	plan, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, domain.ErrForbidden
	}

	if input.Title != nil {
		plan.Title = *input.Title
	}
	if input.Thumbnail != nil {
		plan.Thumbnail = *input.Thumbnail
	}
	if input.Skill != nil {
		plan.Skill = *input.Skill
	}
	if input.SkillLevel != nil {
		plan.SkillLevel = *input.SkillLevel
	}
	if input.Description != nil {
		plan.Description = *input.Description
	}
	if input.Lessons != nil {
		plan.Lessons = input.Lessons
	}
	if input.Duration != nil {
		plan.Duration = *input.Duration
	}
	plan.UpdatedAt = time.Now().UTC()

	if err := s.plans.Update(ctx, plan); err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *LearningPlanService) Delete(ctx context.Context, userID, planID string) error {
	plan, err := s.plans.FindByID(ctx, planID)
	if err != nil {
		return err
	}
	if plan.UserID != userID {
		return domain.ErrForbidden
	}
	return s.plans.Delete(ctx, planID)
}

var _ ports.LearningPlanService = (*LearningPlanService)(nil)
