package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/skillshare/skillshare-api/internal/core/domain"
	"github.com/skillshare/skillshare-api/internal/core/ports"
)

type stubPlanRepo struct {
	mu    sync.Mutex
	plans map[string]*domain.LearningPlan
	seq   int
}

func newStubPlanRepo() *stubPlanRepo {
	return &stubPlanRepo{plans: make(map[string]*domain.LearningPlan)}
}

func (r *stubPlanRepo) Create(_ context.Context, plan *domain.LearningPlan) (*domain.LearningPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	clone := *plan
	if clone.ID == "" {
		clone.ID = "plan_" + strconv.Itoa(r.seq)
	}
	r.plans[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPlanRepo) FindByID(_ context.Context, id string) (*domain.LearningPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[id]
	if !ok {
		return nil, domain.ErrLearningPlanNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPlanRepo) List(_ context.Context, filter ports.LearningPlanFilter) ([]*domain.LearningPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*domain.LearningPlan{}
	for _, p := range r.plans {
		if filter.UserID != "" && p.UserID != filter.UserID {
			continue
		}
		if filter.Skill != "" && p.Skill != filter.Skill {
			continue
		}
		if filter.SkillLevel != "" && p.SkillLevel != filter.SkillLevel {
			continue
		}
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubPlanRepo) Update(_ context.Context, plan *domain.LearningPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plans[plan.ID]; !ok {
		return domain.ErrLearningPlanNotFound
	}
	clone := *plan
	r.plans[plan.ID] = &clone
	return nil
}

func (r *stubPlanRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plans[id]; !ok {
		return domain.ErrLearningPlanNotFound
	}
	delete(r.plans, id)
	return nil
}

func TestLearningPlanService_Create(t *testing.T) {
	svc := NewLearningPlanService(newStubPlanRepo(), zerolog.Nop())

	plan, err := svc.Create(context.Background(), "author", ports.CreateLearningPlanInput{
		Title: "Learn watercolor",
		Skill: "painting",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if plan.UserID != "author" || plan.Skill != "painting" {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	if plan.Lessons == nil {
		t.Fatalf("lessons must default to an empty slice")
	}
}

func TestLearningPlanService_Update_Ownership(t *testing.T) {
	repo := newStubPlanRepo()
	svc := NewLearningPlanService(repo, zerolog.Nop())

	plan, _ := svc.Create(context.Background(), "author", ports.CreateLearningPlanInput{Title: "t", Skill: "s"})

	title := "hijacked"
	if _, err := svc.Update(context.Background(), "stranger", plan.ID, ports.UpdateLearningPlanInput{Title: &title}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	lessons := []domain.Lesson{{Title: "intro"}}
	updated, err := svc.Update(context.Background(), "author", plan.ID, ports.UpdateLearningPlanInput{Lessons: lessons})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if len(updated.Lessons) != 1 || updated.Lessons[0].Title != "intro" {
		t.Fatalf("lessons not updated: %+v", updated.Lessons)
	}
	if updated.Title != "t" {
		t.Fatalf("nil fields must remain unchanged")
	}
}

func TestLearningPlanService_List_Filters(t *testing.T) {
	repo := newStubPlanRepo()
	svc := NewLearningPlanService(repo, zerolog.Nop())

	_, _ = svc.Create(context.Background(), "a", ports.CreateLearningPlanInput{Title: "p1", Skill: "painting", SkillLevel: "beginner"})
	_, _ = svc.Create(context.Background(), "a", ports.CreateLearningPlanInput{Title: "p2", Skill: "guitar", SkillLevel: "advanced"})
	_, _ = svc.Create(context.Background(), "b", ports.CreateLearningPlanInput{Title: "p3", Skill: "painting", SkillLevel: "advanced"})

	got, err := svc.List(context.Background(), ports.LearningPlanFilter{Skill: "painting"})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("skill filter: expected 2 plans, got %d", len(got))
	}

	got, _ = svc.List(context.Background(), ports.LearningPlanFilter{UserID: "a", SkillLevel: "advanced"})
	if len(got) != 1 || got[0].Title != "p2" {
		t.Fatalf("combined filter: unexpected result %+v", got)
	}
}

func TestLearningPlanService_Delete_Ownership(t *testing.T) {
	repo := newStubPlanRepo()
	svc := NewLearningPlanService(repo, zerolog.Nop())

	plan, _ := svc.Create(context.Background(), "author", ports.CreateLearningPlanInput{Title: "t", Skill: "s"})

	if err := svc.Delete(context.Background(), "stranger", plan.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), "author", plan.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := svc.Get(context.Background(), plan.ID); !errors.Is(err, domain.ErrLearningPlanNotFound) {
		t.Fatalf("plan still readable after delete: %v", err)
	}
}
