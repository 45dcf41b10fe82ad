package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skillshare/skillshare-api/internal/core/domain"
	"github.com/skillshare/skillshare-api/internal/core/ports"
)

const collectionLearningPlans = "learning_plans"

// LearningPlanRepository persists learning plans.
type LearningPlanRepository struct {
	col *mongo.Collection
}

func NewLearningPlanRepository(db *mongo.Database) *LearningPlanRepository {
	return &LearningPlanRepository{col: db.Collection(collectionLearningPlans)}
}

type learningPlanDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	Title       string             `bson:"title"`
	Thumbnail   string             `bson:"thumbnail,omitempty"`
	Skill       string             `bson:"skill"`
	SkillLevel  string             `bson:"skill_level"`
	Description string             `bson:"description,omitempty"`
	Lessons     []domain.Lesson    `bson:"lessons"`
	Duration    string             `bson:"duration,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d *learningPlanDoc) toDomain() *domain.LearningPlan {
	p := &domain.LearningPlan{
		ID:          d.ID.Hex(),
		UserID:      d.UserID,
		Title:       d.Title,
		Thumbnail:   d.Thumbnail,
		Skill:       d.Skill,
		SkillLevel:  d.SkillLevel,
		Description: d.Description,
		Lessons:     d.Lessons,
		Duration:    d.Duration,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
	if p.Lessons == nil {
		p.Lessons = []domain.Lesson{}
	}
	return p
}

func (r *LearningPlanRepository) Create(ctx context.Context, plan *domain.LearningPlan) (*domain.LearningPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := learningPlanDoc{
		UserID:      plan.UserID,
		Title:       plan.Title,
		Thumbnail:   plan.Thumbnail,
		Skill:       plan.Skill,
		SkillLevel:  plan.SkillLevel,
		Description: plan.Description,
		Lessons:     plan.Lessons,
		Duration:    plan.Duration,
		CreatedAt:   plan.CreatedAt,
		UpdatedAt:   plan.UpdatedAt,
	}
	if doc.Lessons == nil {
		doc.Lessons = []domain.Lesson{}
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert learning plan: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert learning plan: unexpected inserted id type %T", res.InsertedID)
	}
	doc.ID = oid
	return doc.toDomain(), nil
}

func (r *LearningPlanRepository) FindByID(ctx context.Context, id string) (*domain.LearningPlan, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrLearningPlanNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc learningPlanDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLearningPlanNotFound
		}
		return nil, fmt.Errorf("find learning plan: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *LearningPlanRepository) List(ctx context.Context, filter ports.LearningPlanFilter) ([]*domain.LearningPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.UserID != "" {
		query["user_id"] = filter.UserID
	}
	if filter.Skill != "" {
		query["skill"] = filter.Skill
	}
	if filter.SkillLevel != "" {
		query["skill_level"] = filter.SkillLevel
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list learning plans: %w", err)
	}
	defer cur.Close(ctx)

	plans := []*domain.LearningPlan{}
	for cur.Next(ctx) {
		var doc learningPlanDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode learning plan: %w", err)
		}
		plans = append(plans, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate learning plans: %w", err)
	}
	return plans, nil
}

func (r *LearningPlanRepository) Update(ctx context.Context, plan *domain.LearningPlan) error {
	oid, err := primitive.ObjectIDFromHex(plan.ID)
	if err != nil {
		return domain.ErrLearningPlanNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":       plan.Title,
		"thumbnail":   plan.Thumbnail,
		"skill":       plan.Skill,
		"skill_level": plan.SkillLevel,
		"description": plan.Description,
		"lessons":     plan.Lessons,
		"duration":    plan.Duration,
		"updated_at":  plan.UpdatedAt,
	}}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("update learning plan: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrLearningPlanNotFound
	}
	return nil
}

func (r *LearningPlanRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrLearningPlanNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete learning plan: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrLearningPlanNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes backing the list filters.
func (r *LearningPlanRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "skill", Value: 1}}},
		{Keys: bson.D{{Key: "skill_level", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
