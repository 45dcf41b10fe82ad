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
)

const collectionLikes = "likes"

// LikeRepository persists likes in the likes collection. A unique compound
// index on (post_id, user_id) makes the one-like-per-user rule atomic at
// the store level.
type LikeRepository struct {
	col *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) *LikeRepository {
	return &LikeRepository{col: db.Collection(collectionLikes)}
}

type likeDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PostID    string             `bson:"post_id"`
	UserID    string             `bson:"user_id"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *likeDoc) toDomain() *domain.Like {
	return &domain.Like{
		ID:        d.ID.Hex(),
		PostID:    d.PostID,
		UserID:    d.UserID,
		CreatedAt: d.CreatedAt,
	}
}

func (r *LikeRepository) Create(ctx context.Context, like *domain.Like) (*domain.Like, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := likeDoc{
		PostID:    like.PostID,
		UserID:    like.UserID,
		CreatedAt: like.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		// Concurrent double-like: the unique index caught it, fetch the
		// winner so the caller still gets the persisted like.
		if mongo.IsDuplicateKeyError(err) {
			return r.FindByPostAndUser(ctx, like.PostID, like.UserID)
		}
		return nil, fmt.Errorf("insert like: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("insert like: unexpected inserted id type %T", res.InsertedID)
	}
	doc.ID = oid
	return doc.toDomain(), nil
}

func (r *LikeRepository) FindByPostID(ctx context.Context, postID string) ([]*domain.Like, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"post_id": postID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}
	defer cur.Close(ctx)

	likes := []*domain.Like{}
	for cur.Next(ctx) {
		var doc likeDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode like: %w", err)
		}
		likes = append(likes, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate likes: %w", err)
	}
	return likes, nil
}

func (r *LikeRepository) FindByPostAndUser(ctx context.Context, postID, userID string) (*domain.Like, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc likeDoc
	err := r.col.FindOne(ctx, bson.M{"post_id": postID, "user_id": userID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLikeNotFound
		}
		return nil, fmt.Errorf("find like: %w", err)
	}
	return doc.toDomain(), nil
}

// DeleteByPostAndUser removes the user's like. Zero deletions is a no-op,
// not an error.
func (r *LikeRepository) DeleteByPostAndUser(ctx context.Context, postID, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"post_id": postID, "user_id": userID}); err != nil {
		return fmt.Errorf("delete like: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique (post_id, user_id) index.
func (r *LikeRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "post_id", Value: 1}, {Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
