package ports

import (
	"context"

	"github.com/skillshare/skillshare-api/internal/core/domain"
)

// LikeRepository defines persistence operations for post likes.
type LikeRepository interface {
	// Create inserts a like. The (post_id, user_id) pair is unique; a
	// duplicate insert surfaces as an error from the store.
	Create(ctx context.Context, like *domain.Like) (*domain.Like, error)
	FindByPostID(ctx context.Context, postID string) ([]*domain.Like, error)
	// FindByPostAndUser returns domain.ErrLikeNotFound when the user has
	// not liked the post.
	FindByPostAndUser(ctx context.Context, postID, userID string) (*domain.Like, error)
	// DeleteByPostAndUser removes the user's like; deleting a like that
	// does not exist is a no-op.
	DeleteByPostAndUser(ctx context.Context, postID, userID string) error
}
