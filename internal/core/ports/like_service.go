package ports

import (
	"context"

	"github.com/skillshare/skillshare-api/internal/core/domain"
)

// LikeService defines use-case operations for post likes.
type LikeService interface {
	ListByPost(ctx context.Context, postID string) ([]*domain.Like, error)
	// Add records the user's like. Liking the same post twice returns the
	// existing like without a second write or a second notification.
	Add(ctx context.Context, userID, postID string) (*domain.Like, error)
	// Remove deletes the user's like; idempotent.
	Remove(ctx context.Context, userID, postID string) error
}
