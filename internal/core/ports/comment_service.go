package ports

import (
	"context"

	"github.com/skillshare/skillshare-api/internal/core/domain"
)

// CommentService defines use-case operations for post comments.
type CommentService interface {
	ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error)
	// Create adds a comment and best-effort notifies the post owner. The
	// comment is returned even when the notification fails.
	Create(ctx context.Context, userID, postID, content string) (*domain.Comment, error)
	// Update enforces comment ownership.
	Update(ctx context.Context, userID, postID, commentID, content string) (*domain.Comment, error)
	// Delete is allowed for the comment author and for the post owner.
	Delete(ctx context.Context, userID, postID, commentID string) error
}
