package ports

import (
	"context"

	"github.com/skillshare/skillshare-api/internal/core/domain"
)

// Notifier emits best-effort notifications after a primary write has
// succeeded. None of the methods return an error: failure to resolve the
// recipient or to persist the notification is logged and swallowed inside
// the implementation, never surfaced to the triggering operation.
type Notifier interface {
	// CommentCreated notifies the post owner about a new comment.
	CommentCreated(ctx context.Context, actorID string, post *domain.Post, comment *domain.Comment)
	// PostLiked notifies the post owner about a new like.
	PostLiked(ctx context.Context, actorID string, post *domain.Post)
	// UserFollowed notifies targetID about a new follower.
	UserFollowed(ctx context.Context, actorID, targetID string)
}
