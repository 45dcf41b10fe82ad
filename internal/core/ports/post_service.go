package ports

import (
	"context"

	"github.com/skillshare/skillshare-api/internal/core/domain"
)

// CreatePostInput carries the fields accepted when creating a post.
type CreatePostInput struct {
	Title            string
	Content          string
	Type             string
	Media            []domain.MediaItem
	ProgressTemplate *domain.ProgressTemplate
	Achievements     []domain.Achievement
}

// UpdatePostInput carries the mutable post fields. Nil means unchanged.
type UpdatePostInput struct {
	Title            *string
	Content          *string
	Media            []domain.MediaItem
	ProgressTemplate *domain.ProgressTemplate
	Achievements     []domain.Achievement
}

// PostService defines use-case operations for posts.
type PostService interface {
	List(ctx context.Context, userID string) ([]*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Create(ctx context.Context, userID string, input CreatePostInput) (*domain.Post, error)
	// Update and Delete enforce ownership: only the author may mutate a
	// post (domain.ErrForbidden otherwise).
	Update(ctx context.Context, userID, postID string, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, userID, postID string) error
}
