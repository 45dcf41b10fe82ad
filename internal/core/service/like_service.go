package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillshare/skillshare-api/internal/core/domain"
	"github.com/skillshare/skillshare-api/internal/core/ports"
)

// LikeService implements post likes: at most one per (post, user), with a
// best-effort notification to the post owner on first like.
type LikeService struct {
	likes    ports.LikeRepository
	posts    ports.PostRepository
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewLikeService(
	likes ports.LikeRepository,
	posts ports.PostRepository,
	notifier ports.Notifier,
	log zerolog.Logger,
) *LikeService {
	return &LikeService{likes: likes, posts: posts, notifier: notifier, log: log}
}

func (s *LikeService) ListByPost(ctx context.Context, postID string) ([]*domain.Like, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.likes.FindByPostID(ctx, postID)
}

// Add records the like. A repeated like returns the existing document
// without writing again or re-notifying. The notification is emitted only
// after the like has been persisted and never affects the returned result.
func (s *LikeService) Add(ctx context.Context, userID, postID string) (*domain.Like, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	existing, err := s.likes.FindByPostAndUser(ctx, postID, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrLikeNotFound) {
		return nil, err
	}

	like := &domain.Like{
		PostID:    postID,
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	created, err := s.likes.Create(ctx, like)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("post_id", postID).Str("user_id", userID).Msg("like created")
	s.notifier.PostLiked(ctx, userID, post)

	return created, nil
}

// Remove deletes the user's like; removing a like that was never created is
// a no-op.
func (s *LikeService) Remove(ctx context.Context, userID, postID string) error {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return err
	}
	return s.likes.DeleteByPostAndUser(ctx, postID, userID)
}

var _ ports.LikeService = (*LikeService)(nil)
