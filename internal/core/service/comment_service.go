package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillshare/skillshare-api/internal/core/domain"
	"github.com/skillshare/skillshare-api/internal/core/ports"
)

// CommentService implements comment CRUD. Creating a comment best-effort
// notifies the post owner after the comment itself has been persisted.
type CommentService struct {
	comments ports.CommentRepository
	posts    ports.PostRepository
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewCommentService(
	comments ports.CommentRepository,
	posts ports.PostRepository,
	notifier ports.Notifier,
	log zerolog.Logger,
) *CommentService {
	return &CommentService{comments: comments, posts: posts, notifier: notifier, log: log}
}

func (s *CommentService) ListByPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, err
	}
	return s.comments.FindByPostID(ctx, postID)
}

// Create persists the comment, then emits the notification. The notifier
// never fails the call: once the comment write has succeeded the comment is
// returned regardless of what happens to the side effect.
func (s *CommentService) Create(ctx context.Context, userID, postID, content string) (*domain.Comment, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		PostID:    postID,
		UserID:    userID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("comment_id", created.ID).Str("post_id", postID).Str("user_id", userID).Msg("comment created")
	s.notifier.CommentCreated(ctx, userID, post, created)

	return created, nil
}

func (s *CommentService) Update(ctx context.Context, userID, postID, commentID, content string) (*domain.Comment, error) {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != postID {
		return nil, domain.ErrCommentNotFound
	}
	if comment.UserID != userID {
		return nil, domain.ErrForbidden
	}

	comment.Content = content
	comment.UpdatedAt = time.Now().UTC()

	if err := s.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete is allowed for the comment author and for the owner of the post the
// comment is attached to.
func (s *CommentService) Delete(ctx context.Context, userID, postID, commentID string) error {
	comment, err := s.comments.FindByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.PostID != postID {
		return domain.ErrCommentNotFound
	}

	if comment.UserID != userID {
		post, err := s.posts.FindByID(ctx, postID)
		if err != nil {
			return err
		}
		if post.UserID != userID {
			return domain.ErrForbidden
		}
	}

	return s.comments.Delete(ctx, commentID)
}

var _ ports.CommentService = (*CommentService)(nil)
