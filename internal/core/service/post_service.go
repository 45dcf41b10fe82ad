package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillshare/skillshare-api/internal/core/domain"
	"github.com/skillshare/skillshare-api/internal/core/ports"
)

// PostService implements CRUD for posts with ownership checks on writes.
type PostService struct {
	posts ports.PostRepository
	log   zerolog.Logger
}

func NewPostService(posts ports.PostRepository, log zerolog.Logger) *PostService {
	return &PostService{posts: posts, log: log}
}

func (s *PostService) List(ctx context.Context, userID string) ([]*domain.Post, error) {
	return s.posts.List(ctx, userID)
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.posts.FindByID(ctx, id)
}

func (s *PostService) Create(ctx context.Context, userID string, input ports.CreatePostInput) (*domain.Post, error) {
	postType := input.Type
	if postType == "" {
		postType = domain.PostTypeGeneral
	}

	now := time.Now().UTC()
	post := &domain.Post{
		UserID:           userID,
		Title:            input.Title,
		Content:          input.Content,
		Type:             postType,
		Media:            input.Media,
		ProgressTemplate: input.ProgressTemplate,
		Achievements:     input.Achievements,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if post.Media == nil {
		post.Media = []domain.MediaItem{}
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("post_id", created.ID).Str("user_id", userID).Msg("post created")
	return created, nil
}

func (s *PostService) Update(ctx context.Context, userID, postID string, input ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.UserID != userID {
		return nil, domain.ErrForbidden
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Media != nil {
		post.Media = input.Media
	}
	if input.ProgressTemplate != nil {
		post.ProgressTemplate = input.ProgressTemplate
	}
	if input.Achievements != nil {
		post.Achievements = input.Achievements
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, userID, postID string) error {
	post, err := s.posts.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return domain.ErrForbidden
	}
	return s.posts.Delete(ctx, postID)
}

var _ ports.PostService = (*PostService)(nil)
