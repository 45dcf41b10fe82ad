package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillshare/skillshare-api/internal/core/domain"
	"github.com/skillshare/skillshare-api/internal/core/ports"
)

// UserService implements profile access and the follow graph.
type UserService struct {
	users    ports.UserRepository
	notifier ports.Notifier
	log      zerolog.Logger
}

func NewUserService(users ports.UserRepository, notifier ports.Notifier, log zerolog.Logger) *UserService {
	return &UserService{users: users, notifier: notifier, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.PublicView())
	}
	return out, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.PublicView(), nil
}

// GetPrivate returns the full profile minus the password hash. Only the
// owner may read it.
func (s *UserService) GetPrivate(ctx context.Context, requesterID, id string) (*domain.User, error) {
	if requesterID != id {
		return nil, domain.ErrForbidden
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Sanitize(), nil
}

func (s *UserService) Update(ctx context.Context, requesterID, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if requesterID != id {
		return nil, domain.ErrForbidden
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.Birthday != nil {
		user.Birthday = *input.Birthday
	}
	if input.AvatarURL != nil {
		user.AvatarURL = *input.AvatarURL
	}
	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("update user: hash password: %w", err)
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.Sanitize(), nil
}

// Delete removes the account document. Follow references held by other
// users are left dangling; readers skip ids that no longer resolve.
func (s *UserService) Delete(ctx context.Context, requesterID, id string) error {
	if requesterID != id {
		return domain.ErrForbidden
	}
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}

// Follow adds the follower→target relationship. The two sides live in two
// documents written sequentially with no combined atomicity: a crash between
// the writes leaves the pair asymmetric. Each individual write uses
// $addToSet semantics, so repeating the call converges instead of
// duplicating entries.
func (s *UserService) Follow(ctx context.Context, followerID, targetID string) (*ports.FollowResult, error) {
	if followerID == targetID {
		return nil, domain.ErrSelfFollow
	}

	follower, err := s.users.FindByID(ctx, followerID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, targetID); err != nil {
		return nil, err
	}

	if !follower.IsFollowing(targetID) {
		if err := s.users.AddFollowing(ctx, followerID, targetID); err != nil {
			return nil, fmt.Errorf("follow: %w", err)
		}
		if err := s.users.AddFollower(ctx, targetID, followerID); err != nil {
			return nil, fmt.Errorf("follow: %w", err)
		}

		s.log.Info().Str("follower_id", followerID).Str("target_id", targetID).Msg("follow created")
		s.notifier.UserFollowed(ctx, followerID, targetID)
	}

	return s.countsFor(ctx, targetID)
}

// Unfollow removes the relationship from both documents. Removing an absent
// element is a no-op, so the whole operation is idempotent.
func (s *UserService) Unfollow(ctx context.Context, followerID, targetID string) (*ports.FollowResult, error) {
	if _, err := s.users.FindByID(ctx, followerID); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, targetID); err != nil {
		return nil, err
	}

	if err := s.users.RemoveFollowing(ctx, followerID, targetID); err != nil {
		return nil, fmt.Errorf("unfollow: %w", err)
	}
	if err := s.users.RemoveFollower(ctx, targetID, followerID); err != nil {
		return nil, fmt.Errorf("unfollow: %w", err)
	}

	return s.countsFor(ctx, targetID)
}

func (s *UserService) countsFor(ctx context.Context, targetID string) (*ports.FollowResult, error) {
	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	return &ports.FollowResult{
		TargetID:  targetID,
		Followers: len(target.FollowerIDs),
		Following: len(target.FollowingIDs),
	}, nil
}

func (s *UserService) Followers(ctx context.Context, id string) ([]*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolvePublic(ctx, user.FollowerIDs)
}

func (s *UserService) Following(ctx context.Context, id string) ([]*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolvePublic(ctx, user.FollowingIDs)
}

func (s *UserService) resolvePublic(ctx context.Context, ids []string) ([]*domain.User, error) {
	if len(ids) == 0 {
		return []*domain.User{}, nil
	}
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.PublicView())
	}
	return out, nil
}

var _ ports.UserService = (*UserService)(nil)
