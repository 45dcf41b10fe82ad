package ports

import (
	"context"

	"github.com/skillshare/skillshare-api/internal/core/domain"
)

// UpdateUserInput carries the mutable profile fields. Nil pointers mean
// "leave unchanged". Password, when set, is re-hashed before persisting.
type UpdateUserInput struct {
	FirstName *string
	LastName  *string
	Address   *string
	Birthday  *string
	AvatarURL *string
	Bio       *string
	Password  *string
}

// FollowResult reports the target's counts after a follow or unfollow,
// read back from the just-persisted documents.
type FollowResult struct {
	TargetID  string
	Followers int
	Following int
}

// UserService covers profile access, profile mutation and the follow graph.
type UserService interface {
	// List returns all users in their public view.
	List(ctx context.Context) ([]*domain.User, error)
	// Get returns a single user's public view.
	Get(ctx context.Context, id string) (*domain.User, error)
	// GetPrivate returns the full sanitized profile; only the owner may
	// read it (domain.ErrForbidden otherwise).
	GetPrivate(ctx context.Context, requesterID, id string) (*domain.User, error)
	// Update mutates the requester's own profile (domain.ErrForbidden when
	// requesterID != id).
	Update(ctx context.Context, requesterID, id string, input UpdateUserInput) (*domain.User, error)
	// Delete removes the requester's own account. References held by other
	// users' follow sets are not cleaned up.
	Delete(ctx context.Context, requesterID, id string) error

	// Follow makes followerID follow targetID. Self-follow is rejected
	// with domain.ErrSelfFollow; repeating an existing follow is a no-op
	// that still reports current counts.
	Follow(ctx context.Context, followerID, targetID string) (*FollowResult, error)
	// Unfollow removes the relationship in both directions; idempotent.
	Unfollow(ctx context.Context, followerID, targetID string) (*FollowResult, error)
	// Followers resolves the target's followers to public profiles.
	Followers(ctx context.Context, id string) ([]*domain.User, error)
	// Following resolves the users the target follows to public profiles.
	Following(ctx context.Context, id string) ([]*domain.User, error)
}
