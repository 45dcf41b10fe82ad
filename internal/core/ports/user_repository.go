package ports

import (
	"context"

	"github.com/skillshare/skillshare-api/internal/core/domain"
)

// UserRepository defines persistence operations for user documents.
//
// The follow-graph mutators each touch exactly one document and are
// idempotent on their own ($addToSet / $pull semantics). There is no
// cross-document atomicity: callers that update both sides of a follow
// relationship issue two independent writes.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrEmailTaken when the
	// email collides with the unique index.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByIDs returns the users whose ids are in the given list; missing
	// ids are silently skipped (dangling follow references are expected
	// after account deletion).
	FindByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	// Update overwrites the profile fields and password hash of an
	// existing user. The follow sets are not touched by Update.
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error

	// AddFollowing adds targetID to userID's following set.
	AddFollowing(ctx context.Context, userID, targetID string) error
	// RemoveFollowing removes targetID from userID's following set.
	RemoveFollowing(ctx context.Context, userID, targetID string) error
	// AddFollower adds followerID to userID's followers set.
	AddFollower(ctx context.Context, userID, followerID string) error
	// RemoveFollower removes followerID from userID's followers set.
	RemoveFollower(ctx context.Context, userID, followerID string) error
}
