package ports

import (
	"context"

	"github.com/skillshare/skillshare-api/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration time.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Address   string
	Birthday  string
}

// AuthResult pairs a freshly issued token with the sanitized profile of the
// authenticated user.
type AuthResult struct {
	Token string
	User  *domain.User
}

// AuthService implements credential verification and account creation.
type AuthService interface {
	// Login verifies the password against the stored hash and issues a
	// token. Returns domain.ErrUserNotFound for an unknown email and
	// domain.ErrInvalidCredentials for a wrong password.
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Register creates a new account with empty follow sets and issues a
	// token. Returns domain.ErrEmailTaken when the email is in use.
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
}
