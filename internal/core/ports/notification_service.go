package ports

import (
	"context"

	"github.com/skillshare/skillshare-api/internal/core/domain"
)

// NotificationService reads and flips the read flag on the caller's own
// notifications.
type NotificationService interface {
	ListForUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	// MarkRead flips the read flag; only the recipient may do so
	// (domain.ErrForbidden otherwise).
	MarkRead(ctx context.Context, userID, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) error
}
