package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillshare/skillshare-api/internal/api/metrics"
	"github.com/skillshare/skillshare-api/internal/core/domain"
	"github.com/skillshare/skillshare-api/internal/core/ports"
)

// DedupChecker abstracts the notification suppression store (Redis). A hit
// means an identical notification was emitted recently and should not be
// repeated.
type DedupChecker interface {
	IsDuplicate(ctx context.Context, recipientID, actorID, kind, refID string) (bool, error)
	Mark(ctx context.Context, recipientID, actorID, kind, refID string) error
}

// Notifier persists notifications after a primary write has succeeded.
//
// This is an error-isolation boundary: every method swallows every failure.
// The triggering operation has already committed by the time a method runs,
// so its outcome must not depend on whether the notification landed. A lost
// notification is logged and counted, nothing more.
type Notifier struct {
	notifications ports.NotificationRepository
	dedup         DedupChecker
	log           zerolog.Logger
}

// NewNotifier returns a Notifier. dedup may be nil, in which case no
// suppression is applied.
func NewNotifier(notifications ports.NotificationRepository, dedup DedupChecker, log zerolog.Logger) *Notifier {
	return &Notifier{notifications: notifications, dedup: dedup, log: log}
}

// CommentCreated notifies the post owner. Comments on one's own post are
// not notified.
func (n *Notifier) CommentCreated(ctx context.Context, actorID string, post *domain.Post, comment *domain.Comment) {
	if post.UserID == actorID {
		return
	}
	n.emit(ctx, &domain.Notification{
		UserID:       post.UserID,
		Type:         domain.NotificationComment,
		Message:      "New comment on your post",
		ActionUserID: actorID,
		PostID:       post.ID,
		CommentID:    comment.ID,
	})
}

// PostLiked notifies the post owner. Repeated like/unlike cycles within the
// dedup window are suppressed.
func (n *Notifier) PostLiked(ctx context.Context, actorID string, post *domain.Post) {
	if post.UserID == actorID {
		return
	}
	if n.suppressed(ctx, post.UserID, actorID, domain.NotificationLike, post.ID) {
		return
	}
	if n.emit(ctx, &domain.Notification{
		UserID:       post.UserID,
		Type:         domain.NotificationLike,
		Message:      "Someone liked your post",
		ActionUserID: actorID,
		PostID:       post.ID,
	}) {
		n.mark(ctx, post.UserID, actorID, domain.NotificationLike, post.ID)
	}
}

// UserFollowed notifies the followed user. Repeated follow/unfollow cycles
// within the dedup window are suppressed.
func (n *Notifier) UserFollowed(ctx context.Context, actorID, targetID string) {
	if n.suppressed(ctx, targetID, actorID, domain.NotificationFollow, targetID) {
		return
	}
	if n.emit(ctx, &domain.Notification{
		UserID:       targetID,
		Type:         domain.NotificationFollow,
		Message:      "You have a new follower",
		ActionUserID: actorID,
	}) {
		n.mark(ctx, targetID, actorID, domain.NotificationFollow, targetID)
	}
}

// suppressed consults the dedup store. A store failure counts as "not
// suppressed": losing suppression is preferable to losing the notification.
func (n *Notifier) suppressed(ctx context.Context, recipientID, actorID, kind, refID string) bool {
	if n.dedup == nil {
		return false
	}
	isDup, err := n.dedup.IsDuplicate(ctx, recipientID, actorID, kind, refID)
	if err != nil {
		n.log.Warn().Err(err).Str("type", kind).Msg("notification dedup check failed, emitting anyway")
		return false
	}
	if isDup {
		metrics.NotificationsDedupTotal.WithLabelValues("hit").Inc()
		n.log.Debug().Str("type", kind).Str("recipient_id", recipientID).Msg("duplicate notification suppressed")
		return true
	}
	metrics.NotificationsDedupTotal.WithLabelValues("miss").Inc()
	return false
}

// mark arms the dedup key. Called only after the notification has been
// persisted: a failed persist must not suppress the retriggered emission.
func (n *Notifier) mark(ctx context.Context, recipientID, actorID, kind, refID string) {
	if n.dedup == nil {
		return
	}
	if err := n.dedup.Mark(ctx, recipientID, actorID, kind, refID); err != nil {
		n.log.Warn().Err(err).Str("type", kind).Msg("failed to set notification dedup key")
	}
}

// emit persists the notification and reports whether it landed.
func (n *Notifier) emit(ctx context.Context, notification *domain.Notification) bool {
	notification.Read = false
	notification.CreatedAt = time.Now().UTC()

	if _, err := n.notifications.Create(ctx, notification); err != nil {
		metrics.NotificationsFailedTotal.WithLabelValues("persist").Inc()
		n.log.Error().Err(err).
			Str("type", notification.Type).
			Str("recipient_id", notification.UserID).
			Str("action_user_id", notification.ActionUserID).
			Msg("failed to persist notification")
		return false
	}

	metrics.NotificationsEmittedTotal.WithLabelValues(notification.Type).Inc()
	n.log.Debug().
		Str("type", notification.Type).
		Str("recipient_id", notification.UserID).
		Msg("notification emitted")
	return true
}

var _ ports.Notifier = (*Notifier)(nil)
