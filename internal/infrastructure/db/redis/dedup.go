package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// NotificationDedup suppresses repeat notifications backed by Redis.
// Key format: notif:<recipient_id>:<actor_id>:<kind>:<ref_id>
//
// A key present means an identical notification was emitted within the TTL
// (think rapid like/unlike or follow/unfollow cycles) and should not be
// emitted again.
type NotificationDedup struct {
	client *redis.Client
}

// NewNotificationDedup creates a NotificationDedup wrapping the given
// Redis client.
func NewNotificationDedup(client *redis.Client) *NotificationDedup {
	return &NotificationDedup{client: client}
}

// IsDuplicate reports whether this exact notification was emitted recently.
func (d *NotificationDedup) IsDuplicate(ctx context.Context, recipientID, actorID, kind, refID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(recipientID, actorID, kind, refID)).Result()
	if err != nil {
		return false, fmt.Errorf("notification dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this notification has been emitted (expires after dedupTTL).
func (d *NotificationDedup) Mark(ctx context.Context, recipientID, actorID, kind, refID string) error {
	return d.client.Set(ctx, d.key(recipientID, actorID, kind, refID), "1", dedupTTL).Err()
}

func (d *NotificationDedup) key(recipientID, actorID, kind, refID string) string {
	return fmt.Sprintf("notif:%s:%s:%s:%s", recipientID, actorID, kind, refID)
}
