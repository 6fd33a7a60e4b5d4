package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jobzen/dashboard/internal/core/domain"
	"github.com/jobzen/dashboard/internal/core/ports"
)

const toastTTL = 10 * time.Minute

// ToastQueue buffers toasts raised before a redirect until the next page
// drains them.
// Key format: toasts:<session_id>
type ToastQueue struct {
	client *redis.Client
}

var _ ports.ToastQueue = (*ToastQueue)(nil)

// NewToastQueue creates a ToastQueue wrapping the given Redis client.
func NewToastQueue(client *redis.Client) *ToastQueue {
	return &ToastQueue{client: client}
}

// Push appends t and refreshes the list expiry.
func (q *ToastQueue) Push(ctx context.Context, sessionID string, t domain.Toast) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal toast: %w", err)
	}
	key := q.key(sessionID)
	_, err = q.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.RPush(ctx, key, raw)
		p.Expire(ctx, key, toastTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("push toast: %w", err)
	}
	return nil
}

// Drain returns the queued toasts in push order and empties the queue.
func (q *ToastQueue) Drain(ctx context.Context, sessionID string) ([]domain.Toast, error) {
	key := q.key(sessionID)
	var items *redis.StringSliceCmd
	_, err := q.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		items = p.LRange(ctx, key, 0, -1)
		p.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("drain toasts: %w", err)
	}

	toasts := make([]domain.Toast, 0, len(items.Val()))
	for _, item := range items.Val() {
		var t domain.Toast
		if err := json.Unmarshal([]byte(item), &t); err != nil {
			continue
		}
		toasts = append(toasts, t)
	}
	return toasts, nil
}

func (q *ToastQueue) key(sessionID string) string {
	return "toasts:" + sessionID
}
