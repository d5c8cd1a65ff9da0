package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/ryobiguy/timesheet/internal/domain"
	"github.com/ryobiguy/timesheet/pkg/e"

	"github.com/redis/go-redis/v9"
)

// Outbox is the retry queue for events whose state-machine run failed.
// The event row itself is already persisted; only the apply step is redone.
type Outbox struct {
	client *redis.Client
	key    string
}

func NewOutbox(client *redis.Client, key string) *Outbox {
	return &Outbox{client: client, key: key}
}

func (q *Outbox) Enqueue(ctx context.Context, task domain.OutboxTask) error {
	b, err := json.Marshal(task)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *Outbox) BRPop(ctx context.Context, timeout time.Duration) (domain.OutboxTask, error) {
	var t domain.OutboxTask

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return t, e.ErrOutboxEmpty
		}
		return t, err
	}
	if len(res) < 2 {
		return t, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &t); err != nil {
		return t, err
	}
	return t, nil
}
