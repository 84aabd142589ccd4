package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

const outboxKey = "sf:outbox"

// RedisOutbox keeps pending events in a redis list. Appends go to the
// left, the worker pops from the right, so the list drains oldest first.
type RedisOutbox struct {
	rdb *redis.Client
}

func NewRedisOutbox(rdb *redis.Client) *RedisOutbox {
	return &RedisOutbox{rdb: rdb}
}

func (o *RedisOutbox) Append(ctx context.Context, e Event) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return o.rdb.LPush(ctx, outboxKey, raw).Err()
}

func (o *RedisOutbox) PopBatch(ctx context.Context, limit int) ([]Event, error) {
	out := make([]Event, 0, limit)
	for len(out) < limit {
		raw, err := o.rdb.RPop(ctx, outboxKey).Bytes()
		if err == redis.Nil {
			break
		}
		if err != nil {
			return out, err
		}
		var e Event
		if err := json.Unmarshal(raw, &e); err != nil {
			// drop undecodable entries instead of wedging the queue
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (o *RedisOutbox) Requeue(ctx context.Context, e Event) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return o.rdb.RPush(ctx, outboxKey, raw).Err()
}
