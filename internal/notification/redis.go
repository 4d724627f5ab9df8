package notification

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// Channel is the topic assignment events are published to.
const Channel = "task"

type RedisPublisher struct {
	client *redis.Client
}

var _ Publisher = (*RedisPublisher)(nil)

func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return p.client.Publish(ctx, Channel, payload).Err()
}
