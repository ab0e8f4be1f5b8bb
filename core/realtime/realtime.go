package realtime

import (
	"context"

	"github.com/devlupca-cloud/njob-creator-sub000/core/logger"

	"github.com/redis/go-redis/v9"
)

// Hub is the push-triggers-pull refresh channel: a publish on a topic tells
// subscribed clients to refetch the affected resource. Payloads carry no state
// of their own; the fetch path stays authoritative.
type Hub interface {
	Publish(ctx context.Context, topic string, payload string) error
	// Subscribe invokes onEvent for every message on the topic until the
	// returned cancel function is called.
	Subscribe(ctx context.Context, topic string, onEvent func(payload string)) (func(), error)
}

type redisHub struct {
	client *redis.Client
}

func NewHub(client *redis.Client) Hub {
	return &redisHub{client: client}
}

func (h *redisHub) Publish(ctx context.Context, topic string, payload string) error {
	return h.client.Publish(ctx, topic, payload).Err()
}

func (h *redisHub) Subscribe(ctx context.Context, topic string, onEvent func(payload string)) (func(), error) {
	sub := h.client.Subscribe(ctx, topic)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	ch := sub.Channel()
	done := make(chan struct{})

	go func() {
		for {
			select {
			case msg, ok := <-ch:
				if !ok {
					return
				}
				onEvent(msg.Payload)
			case <-done:
				return
			}
		}
	}()

	cancel := func() {
		close(done)
		if err := sub.Close(); err != nil {
			logger.Warn("Realtime:Subscribe:Close", "topic", topic, "error", err)
		}
	}
	return cancel, nil
}
