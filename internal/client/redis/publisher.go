package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/s21platform/broadcast-service/internal/config"
	"github.com/s21platform/broadcast-service/internal/model"
)

const (
	providerName       = "Redis"
	defaultPingTimeout = 2 * time.Second
)

// Publisher fans events out through Redis PUBLISH, one message per channel,
// sent in a single MULTI/EXEC round trip.
type Publisher struct {
	rdb    *redis.Client
	prefix string
}

func NewClient(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout

	rdb := redis.NewClient(opts)

	pingTimeout := cfg.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = defaultPingTimeout
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func New(rdb *redis.Client, prefix string) *Publisher {
	return &Publisher{
		rdb:    rdb,
		prefix: prefix,
	}
}

func (p *Publisher) Close() {
	_ = p.rdb.Close()
}

func (p *Publisher) Name() string {
	return providerName
}

func (p *Publisher) Trigger(ctx context.Context, channels []string, event string, data []byte, excludeSocketID string) error {
	msg, err := encode(event, data, excludeSocketID)
	if err != nil {
		return err
	}

	_, err = p.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, ch := range channels {
			pipe.Publish(ctx, p.prefix+ch, msg)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to publish: %w", err)
	}

	return nil
}

func encode(event string, data []byte, excludeSocketID string) ([]byte, error) {
	msg := model.RedisMessage{
		Event: event,
		Data:  json.RawMessage(data),
	}
	if excludeSocketID != "" {
		msg.Socket = &excludeSocketID
	}

	b, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return b, nil
}
