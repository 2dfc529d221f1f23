package provider

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/broadcast-service/internal/client/pusher"
	"github.com/s21platform/broadcast-service/internal/client/redis"
	"github.com/s21platform/broadcast-service/internal/config"
	"github.com/s21platform/broadcast-service/internal/dispatch"
	"github.com/s21platform/broadcast-service/internal/signer"
)

// Broadcaster is the configured provider behind a circuit breaker.
type Broadcaster struct {
	*dispatch.BreakerProvider
	close func()
}

func (b *Broadcaster) Close() {
	b.close()
}

// New builds the provider selected by cfg.Broadcast.Driver.
func New(ctx context.Context, cfg *config.Config) (*Broadcaster, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	var (
		provider     dispatch.Provider
		closeFn      func()
		isSuccessful func(err error) bool
	)

	switch cfg.Broadcast.Driver {
	case config.DriverPusher:
		restSigner := signer.New(Credentials(cfg))
		if err := restSigner.Check(); err != nil {
			return nil, fmt.Errorf("invalid pusher credentials: %w", err)
		}
		client := pusher.New(cfg, restSigner)
		provider, closeFn, isSuccessful = client, client.Close, pusher.IsClientError
	case config.DriverRedis:
		rdb, err := redis.NewClient(ctx, cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		publisher := redis.New(rdb, cfg.Redis.Prefix)
		provider, closeFn = publisher, publisher.Close
	default:
		return nil, fmt.Errorf("unknown broadcast driver %q", cfg.Broadcast.Driver)
	}

	breaker := dispatch.NewBreakerProvider(provider, dispatch.BreakerSettings{
		FailureThreshold: cfg.Broadcast.BreakerFailureThreshold,
		ResetTimeout:     cfg.Broadcast.BreakerResetTimeout,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn(fmt.Sprintf("%s breaker changed state from %s to %s", name, from, to))
		},
		IsSuccessful: isSuccessful,
	})

	return &Broadcaster{BreakerProvider: breaker, close: closeFn}, nil
}

func Credentials(cfg *config.Config) signer.Credentials {
	return signer.Credentials{
		AppKey:              cfg.Pusher.Key,
		Secret:              cfg.Pusher.Secret,
		EncryptionMasterKey: cfg.Pusher.EncryptionMasterKey,
	}
}
