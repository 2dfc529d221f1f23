package dispatch

import (
	"context"
	"time"

	"github.com/sony/gobreaker"
)

type BreakerSettings struct {
	FailureThreshold uint32
	ResetTimeout     time.Duration
	OnStateChange    func(name string, from, to gobreaker.State)
	// IsSuccessful reports errors that say nothing about provider health,
	// such as rejected input. Nil means only a nil error counts as success.
	IsSuccessful func(err error) bool
}

// BreakerProvider fails fast while the wrapped provider keeps failing.
// It never retries a call.
type BreakerProvider struct {
	provider Provider
	breaker  *gobreaker.CircuitBreaker
}

func NewBreakerProvider(provider Provider, settings BreakerSettings) *BreakerProvider {
	threshold := settings.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	return &BreakerProvider{
		provider: provider,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        provider.Name(),
			MaxRequests: 1,
			Timeout:     settings.ResetTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= threshold
			},
			OnStateChange: settings.OnStateChange,
			IsSuccessful:  settings.IsSuccessful,
		}),
	}
}

func (b *BreakerProvider) Name() string {
	return b.provider.Name()
}

func (b *BreakerProvider) State() gobreaker.State {
	return b.breaker.State()
}

func (b *BreakerProvider) Trigger(ctx context.Context, channels []string, event string, data []byte, excludeSocketID string) error {
	_, err := b.breaker.Execute(func() (interface{}, error) {
		return nil, b.provider.Trigger(ctx, channels, event, data, excludeSocketID)
	})
	return err
}
