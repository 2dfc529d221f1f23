package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/s21platform/broadcast-service/internal/channel"
	"github.com/s21platform/broadcast-service/internal/model"
)

var ErrNoChannels = errors.New("no channels to broadcast to")

type BroadcastError struct {
	Provider string
	Err      error
}

func (e *BroadcastError) Error() string {
	return fmt.Sprintf("%s error: %s.", e.Provider, strings.TrimSuffix(e.Err.Error(), "."))
}

func (e *BroadcastError) Unwrap() error {
	return e.Err
}

type Event struct {
	Channels        []channel.Name
	Name            string
	Payload         map[string]any
	ExcludeSocketID string
}

// NewEvent classifies the channel names and moves the "socket" payload key,
// if any, into ExcludeSocketID. The caller's payload is not modified.
func NewEvent(channels []string, name string, payload map[string]any) Event {
	data := make(map[string]any, len(payload))
	for k, v := range payload {
		data[k] = v
	}

	var socket string
	if v, ok := data[model.SocketKey]; ok {
		if s, ok := v.(string); ok {
			socket = s
		}
		delete(data, model.SocketKey)
	}

	return Event{
		Channels:        channel.ClassifyAll(channels),
		Name:            name,
		Payload:         data,
		ExcludeSocketID: socket,
	}
}

type Dispatcher struct {
	provider Provider
}

func New(provider Provider) *Dispatcher {
	return &Dispatcher{
		provider: provider,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, event Event) error {
	channels := WireNames(event.Channels)
	if len(channels) == 0 {
		return ErrNoChannels
	}

	payload := event.Payload
	if payload == nil {
		payload = map[string]any{}
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return &BroadcastError{Provider: d.provider.Name(), Err: fmt.Errorf("failed to marshal payload: %w", err)}
	}

	if err := d.provider.Trigger(ctx, channels, event.Name, data, event.ExcludeSocketID); err != nil {
		return &BroadcastError{Provider: d.provider.Name(), Err: err}
	}

	return nil
}

// WireNames formats channels for the provider, dropping duplicates while
// keeping first-seen order.
func WireNames(channels []channel.Name) []string {
	seen := make(map[string]struct{}, len(channels))
	names := make([]string, 0, len(channels))

	for _, ch := range channels {
		name := ch.Format()
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	return names
}
