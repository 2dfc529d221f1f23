package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/broadcast-service/internal/config"
	"github.com/s21platform/broadcast-service/internal/dispatch"
	"github.com/s21platform/broadcast-service/internal/model"
)

const (
	metricConsumed   = "events.consumed"
	metricDispatched = "events.dispatched"
	metricRejected   = "events.rejected"
	metricFailed     = "events.failed"
	metricDuration   = "events.dispatch_duration"
)

type Handler struct {
	dispatcher EventDispatcher
	validator  Validator
	metrics    Metrics
}

func New(dispatcher EventDispatcher, validator Validator, metrics Metrics) *Handler {
	return &Handler{
		dispatcher: dispatcher,
		validator:  validator,
		metrics:    metrics,
	}
}

// Handler decodes a broadcast request and dispatches it once. Failures are
// logged and counted but never returned, so the consumer does not redeliver.
func (h *Handler) Handler(ctx context.Context, in []byte) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("Handler")

	h.metrics.Increment(metricConsumed)

	var req model.BroadcastRequest
	if err := json.Unmarshal(in, &req); err != nil {
		h.metrics.Increment(metricRejected)
		logger.Error(fmt.Sprintf("failed to unmarshal message: %v", err))
		return nil
	}

	if err := h.validator.ValidateBroadcast(&req); err != nil {
		h.metrics.Increment(metricRejected)
		logger.Error(fmt.Sprintf("broadcast validation failed: %v", err))
		return nil
	}

	start := time.Now()
	err := h.dispatcher.Dispatch(ctx, dispatch.NewEvent(req.Channels, req.Event, req.Data))
	h.metrics.Timing(metricDuration, time.Since(start).Milliseconds())
	if err != nil {
		h.metrics.Increment(metricFailed)
		logger.Error(fmt.Sprintf("failed to broadcast event %s: %v", req.Event, err))
		return nil
	}

	h.metrics.Increment(metricDispatched)
	logger.Info(fmt.Sprintf("broadcast event %s to %d channels", req.Event, len(req.Channels)))

	return nil
}
