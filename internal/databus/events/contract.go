//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package events

import (
	"context"

	"github.com/s21platform/broadcast-service/internal/dispatch"
	"github.com/s21platform/broadcast-service/internal/model"
)

type EventDispatcher interface {
	Dispatch(ctx context.Context, event dispatch.Event) error
}

type Validator interface {
	ValidateBroadcast(req *model.BroadcastRequest) error
}

type Metrics interface {
	Increment(bucket string)
	Timing(bucket string, value interface{})
}
