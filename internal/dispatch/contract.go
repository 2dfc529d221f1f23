//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package dispatch

import "context"

// Provider performs one fan-out request against the pub/sub transport.
// Either every listed channel is triggered or an error is returned.
type Provider interface {
	Name() string
	Trigger(ctx context.Context, channels []string, event string, data []byte, excludeSocketID string) error
}
