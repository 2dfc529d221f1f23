//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/s21platform/broadcast-service/internal/access"
	"github.com/s21platform/broadcast-service/internal/channel"
	"github.com/s21platform/broadcast-service/internal/dispatch"
	"github.com/s21platform/broadcast-service/internal/model"
)

type DBRepo interface {
	AddChannelMembers(ctx context.Context, channel string, members []model.ChannelMember) error
}

type AccessVerifier interface {
	Verify(ctx context.Context, req access.Request, ch channel.Name) (*access.Access, error)
}

type TokenSigner interface {
	Sign(ch channel.Name, socketID string, presence *model.PresenceData) (*model.AuthorizationToken, error)
}

type EventDispatcher interface {
	Dispatch(ctx context.Context, event dispatch.Event) error
}

type TokenIssuer interface {
	GenerateAccessToken(principal *model.Principal) (string, int64, error)
}

type Validator interface {
	ValidateAuthRequest(channelName, socketID, callback string) error
	ValidateBroadcast(req *model.BroadcastRequest) error
}
