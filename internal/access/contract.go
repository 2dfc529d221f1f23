//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package access

import (
	"context"

	"github.com/s21platform/broadcast-service/internal/model"
)

type ChannelAuthorizer interface {
	CanAccess(ctx context.Context, principal *model.Principal, params Params) (Decision, error)
}

type MembershipRepo interface {
	IsChannelMember(ctx context.Context, channel, userID string) (bool, error)
	GetMemberInfo(ctx context.Context, channel, userID string) (*model.MemberInfo, error)
}
