package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/s21platform/broadcast-service/internal/model"
)

// MembershipAuthorizer grants access to members of a channel stored in the
// channel_members table, keyed by canonical channel name.
type MembershipAuthorizer struct {
	repo    MembershipRepo
	pattern string
}

func NewMembershipAuthorizer(repo MembershipRepo, pattern string) *MembershipAuthorizer {
	return &MembershipAuthorizer{
		repo:    repo,
		pattern: pattern,
	}
}

func (a *MembershipAuthorizer) CanAccess(ctx context.Context, principal *model.Principal, params Params) (Decision, error) {
	if principal == nil {
		return Deny(), nil
	}

	canonical := expand(a.pattern, params)

	isMember, err := a.repo.IsChannelMember(ctx, canonical, principal.AuthID)
	if err != nil {
		return Deny(), fmt.Errorf("failed to check channel membership: %w", err)
	}

	if !isMember {
		return Deny(), nil
	}

	info, err := a.repo.GetMemberInfo(ctx, canonical, principal.AuthID)
	if errors.Is(err, model.ErrMemberNotFound) {
		return Deny(), nil
	}
	if err != nil {
		return Deny(), fmt.Errorf("failed to get member info: %w", err)
	}

	return AllowWith(info), nil
}

func expand(pattern string, params Params) string {
	return placeholder.ReplaceAllStringFunc(pattern, func(m string) string {
		return params[m[1:len(m)-1]]
	})
}
