package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/s21platform/broadcast-service/internal/channel"
	"github.com/s21platform/broadcast-service/internal/model"
)

var ErrAccessDenied = errors.New("access denied")

type Request struct {
	ChannelName string
	SocketID    string
	Principal   *model.Principal
}

type Access struct {
	Channel   channel.Name
	Principal *model.Principal
	// Presence is set for presence channels only.
	Presence *model.PresenceData
}

// Verifier decides whether a principal may join a channel. Authorizers are
// registered at startup; Verify is safe for concurrent use afterwards.
type Verifier struct {
	routes []*route
}

func NewVerifier() *Verifier {
	return &Verifier{}
}

// Register binds an authorizer to a canonical channel pattern such as
// "orders.{orderID}". Patterns are tried in registration order.
func (v *Verifier) Register(pattern string, authorizer ChannelAuthorizer) error {
	r, err := compilePattern(pattern)
	if err != nil {
		return err
	}
	r.authorizer = authorizer
	v.routes = append(v.routes, r)
	return nil
}

func (v *Verifier) Patterns() []string {
	patterns := make([]string, 0, len(v.routes))
	for _, r := range v.routes {
		patterns = append(patterns, r.pattern)
	}
	return patterns
}

func (v *Verifier) Verify(ctx context.Context, req Request, ch channel.Name) (*Access, error) {
	if req.ChannelName == "" || ch.Raw == "" {
		return nil, fmt.Errorf("%w: channel name is required", ErrAccessDenied)
	}

	if ch.IsGuarded() && req.Principal == nil {
		return nil, fmt.Errorf("%w: no principal for guarded channel %s", ErrAccessDenied, ch.Raw)
	}

	authorizer, params, ok := v.lookup(ch.Canonical)
	if !ok {
		if ch.IsGuarded() {
			return nil, fmt.Errorf("%w: no authorizer for channel %s", ErrAccessDenied, ch.Raw)
		}
		return &Access{Channel: ch, Principal: req.Principal}, nil
	}

	decision, err := authorizer.CanAccess(ctx, req.Principal, params)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize channel %s: %w", ch.Raw, err)
	}

	if !decision.Allowed {
		return nil, fmt.Errorf("%w: channel %s", ErrAccessDenied, ch.Raw)
	}

	access := &Access{Channel: ch, Principal: req.Principal}
	if ch.Kind == channel.Presence {
		access.Presence = &model.PresenceData{
			UserID:   req.Principal.Identifier(),
			UserInfo: presenceInfo(decision, req.Principal),
		}
	}

	return access, nil
}

// presenceInfo prefers what the authorizer returned and falls back to the
// info carried by the principal's token.
func presenceInfo(decision Decision, principal *model.Principal) any {
	if decision.Info != nil {
		return decision.Info
	}
	if len(principal.Info) > 0 {
		return principal.Info
	}
	return nil
}

func (v *Verifier) lookup(canonical string) (ChannelAuthorizer, Params, bool) {
	for _, r := range v.routes {
		if params, ok := r.match(canonical); ok {
			return r.authorizer, params, true
		}
	}
	return nil, nil, false
}
