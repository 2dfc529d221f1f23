package model

import "github.com/golang-jwt/jwt/v5"

// Principal is the authenticated user behind an authorization request.
// BroadcastID, when set, is preferred over AuthID in presence payloads.
type Principal struct {
	AuthID      string
	BroadcastID string
	Info        map[string]any
}

func (p *Principal) Identifier() string {
	if p.BroadcastID != "" {
		return p.BroadcastID
	}
	return p.AuthID
}

type PrincipalClaims struct {
	jwt.RegisteredClaims

	BroadcastID string         `json:"broadcast_id,omitempty"`
	Info        map[string]any `json:"info,omitempty"`
}
