package rest

import "github.com/s21platform/broadcast-service/internal/model"

type AuthRequest struct {
	ChannelName string `json:"channel_name"`
	SocketID    string `json:"socket_id"`
	Callback    string `json:"callback,omitempty"`
}

type AddMembersRequest struct {
	Members []Member `json:"members"`
}

type Member struct {
	UserID   string `json:"user_id"`
	Nickname string `json:"nickname"`
}

type IssueTokenRequest struct {
	UserID      string         `json:"user_id"`
	BroadcastID string         `json:"broadcast_id,omitempty"`
	UserInfo    map[string]any `json:"user_info,omitempty"`
}

type IssueTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type Error struct {
	Error string `json:"error"`
}

func (m Member) toModel() model.ChannelMember {
	return model.ChannelMember{
		UserID:   m.UserID,
		Nickname: m.Nickname,
	}
}
