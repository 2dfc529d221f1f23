package model

import "errors"

var ErrMemberNotFound = errors.New("channel member not found")

type ChannelMember struct {
	UserID   string
	Nickname string
}

type MemberInfo struct {
	UserID    string `db:"user_id" json:"-"`
	Nickname  string `db:"nickname" json:"nickname"`
	AvatarURL string `db:"avatar_url" json:"avatar_url,omitempty"`
}
