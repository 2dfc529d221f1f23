package model

import "encoding/json"

// SocketKey is the payload key carrying the socket id excluded from a broadcast.
const SocketKey = "socket"

// BroadcastRequest is the application-facing dispatch input, shared by the
// HTTP events route and the kafka worker.
type BroadcastRequest struct {
	Channels []string       `json:"channels"`
	Event    string         `json:"event"`
	Data     map[string]any `json:"data"`
}

type PusherEvent struct {
	Name     string   `json:"name"`
	Data     string   `json:"data"`
	Channels []string `json:"channels"`
	SocketID string   `json:"socket_id,omitempty"`
}

type RedisMessage struct {
	Event  string          `json:"event"`
	Data   json.RawMessage `json:"data"`
	Socket *string         `json:"socket"`
}
