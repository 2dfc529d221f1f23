package validator

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/s21platform/broadcast-service/internal/model"
	"github.com/s21platform/broadcast-service/internal/signer"
)

const maxChannelsPerEvent = 100

var callbackPattern = regexp.MustCompile(`^[a-zA-Z_$][0-9a-zA-Z_$]*(\.[a-zA-Z_$][0-9a-zA-Z_$]*|\[\d+\])*$`)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateAuthRequest checks request shape only. An empty channel name is left
// to the access verifier, which denies it.
func (v *Validator) ValidateAuthRequest(channelName, socketID, callback string) error {
	if strings.TrimSpace(socketID) == "" {
		return fmt.Errorf("socket_id is required")
	}

	if err := signer.ValidateSocketID(socketID); err != nil {
		return err
	}

	if channelName != "" {
		if err := signer.ValidateChannel(channelName); err != nil {
			return err
		}
	}

	if callback != "" && !callbackPattern.MatchString(callback) {
		return fmt.Errorf("callback '%s' is not a valid javascript identifier", callback)
	}

	return nil
}

func (v *Validator) ValidateBroadcast(req *model.BroadcastRequest) error {
	if strings.TrimSpace(req.Event) == "" {
		return fmt.Errorf("event is required")
	}

	if len(req.Channels) == 0 {
		return fmt.Errorf("at least one channel is required")
	}

	if len(req.Channels) > maxChannelsPerEvent {
		return fmt.Errorf("at most %d channels are allowed, got %d", maxChannelsPerEvent, len(req.Channels))
	}

	for _, ch := range req.Channels {
		if err := signer.ValidateChannel(ch); err != nil {
			return err
		}
	}

	if socket, ok := req.Data[model.SocketKey]; ok {
		s, isString := socket.(string)
		if !isString {
			return fmt.Errorf("socket must be a string")
		}
		if err := signer.ValidateSocketID(s); err != nil {
			return err
		}
	}

	return nil
}
