package signer

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/s21platform/broadcast-service/internal/channel"
	"github.com/s21platform/broadcast-service/internal/model"
)

const maxChannelLength = 164

var (
	ErrNotConfigured    = errors.New("signer is not configured")
	ErrInvalidSocketID  = errors.New("invalid socket id")
	ErrInvalidChannel   = errors.New("invalid channel name")
	ErrPresenceRequired = errors.New("presence data is required for presence channels")
	ErrNotGuarded       = errors.New("public channels are not signed")

	socketIDPattern    = regexp.MustCompile(`^\d+\.\d+$`)
	channelNamePattern = regexp.MustCompile(`^#?[-a-zA-Z0-9_=@,.;]+$`)
)

type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("signer configuration error: %s", e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrNotConfigured
}

type Credentials struct {
	AppKey string
	Secret string
	// EncryptionMasterKey is the base64 encoded 32 byte key used to derive
	// per-channel secrets for private-encrypted channels.
	EncryptionMasterKey string
}

type Signer struct {
	appKey    string
	secret    []byte
	masterKey []byte
	configErr error
}

func New(creds Credentials) *Signer {
	s := &Signer{
		appKey: creds.AppKey,
		secret: []byte(creds.Secret),
	}

	if creds.EncryptionMasterKey != "" {
		key, err := base64.StdEncoding.DecodeString(creds.EncryptionMasterKey)
		if err != nil || len(key) != 32 {
			s.configErr = &ConfigurationError{Reason: "encryption master key must be 32 bytes, base64 encoded"}
		}
		s.masterKey = key
	}

	return s
}

// Check reports configuration problems so callers can fail at startup.
func (s *Signer) Check() error {
	if s.configErr != nil {
		return s.configErr
	}
	if s.appKey == "" || len(s.secret) == 0 {
		return &ConfigurationError{Reason: "app key and secret are required"}
	}
	return nil
}

func (s *Signer) AppKey() string {
	return s.appKey
}

func (s *Signer) Sign(ch channel.Name, socketID string, presence *model.PresenceData) (*model.AuthorizationToken, error) {
	if err := s.Check(); err != nil {
		return nil, err
	}

	if !ch.IsGuarded() {
		return nil, ErrNotGuarded
	}

	if err := validate(ch.Raw, socketID); err != nil {
		return nil, err
	}

	if ch.Kind == channel.Presence {
		if presence == nil {
			return nil, ErrPresenceRequired
		}

		channelData, err := json.Marshal(presence)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal presence data: %w", err)
		}

		return &model.AuthorizationToken{
			Auth:        s.auth(socketID + ":" + ch.Raw + ":" + string(channelData)),
			ChannelData: string(channelData),
		}, nil
	}

	token := &model.AuthorizationToken{
		Auth: s.auth(socketID + ":" + ch.Raw),
	}

	if ch.IsEncrypted() {
		if s.masterKey == nil {
			return nil, &ConfigurationError{Reason: "encryption master key is required for encrypted channels"}
		}
		token.SharedSecret = s.sharedSecret(ch.Raw)
	}

	return token, nil
}

// Verify checks a token previously produced by Sign.
func (s *Signer) Verify(token *model.AuthorizationToken, ch channel.Name, socketID string) bool {
	if token == nil || s.Check() != nil {
		return false
	}

	toSign := socketID + ":" + ch.Raw
	if token.ChannelData != "" {
		toSign += ":" + token.ChannelData
	}

	return hmac.Equal([]byte(token.Auth), []byte(s.auth(toSign)))
}

// HexHMAC returns the hex encoded HMAC-SHA256 of message under the app secret.
func (s *Signer) HexHMAC(message string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(message))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *Signer) auth(message string) string {
	return s.appKey + ":" + s.HexHMAC(message)
}

func (s *Signer) sharedSecret(raw string) string {
	sum := sha256.Sum256(append([]byte(raw), s.masterKey...))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func validate(raw, socketID string) error {
	if err := ValidateSocketID(socketID); err != nil {
		return err
	}
	return ValidateChannel(raw)
}

// ValidateChannel reports whether raw is an acceptable provider channel name.
func ValidateChannel(raw string) error {
	if len(raw) > maxChannelLength || !channelNamePattern.MatchString(raw) {
		return fmt.Errorf("%w: %q", ErrInvalidChannel, raw)
	}
	return nil
}

// ValidateSocketID reports whether socketID has the provider's socket id shape.
func ValidateSocketID(socketID string) error {
	if !socketIDPattern.MatchString(socketID) {
		return fmt.Errorf("%w: %q", ErrInvalidSocketID, socketID)
	}
	return nil
}
