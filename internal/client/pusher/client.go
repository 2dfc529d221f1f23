package pusher

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/s21platform/broadcast-service/internal/config"
	"github.com/s21platform/broadcast-service/internal/model"
)

const (
	providerName = "Pusher"
	authVersion  = "1.0"

	maxChannels     = 100
	maxEventNameLen = 200
)

var (
	ErrTooManyChannels = errors.New("an event can be triggered on a maximum of 100 channels in a single call")
	ErrEventNameLength = errors.New("event name exceeds 200 characters")
	ErrPayloadTooLarge = errors.New("payload exceeds maximum size")
)

type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("unexpected status code: %d", e.Status)
	}
	return fmt.Sprintf("unexpected status code: %d: %s", e.Status, e.Body)
}

// IsClientError reports errors caused by the request itself: local limit
// checks and 4xx answers other than 429. They do not indicate an unhealthy
// provider.
func IsClientError(err error) bool {
	if err == nil {
		return true
	}

	if errors.Is(err, ErrTooManyChannels) || errors.Is(err, ErrEventNameLength) || errors.Is(err, ErrPayloadTooLarge) {
		return true
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status >= http.StatusBadRequest &&
			apiErr.Status < http.StatusInternalServerError &&
			apiErr.Status != http.StatusTooManyRequests
	}

	return false
}

type Signer interface {
	AppKey() string
	HexHMAC(message string) string
}

type Client struct {
	baseURL    string
	appID      string
	maxPayload int
	signer     Signer
	httpClient *http.Client
	now        func() time.Time
}

func New(cfg *config.Config, signer Signer) *Client {
	baseURL := cfg.Pusher.BaseURL
	if baseURL == "" {
		baseURL = fmt.Sprintf("https://api-%s.pusher.com", cfg.Pusher.Cluster)
	}

	return &Client{
		baseURL:    baseURL,
		appID:      cfg.Pusher.AppID,
		maxPayload: cfg.Pusher.MaxPayloadBytes,
		signer:     signer,
		httpClient: &http.Client{
			Timeout: cfg.Pusher.Timeout,
		},
		now: time.Now,
	}
}

func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func (c *Client) Name() string {
	return providerName
}

func (c *Client) Trigger(ctx context.Context, channels []string, event string, data []byte, excludeSocketID string) error {
	if len(channels) > maxChannels {
		return ErrTooManyChannels
	}

	if len(event) > maxEventNameLen {
		return ErrEventNameLength
	}

	if c.maxPayload > 0 && len(data) > c.maxPayload {
		return fmt.Errorf("%w: %d > %d bytes", ErrPayloadTooLarge, len(data), c.maxPayload)
	}

	payload := model.PusherEvent{
		Name:     event,
		Data:     string(data),
		Channels: channels,
		SocketID: excludeSocketID,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	path := fmt.Sprintf("/apps/%s/events", c.appID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path+"?"+c.signQuery(http.MethodPost, path, jsonData), bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &APIError{Status: resp.StatusCode, Body: string(bytes.TrimSpace(body))}
	}

	return nil
}

// signQuery builds the authenticated query string for a REST call. Values are
// sorted by url.Values.Encode, which is the order the signature requires.
func (c *Client) signQuery(method, path string, body []byte) string {
	sum := md5.Sum(body)

	params := url.Values{}
	params.Set("auth_key", c.signer.AppKey())
	params.Set("auth_timestamp", strconv.FormatInt(c.now().Unix(), 10))
	params.Set("auth_version", authVersion)
	params.Set("body_md5", hex.EncodeToString(sum[:]))

	toSign := method + "\n" + path + "\n" + params.Encode()
	params.Set("auth_signature", c.signer.HexHMAC(toSign))

	return params.Encode()
}
