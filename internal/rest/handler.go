package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/broadcast-service/internal/access"
	"github.com/s21platform/broadcast-service/internal/channel"
	"github.com/s21platform/broadcast-service/internal/config"
	"github.com/s21platform/broadcast-service/internal/dispatch"
	"github.com/s21platform/broadcast-service/internal/model"
	"github.com/s21platform/broadcast-service/internal/signer"
)

type Handler struct {
	repository DBRepo
	verifier   AccessVerifier
	signer     TokenSigner
	dispatcher EventDispatcher
	validator  Validator
	issuer     TokenIssuer
}

func New(
	repo DBRepo,
	verifier AccessVerifier,
	tokenSigner TokenSigner,
	dispatcher EventDispatcher,
	validator Validator,
	issuer TokenIssuer,
) *Handler {
	return &Handler{
		repository: repo,
		verifier:   verifier,
		signer:     tokenSigner,
		dispatcher: dispatcher,
		validator:  validator,
		issuer:     issuer,
	}
}

func (h *Handler) Auth(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Auth")

	req, err := decodeAuthRequest(r)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateAuthRequest(req.ChannelName, req.SocketID, req.Callback); err != nil {
		logger.Error(fmt.Sprintf("auth request validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("auth request validation failed: %v", err), http.StatusBadRequest)
		return
	}

	principal, _ := r.Context().Value(config.KeyPrincipal).(*model.Principal)
	ch := channel.Classify(req.ChannelName)

	granted, err := h.verifier.Verify(r.Context(), access.Request{
		ChannelName: req.ChannelName,
		SocketID:    req.SocketID,
		Principal:   principal,
	}, ch)
	if errors.Is(err, access.ErrAccessDenied) {
		logger.Warn(fmt.Sprintf("channel access denied: %v", err))
		h.writeError(w, "access denied", http.StatusForbidden)
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to verify channel access: %v", err))
		h.writeError(w, "failed to verify channel access", http.StatusInternalServerError)
		return
	}

	if !ch.IsGuarded() {
		h.writeAuth(w, req.Callback, struct{}{})
		return
	}

	token, err := h.signer.Sign(ch, req.SocketID, granted.Presence)
	if errors.Is(err, signer.ErrNotConfigured) {
		logger.Error(fmt.Sprintf("failed to sign channel token: %v", err))
		h.writeError(w, "broadcasting is not configured", http.StatusInternalServerError)
		return
	}
	if err != nil {
		logger.Error(fmt.Sprintf("failed to sign channel token: %v", err))
		h.writeError(w, fmt.Sprintf("failed to sign channel token: %v", err), http.StatusBadRequest)
		return
	}

	logger.Info(fmt.Sprintf("authorized %s channel %s for user %s", ch.Kind, ch.Raw, principal.AuthID))

	h.writeAuth(w, req.Callback, token)
}

func (h *Handler) Broadcast(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Broadcast")

	var req model.BroadcastRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateBroadcast(&req); err != nil {
		logger.Error(fmt.Sprintf("broadcast validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("broadcast validation failed: %v", err), http.StatusBadRequest)
		return
	}

	event := dispatch.NewEvent(req.Channels, req.Event, req.Data)

	err := h.dispatcher.Dispatch(r.Context(), event)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to broadcast event %s: %v", req.Event, err))

		var broadcastErr *dispatch.BroadcastError
		switch {
		case errors.As(err, &broadcastErr):
			h.writeError(w, broadcastErr.Error(), http.StatusBadGateway)
		case errors.Is(err, dispatch.ErrNoChannels):
			h.writeError(w, err.Error(), http.StatusBadRequest)
		default:
			h.writeError(w, fmt.Sprintf("failed to broadcast event: %v", err), http.StatusInternalServerError)
		}
		return
	}

	h.writeJSON(w, StatusResponse{Status: "ok"}, http.StatusOK)
}

func (h *Handler) AddChannelMembers(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("AddChannelMembers")

	canonical := chi.URLParam(r, "channel")
	if canonical == "" {
		logger.Error("channel is required")
		h.writeError(w, "channel is required", http.StatusBadRequest)
		return
	}

	var req AddMembersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	members := make([]model.ChannelMember, 0, len(req.Members))
	for _, m := range req.Members {
		if strings.TrimSpace(m.UserID) == "" {
			logger.Error("member user_id is required")
			h.writeError(w, "member user_id is required", http.StatusBadRequest)
			return
		}
		members = append(members, m.toModel())
	}

	if err := h.repository.AddChannelMembers(r.Context(), canonical, members); err != nil {
		logger.Error(fmt.Sprintf("failed to add channel members: %v", err))
		h.writeError(w, fmt.Sprintf("failed to add channel members: %v", err), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, StatusResponse{Status: "ok"}, http.StatusOK)
}

// IssueToken mints the bearer token a client presents to the auth route.
func (h *Handler) IssueToken(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("IssueToken")

	var req IssueTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.UserID) == "" {
		logger.Error("user_id is required")
		h.writeError(w, "user_id is required", http.StatusBadRequest)
		return
	}

	token, expiresAt, err := h.issuer.GenerateAccessToken(&model.Principal{
		AuthID:      req.UserID,
		BroadcastID: req.BroadcastID,
		Info:        req.UserInfo,
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate access token: %v", err))
		h.writeError(w, "failed to generate access token", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, IssueTokenResponse{AccessToken: token, ExpiresAt: expiresAt}, http.StatusOK)
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, StatusResponse{Status: "ok"}, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func decodeAuthRequest(r *http.Request) (*AuthRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "application/json" {
		var req AuthRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return nil, err
		}
		if req.Callback == "" {
			req.Callback = r.URL.Query().Get("callback")
		}
		return &req, nil
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	return &AuthRequest{
		ChannelName: r.Form.Get("channel_name"),
		SocketID:    r.Form.Get("socket_id"),
		Callback:    r.Form.Get("callback"),
	}, nil
}

// writeAuth writes the auth body, wrapped as a JSONP call when the legacy
// callback parameter is present.
func (h *Handler) writeAuth(w http.ResponseWriter, callback string, data interface{}) {
	if callback == "" {
		h.writeJSON(w, data, http.StatusOK)
		return
	}

	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/javascript")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "/**/%s(%s);", callback, body)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(Error{Error: message})
}
