package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-chat-seal/internal/config"
	"github.com/MKhiriev/go-chat-seal/models"
	"github.com/go-resty/resty/v2"
)

type httpChatAdapter struct {
	client *resty.Client
	apiKey string

	mu      sync.RWMutex
	token   string
	current *models.User
}

// NewHTTPChatAdapter constructs an HTTP/REST implementation of [ChatAdapter]
// from the chat transport configuration. It normalises the base URL and sets
// the API key header sent with every request.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPChatAdapter(cfg config.Chat) (ChatAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid chat base url: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("apiKey", cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &httpChatAdapter{client: cli, apiKey: cfg.APIKey}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// dataEnvelope is the {"data": ...} wrapper the chat REST API puts around
// every response body.
type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

type authTokenResponse struct {
	AuthToken string      `json:"authToken"`
	User      models.User `json:"user"`
}

// Login implements [ChatAdapter]. It POSTs to /v3/users/{uid}/auth_tokens,
// stores the returned auth token for subsequent requests, and caches the
// returned profile as the current user.
func (h *httpChatAdapter) Login(ctx context.Context, uid string) (models.User, error) {
	var out dataEnvelope[authTokenResponse]

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&out).
		Post("/v3/users/" + url.PathEscape(uid) + "/auth_tokens")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	user := out.Data.User
	if user.UID == "" {
		user.UID = uid
	}

	cached := user.Clone()

	h.mu.Lock()
	h.token = strings.TrimSpace(out.Data.AuthToken)
	h.current = &cached
	h.mu.Unlock()

	return user, nil
}

// CurrentUser implements [ChatAdapter]. It returns a copy of the cached
// authenticated user, or nil before Login succeeds. The copy's metadata map
// is independent of the cache, so callers may mutate it freely.
func (h *httpChatAdapter) CurrentUser() *models.User {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return nil
	}
	u := h.current.Clone()
	return &u
}

// GetUser implements [ChatAdapter]. It GETs /v3/users/{uid} and returns the
// decoded profile including its metadata blob.
func (h *httpChatAdapter) GetUser(ctx context.Context, uid string) (models.User, error) {
	var out dataEnvelope[models.User]

	resp, err := h.authedRequest(ctx).
		SetResult(&out).
		Get("/v3/users/" + url.PathEscape(uid))
	if err != nil {
		return models.User{}, fmt.Errorf("get user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return out.Data, nil
}

// UpdateUserMetadata implements [ChatAdapter]. It PUTs the full metadata blob
// to /v3/users/{uid} and refreshes the cached current user when the uid
// matches. The server replaces the whole metadata map; callers own the
// read-modify-write cycle.
func (h *httpChatAdapter) UpdateUserMetadata(ctx context.Context, user models.User) (models.User, error) {
	if user.UID == "" {
		return models.User{}, fmt.Errorf("%w: empty uid", ErrBadRequest)
	}

	var out dataEnvelope[models.User]

	resp, err := h.authedRequest(ctx).
		SetBody(map[string]any{"metadata": user.Metadata}).
		SetResult(&out).
		Put("/v3/users/" + url.PathEscape(user.UID))
	if err != nil {
		return models.User{}, fmt.Errorf("update user metadata request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	updated := out.Data
	if updated.UID == "" {
		updated = user
	}

	h.mu.Lock()
	if h.current != nil && h.current.UID == updated.UID {
		u := updated.Clone()
		h.current = &u
	}
	h.mu.Unlock()

	return updated, nil
}

// SendMessage implements [ChatAdapter]. It POSTs the message to /v3/messages
// and returns it with server-assigned fields (ID, SentAt) populated.
func (h *httpChatAdapter) SendMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	var out dataEnvelope[models.Message]

	resp, err := h.authedRequest(ctx).
		SetBody(msg).
		SetResult(&out).
		Post("/v3/messages")
	if err != nil {
		return models.Message{}, fmt.Errorf("send message request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Message{}, err
	}

	sent := out.Data
	if sent.ID == "" {
		sent = msg
	}
	return sent, nil
}

// FetchPreviousMessages implements [ChatAdapter]. It GETs /v3/messages with
// the filter encoded as query parameters and returns the decoded messages,
// newest first.
func (h *httpChatAdapter) FetchPreviousMessages(ctx context.Context, filter models.MessageFilter) ([]models.Message, error) {
	req := h.authedRequest(ctx)

	if filter.PeerUID != "" {
		req.SetQueryParam("uid", filter.PeerUID)
	}
	if len(filter.Types) > 0 {
		req.SetQueryParam("types", strings.Join(filter.Types, ","))
	}
	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(filter.Limit))
	}
	if filter.HideDeleted {
		req.SetQueryParam("hideDeleted", "true")
	}

	var out dataEnvelope[[]models.Message]

	resp, err := req.
		SetResult(&out).
		Get("/v3/messages")
	if err != nil {
		return nil, fmt.Errorf("fetch previous messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return out.Data, nil
}

func (h *httpChatAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	h.mu.RLock()
	token := h.token
	h.mu.RUnlock()

	if token != "" {
		req.SetHeader("authToken", token)
	}
	return req
}
