package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/dkotelnikov/feedsync/internal/config"
	"github.com/dkotelnikov/feedsync/internal/logger"
	"github.com/dkotelnikov/feedsync/internal/utils"
	"github.com/dkotelnikov/feedsync/models"
	"github.com/go-resty/resty/v2"
)

// API paths of the Google Reader compatible surface.
const (
	editTagPath          = "/reader/api/0/edit-tag"
	subscriptionListPath = "/reader/api/0/subscription/list"
	streamContentsPath   = "/reader/api/0/stream/contents/user/-/state/com.google/reading-list"
)

type httpInoreaderAdapter struct {
	client      *utils.HTTPClient
	tokenSource TokenSource

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPInoreaderAdapter constructs an HTTP/REST implementation of
// [InoreaderAdapter]. It normalises and validates the base URL from
// cfg.APIBaseURL and configures the underlying HTTP client with the resolved
// base URL and request timeout. Token refresh on 401 is delegated to
// tokenSource.
//
// Returns an error if cfg.APIBaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPInoreaderAdapter(cfg config.Adapter, tokenSource TokenSource, logger *logger.Logger) (InoreaderAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpInoreaderAdapter{client: client, tokenSource: tokenSource, logger: logger}, nil
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

// SetToken implements [InoreaderAdapter]. It stores token
// (whitespace-trimmed) for use in the Authorization header of all subsequent
// authenticated requests.
func (h *httpInoreaderAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [InoreaderAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpInoreaderAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// EditTag implements [InoreaderAdapter]. It POSTs the item ids and the tag
// derived from action to POST /reader/api/0/edit-tag as form data. All ids of
// the batch share one add ("a") or remove ("r") tag parameter, so one call
// confirms or fails the whole batch atomically from the caller's view.
func (h *httpInoreaderAdapter) EditTag(ctx context.Context, action models.SyncActionType, inoreaderIDs []string) error {
	tag, apply, ok := action.Tag()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownActionType, action)
	}
	if len(inoreaderIDs) == 0 {
		return nil
	}

	form := url.Values{}
	for _, id := range inoreaderIDs {
		form.Add("i", id)
	}
	if apply {
		form.Set("a", tag)
	} else {
		form.Set("r", tag)
	}

	resp, err := h.doWithAuth(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/x-www-form-urlencoded").
			SetBody(form.Encode()).
			Post(editTagPath)
	})
	if err != nil {
		return fmt.Errorf("edit tag request: %w", err)
	}

	return mapHTTPError(resp)
}

// SubscriptionList implements [InoreaderAdapter]. It GETs the subscription
// list endpoint and decodes the JSON envelope.
func (h *httpInoreaderAdapter) SubscriptionList(ctx context.Context) (models.SubscriptionList, error) {
	resp, err := h.doWithAuth(ctx, func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetQueryParam("output", "json").
			Get(subscriptionListPath)
	})
	if err != nil {
		return models.SubscriptionList{}, fmt.Errorf("subscription list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SubscriptionList{}, err
	}

	var list models.SubscriptionList
	if err = json.Unmarshal(resp.Body(), &list); err != nil {
		return models.SubscriptionList{}, fmt.Errorf("decode subscription list response: %w", err)
	}

	return list, nil
}

// StreamContents implements [InoreaderAdapter]. It GETs one page of the
// reading-list stream, resuming from continuation when non-empty.
func (h *httpInoreaderAdapter) StreamContents(ctx context.Context, continuation string) (models.StreamContentsPage, error) {
	resp, err := h.doWithAuth(ctx, func(req *resty.Request) (*resty.Response, error) {
		req.SetQueryParam("output", "json")
		if continuation != "" {
			req.SetQueryParam("c", continuation)
		}
		return req.Get(streamContentsPath)
	})
	if err != nil {
		return models.StreamContentsPage{}, fmt.Errorf("stream contents request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StreamContentsPage{}, err
	}

	var page models.StreamContentsPage
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return models.StreamContentsPage{}, fmt.Errorf("decode stream contents response: %w", err)
	}

	return page, nil
}

// doWithAuth runs one request with the current bearer token. On 401 the
// token source is asked for a fresh token and the request is retried exactly
// once; a second 401 is surfaced to the caller.
func (h *httpInoreaderAdapter) doWithAuth(ctx context.Context, do func(req *resty.Request) (*resty.Response, error)) (*resty.Response, error) {
	if err := h.ensureToken(ctx); err != nil {
		return nil, err
	}

	resp, err := do(h.authedRequest(ctx))
	if err != nil {
		return nil, err
	}

	if respErr := mapHTTPError(resp); errors.Is(respErr, ErrUnauthorized) && h.tokenSource != nil {
		log := logger.FromContext(ctx)
		log.Debug().
			Str("func", "httpInoreaderAdapter.doWithAuth").
			Msg("access token rejected, refreshing and retrying once")

		token, refreshErr := h.tokenSource.Refresh(ctx)
		if refreshErr != nil {
			return nil, fmt.Errorf("refresh after unauthorized: %w", refreshErr)
		}
		h.SetToken(token)

		return do(h.authedRequest(ctx))
	}

	return resp, nil
}

func (h *httpInoreaderAdapter) ensureToken(ctx context.Context) error {
	if h.Token() != "" || h.tokenSource == nil {
		return nil
	}

	token, err := h.tokenSource.Token(ctx)
	if err != nil {
		return fmt.Errorf("obtain access token: %w", err)
	}
	h.SetToken(token)

	return nil
}

func (h *httpInoreaderAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
