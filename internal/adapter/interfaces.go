// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

// Package adapter provides transport-layer abstractions for communicating
// with the remote feed-aggregation service (Inoreader-compatible API).
//
// The primary abstraction is [InoreaderAdapter], which decouples the sync
// engine from the wire protocol. The package ships an HTTP/REST
// implementation ([NewHTTPInoreaderAdapter]) backed by resty, plus an OAuth
// refresh-token [TokenSource].
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrRateLimited] for 429, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/dkotelnikov/feedsync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/inoreader_adapter_mock.go -package=mock

// InoreaderAdapter defines transport-agnostic communication with the remote
// feed-aggregation service. Implementations are responsible for
// serialisation, authentication header management, and mapping
// transport-level errors to the sentinel values defined in this package.
type InoreaderAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// EditTag applies or removes the remote tag corresponding to action for
	// the given item ids in a single request. The caller is responsible for
	// chunking ids to the configured batch size. Returns
	// [ErrUnknownActionType] if action does not map to a remote tag.
	EditTag(ctx context.Context, action models.SyncActionType, inoreaderIDs []string) error

	// SubscriptionList fetches the full remote subscription list.
	SubscriptionList(ctx context.Context) (models.SubscriptionList, error)

	// StreamContents fetches one page of the reading-list stream. A
	// non-empty continuation resumes a previous page sequence. The returned
	// page carries the next continuation token, empty on the last page.
	StreamContents(ctx context.Context, continuation string) (models.StreamContentsPage, error)
}

// TokenSource supplies OAuth access tokens for the remote service.
type TokenSource interface {
	// Token returns a valid access token, refreshing it first if the cached
	// one is missing or expired.
	Token(ctx context.Context) (string, error)

	// Refresh forces a refresh-token exchange and returns the new access
	// token. Used after the remote service rejects a request with 401.
	Refresh(ctx context.Context) (string, error)
}
