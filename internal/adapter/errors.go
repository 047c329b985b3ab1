package adapter

import "errors"

var (
	ErrUnauthorized      = errors.New("remote service rejected credentials")
	ErrRateLimited       = errors.New("remote service rate limit reached")
	ErrBadRequest        = errors.New("remote service rejected request")
	ErrRemoteUnavailable = errors.New("remote service unavailable")
	ErrUnknownActionType = errors.New("unknown sync action type")
	ErrTokenExchange     = errors.New("oauth token exchange failed")
)
