package http

import (
	"errors"
	"net/http"

	"github.com/dkotelnikov/feedsync/internal/adapter"
	"github.com/dkotelnikov/feedsync/internal/service"
	"github.com/dkotelnikov/feedsync/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrSyncInProgress: http.StatusConflict,

	adapter.ErrBadRequest:        http.StatusBadRequest,
	adapter.ErrUnauthorized:      http.StatusBadGateway,
	adapter.ErrRateLimited:       http.StatusTooManyRequests,
	adapter.ErrRemoteUnavailable: http.StatusBadGateway,
	adapter.ErrTokenExchange:     http.StatusBadGateway,

	store.ErrQueueItemNotFound:   http.StatusNotFound,
	store.ErrArticleNotFound:     http.StatusNotFound,
	store.ErrUsageRecordNotFound: http.StatusNotFound,
	store.ErrNothingToDelete:     http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
