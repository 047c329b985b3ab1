package models

import (
	"database/sql"
	"time"
)

// SyncActionType identifies the kind of local mutation waiting to be pushed
// to the remote feed-aggregation service.
type SyncActionType string

const (
	ActionRead   SyncActionType = "read"
	ActionUnread SyncActionType = "unread"
	ActionStar   SyncActionType = "star"
	ActionUnstar SyncActionType = "unstar"
)

// Remote tag identifiers understood by the edit-tag endpoint.
const (
	TagRead    = "user/-/state/com.google/read"
	TagStarred = "user/-/state/com.google/starred"
)

// AllActionTypes lists every known action in the order the dispatcher
// processes groups. Keeping the order fixed makes dispatch deterministic.
var AllActionTypes = []SyncActionType{ActionRead, ActionUnread, ActionStar, ActionUnstar}

// Valid reports whether a is one of the four known action types.
func (a SyncActionType) Valid() bool {
	switch a {
	case ActionRead, ActionUnread, ActionStar, ActionUnstar:
		return true
	}
	return false
}

// Tag returns the remote tag this action manipulates and whether the tag is
// applied (true) or removed (false). The second return value is false for
// unknown action types.
func (a SyncActionType) Tag() (tag string, apply bool, ok bool) {
	switch a {
	case ActionRead:
		return TagRead, true, true
	case ActionUnread:
		return TagRead, false, true
	case ActionStar:
		return TagStarred, true, true
	case ActionUnstar:
		return TagStarred, false, true
	}
	return "", false, false
}

// SyncQueueItem is one pending local mutation persisted in the sync_queue
// table. Items are created on every local read/star change, have their
// SyncAttempts incremented on failed dispatch, and are deleted once the
// remote service confirms the batch they were part of.
type SyncQueueItem struct {
	ID            int64          `json:"id"`
	ActionType    SyncActionType `json:"action_type"`
	InoreaderID   string         `json:"inoreader_id"`
	SyncAttempts  int            `json:"sync_attempts"`
	CreatedAt     time.Time      `json:"created_at"`
	LastAttemptAt sql.NullTime   `json:"last_attempt_at"`
}

// SyncQueueStats is the monitoring snapshot returned by the operational
// stats endpoint.
type SyncQueueStats struct {
	TotalPending int64      `json:"total_pending"`
	FailedItems  int64      `json:"failed_items"`
	OldestItem   *time.Time `json:"oldest_item,omitempty"`
}
