package models

import "time"

// ConflictType describes which of the reconciled flags diverged between the
// local article and the freshly pulled remote state.
type ConflictType string

const (
	ConflictReadStatus    ConflictType = "read_status"
	ConflictStarredStatus ConflictType = "starred_status"
	ConflictBoth          ConflictType = "both"
)

// SyncConflictLogEntry is one append-only record of a local/remote
// divergence detected during a pull sync. The resolution is always
// "remote", because the remote service exposes no per-item timestamps that
// would allow a real merge; the log exists so operators can audit how often
// local edits are silently discarded.
type SyncConflictLogEntry struct {
	ID            int64        `json:"id"`
	SyncSessionID string       `json:"sync_session_id"`
	ArticleID     int64        `json:"article_id"`
	ConflictType  ConflictType `json:"conflict_type"`
	LocalValue    string       `json:"local_value"`
	RemoteValue   string       `json:"remote_value"`
	Resolution    string       `json:"resolution"`
	Note          string       `json:"note"`
	CreatedAt     time.Time    `json:"created_at"`
}

// ResolutionRemote is the only resolution this engine ever records.
const ResolutionRemote = "remote"
