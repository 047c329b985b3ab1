package models

// EnqueueRequest is the body of the enqueue-change operational endpoint.
type EnqueueRequest struct {
	Action      SyncActionType `json:"action"`
	InoreaderID string         `json:"inoreader_id"`
}

// OpsResponse is a generic status payload returned by trigger and
// maintenance endpoints.
type OpsResponse struct {
	Status  string `json:"status"`
	Removed int64  `json:"removed,omitempty"`
}
