package models

import "time"

// EntityType is the kind of locally removed row a deletion-tracking record
// refers to.
type EntityType string

const (
	EntityArticle EntityType = "article"
	EntityFeed    EntityType = "feed"
)

// DeletionTrackingRecord is a durable marker written whenever the cleanup
// engine removes a row. A later pull sync checks these markers so an
// intentionally deleted entity is never silently re-imported.
type DeletionTrackingRecord struct {
	EntityID   string     `json:"entity_id"`
	EntityType EntityType `json:"entity_type"`
	DeletedAt  time.Time  `json:"deleted_at"`
	Reason     string     `json:"reason"`
}
