package models

import (
	"database/sql"
	"time"
)

// Article is the local mirror of one remote article. Read and Starred are
// the two flags the sync engine reconciles with the remote service.
type Article struct {
	ID          int64         `json:"id"`
	FeedID      sql.NullInt64 `json:"feed_id"`
	InoreaderID string        `json:"inoreader_id"`
	Title       string        `json:"title"`
	URL         string        `json:"url"`
	Author      string        `json:"author"`
	Read        bool          `json:"read"`
	Starred     bool          `json:"starred"`
	PublishedAt sql.NullTime  `json:"published_at"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// ArticleState is the minimal projection of an article used during pull-sync
// divergence detection: just the two reconciled flags plus identifiers.
type ArticleState struct {
	ID          int64
	InoreaderID string
	Read        bool
	Starred     bool
}
