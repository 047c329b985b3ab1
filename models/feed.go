package models

import "time"

// Feed is the local mirror of one remote subscription.
type Feed struct {
	ID          int64     `json:"id"`
	InoreaderID string    `json:"inoreader_id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	SiteURL     string    `json:"site_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
