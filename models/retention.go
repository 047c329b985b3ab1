package models

// RetentionConfig holds the cleanup thresholds read from the system_config
// table. Missing keys fall back to the defaults below.
//
// Invariants enforced by the cleanup engine:
//   - a single run never deletes more than FeedDeletionSafetyThreshold of
//     the local feed population;
//   - a single delete operation never carries more than
//     MaxIDsPerDeleteOperation ids.
type RetentionConfig struct {
	// ArticlesRetentionLimit is how many read articles are kept; older read
	// articles beyond this count become cleanup candidates.
	ArticlesRetentionLimit int `json:"articles_retention_limit"`

	// MaxArticlesPerCleanupBatch caps the candidate set of one cleanup run.
	MaxArticlesPerCleanupBatch int `json:"max_articles_per_cleanup_batch"`

	// MaxIDsPerDeleteOperation caps the id list of one bulk delete call.
	MaxIDsPerDeleteOperation int `json:"max_ids_per_delete_operation"`

	// FeedDeletionSafetyThreshold is the maximum fraction (0..1) of local
	// feeds one run may delete before feed cleanup is aborted.
	FeedDeletionSafetyThreshold float64 `json:"feed_deletion_safety_threshold"`
}

// DefaultRetentionConfig returns the thresholds used when system_config has
// no overrides.
func DefaultRetentionConfig() RetentionConfig {
	return RetentionConfig{
		ArticlesRetentionLimit:      1000,
		MaxArticlesPerCleanupBatch:  500,
		MaxIDsPerDeleteOperation:    100,
		FeedDeletionSafetyThreshold: 0.5,
	}
}

// Keys in system_config holding the retention thresholds.
const (
	ConfigKeyArticlesRetentionLimit      = "articles_retention_limit"
	ConfigKeyMaxArticlesPerCleanupBatch  = "max_articles_per_cleanup_batch"
	ConfigKeyMaxIDsPerDeleteOperation    = "max_ids_per_delete_operation"
	ConfigKeyFeedDeletionSafetyThreshold = "feed_deletion_safety_threshold"
)
