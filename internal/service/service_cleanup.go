package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dkotelnikov/feedsync/internal/adapter"
	"github.com/dkotelnikov/feedsync/internal/logger"
	"github.com/dkotelnikov/feedsync/internal/store"
	"github.com/dkotelnikov/feedsync/models"
)

// Reasons recorded with deletion-tracking markers.
const (
	reasonRetention    = "read article beyond retention limit"
	reasonUnsubscribed = "feed removed from remote subscriptions"
)

// cleanupService is the concrete implementation of [CleanupService].
//
// Articles and feeds are cleaned independently: a failure in one pass never
// blocks the other. Every deleted row gets a deletion-tracking marker
// written BEFORE the delete, so a crash between the two leaves a harmless
// marker rather than a resurrectable article.
type cleanupService struct {
	articles  store.ArticleRepository
	feeds     store.FeedRepository
	deletions store.DeletionTrackingRepository
	config    store.ConfigRepository
	usage     store.UsageRepository
	remote    adapter.InoreaderAdapter

	now func() time.Time

	logger *logger.Logger
}

// NewCleanupService constructs a [CleanupService] over the given
// repositories and remote adapter.
func NewCleanupService(storages *store.Storages, remote adapter.InoreaderAdapter, logger *logger.Logger) CleanupService {
	return &cleanupService{
		articles:  storages.Articles,
		feeds:     storages.Feeds,
		deletions: storages.Deletions,
		config:    storages.Config,
		usage:     storages.Usage,
		remote:    remote,
		now:       time.Now,
		logger:    logger,
	}
}

// RunCleanup implements [CleanupService].
func (c *cleanupService) RunCleanup(ctx context.Context) error {
	log := logger.FromContext(ctx)

	cfg, err := c.config.GetRetentionConfig(ctx)
	if err != nil {
		return fmt.Errorf("load retention config: %w", err)
	}

	articleErr := c.cleanupArticles(ctx, cfg)
	if articleErr != nil {
		log.Err(articleErr).
			Str("func", "cleanupService.RunCleanup").
			Msg("article cleanup pass failed")
	}

	feedErr := c.cleanupFeeds(ctx, cfg)
	if feedErr != nil {
		log.Err(feedErr).
			Str("func", "cleanupService.RunCleanup").
			Msg("feed cleanup pass failed")
	}

	if articleErr != nil {
		return articleErr
	}
	return feedErr
}

// cleanupArticles removes read articles beyond the retention limit in chunks
// bounded by cfg.MaxIDsPerDeleteOperation. A failed chunk is skipped, the
// rest continue, and the run is reported as [ErrPartialCleanup].
func (c *cleanupService) cleanupArticles(ctx context.Context, cfg models.RetentionConfig) error {
	log := logger.FromContext(ctx)

	candidates, err := c.articles.GetCleanupCandidates(ctx, cfg.ArticlesRetentionLimit, cfg.MaxArticlesPerCleanupBatch)
	if err != nil {
		return fmt.Errorf("load cleanup candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil
	}

	var deleted int64
	partial := false

	for _, chunk := range chunkStates(candidates, cfg.MaxIDsPerDeleteOperation) {
		n, chunkErr := c.deleteArticleChunk(ctx, chunk)
		if chunkErr != nil {
			log.Err(chunkErr).
				Str("func", "cleanupService.cleanupArticles").
				Int("chunk_size", len(chunk)).
				Msg("delete chunk failed, continuing with remaining chunks")
			partial = true
			continue
		}
		deleted += n
	}

	log.Info().
		Str("func", "cleanupService.cleanupArticles").
		Int("candidates", len(candidates)).
		Int64("deleted", deleted).
		Msg("article cleanup pass finished")

	if partial {
		return fmt.Errorf("%w: %d of %d candidate articles removed", ErrPartialCleanup, deleted, len(candidates))
	}
	return nil
}

// deleteArticleChunk writes deletion markers for one chunk and then deletes
// the rows. Marker first: re-importing a deleted article is worse than a
// stray marker for an article that survived.
func (c *cleanupService) deleteArticleChunk(ctx context.Context, chunk []models.ArticleState) (int64, error) {
	now := c.now()

	records := make([]models.DeletionTrackingRecord, 0, len(chunk))
	ids := make([]int64, 0, len(chunk))
	for _, st := range chunk {
		records = append(records, models.DeletionTrackingRecord{
			EntityID:   st.InoreaderID,
			EntityType: models.EntityArticle,
			DeletedAt:  now,
			Reason:     reasonRetention,
		})
		ids = append(ids, st.ID)
	}

	if err := c.deletions.Record(ctx, records...); err != nil {
		return 0, fmt.Errorf("record deletion markers: %w", err)
	}

	n, err := c.articles.DeleteByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("delete articles: %w", err)
	}

	return n, nil
}

// cleanupFeeds removes local feeds that disappeared from the remote
// subscription list, unless doing so would remove more than the configured
// fraction of all local feeds in one run.
func (c *cleanupService) cleanupFeeds(ctx context.Context, cfg models.RetentionConfig) error {
	log := logger.FromContext(ctx)

	list, err := c.remote.SubscriptionList(ctx)
	c.trackAPIUsage(ctx)
	if err != nil {
		return fmt.Errorf("fetch subscription list: %w", err)
	}

	remoteSet := make(map[string]struct{}, len(list.Subscriptions))
	for _, sub := range list.Subscriptions {
		remoteSet[sub.ID] = struct{}{}
	}

	local, err := c.feeds.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("load local feeds: %w", err)
	}
	if len(local) == 0 {
		return nil
	}

	var stale []string
	for _, feed := range local {
		if _, stillSubscribed := remoteSet[feed.InoreaderID]; !stillSubscribed {
			stale = append(stale, feed.InoreaderID)
		}
	}
	if len(stale) == 0 {
		return nil
	}

	if ratio := float64(len(stale)) / float64(len(local)); ratio > cfg.FeedDeletionSafetyThreshold {
		log.Warn().
			Str("func", "cleanupService.cleanupFeeds").
			Int("stale", len(stale)).
			Int("total", len(local)).
			Float64("ratio", ratio).
			Float64("threshold", cfg.FeedDeletionSafetyThreshold).
			Msg("feed deletion exceeds safety threshold, aborting feed cleanup")
		return nil
	}

	now := c.now()
	records := make([]models.DeletionTrackingRecord, 0, len(stale))
	for _, id := range stale {
		records = append(records, models.DeletionTrackingRecord{
			EntityID:   id,
			EntityType: models.EntityFeed,
			DeletedAt:  now,
			Reason:     reasonUnsubscribed,
		})
	}
	if err = c.deletions.Record(ctx, records...); err != nil {
		return fmt.Errorf("record feed deletion markers: %w", err)
	}

	n, err := c.feeds.DeleteByInoreaderIDs(ctx, stale)
	if err != nil {
		return fmt.Errorf("delete unsubscribed feeds: %w", err)
	}

	log.Info().
		Str("func", "cleanupService.cleanupFeeds").
		Int64("deleted", n).
		Msg("feed cleanup pass finished")

	return nil
}

func (c *cleanupService) trackAPIUsage(ctx context.Context) {
	log := logger.FromContext(ctx)

	date := c.now().UTC().Format(models.UsageDateLayout)
	if err := c.usage.Increment(ctx, remoteService, date); err != nil {
		log.Warn().
			Err(err).
			Str("func", "cleanupService.trackAPIUsage").
			Str("date", date).
			Msg("failed to track api usage")
	}
}

// chunkStates splits states into slices of at most size elements.
func chunkStates(states []models.ArticleState, size int) [][]models.ArticleState {
	if size <= 0 {
		return [][]models.ArticleState{states}
	}

	chunks := make([][]models.ArticleState, 0, (len(states)+size-1)/size)
	for start := 0; start < len(states); start += size {
		end := start + size
		if end > len(states) {
			end = len(states)
		}
		chunks = append(chunks, states[start:end])
	}

	return chunks
}
