package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dkotelnikov/feedsync/internal/adapter"
	"github.com/dkotelnikov/feedsync/internal/config"
	"github.com/dkotelnikov/feedsync/internal/logger"
	"github.com/dkotelnikov/feedsync/internal/store"
	"github.com/dkotelnikov/feedsync/internal/utils"
	"github.com/dkotelnikov/feedsync/models"
)

// pullSyncService is the concrete implementation of [PullSyncService].
//
// A pull run imports the remote subscription list and the reading-list
// stream page by page. Where a local article's read/starred flags diverge
// from the freshly pulled remote state, the remote values win
// unconditionally and the divergence is appended to the conflict log under
// this run's session id. Entities with a deletion-tracking marker are never
// re-imported. Every run ends with a cleanup pass.
type pullSyncService struct {
	remote    adapter.InoreaderAdapter
	feeds     store.FeedRepository
	articles  store.ArticleRepository
	conflicts store.ConflictLogSink
	deletions store.DeletionTrackingRepository
	usage     store.UsageRepository
	cleanup   CleanupService

	cfg     config.Sync
	now     func() time.Time
	uuidGen *utils.UUIDGenerator

	logger *logger.Logger
}

// NewPullSyncService constructs a [PullSyncService] over the given
// repositories, remote adapter and cleanup engine.
func NewPullSyncService(storages *store.Storages, remote adapter.InoreaderAdapter, cleanup CleanupService, cfg config.Sync, logger *logger.Logger) PullSyncService {
	return &pullSyncService{
		remote:    remote,
		feeds:     storages.Feeds,
		articles:  storages.Articles,
		conflicts: storages.Conflicts,
		deletions: storages.Deletions,
		usage:     storages.Usage,
		cleanup:   cleanup,
		cfg:       cfg,
		now:       time.Now,
		uuidGen:   utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

// PullSync implements [PullSyncService].
func (p *pullSyncService) PullSync(ctx context.Context) error {
	log := logger.FromContext(ctx)

	sessionID := p.uuidGen.Generate()
	log.Info().
		Str("func", "pullSyncService.PullSync").
		Str("session_id", sessionID).
		Msg("pull sync started")

	if err := p.syncSubscriptions(ctx); err != nil {
		return fmt.Errorf("sync subscriptions: %w", err)
	}

	if err := p.syncStream(ctx, sessionID); err != nil {
		return fmt.Errorf("sync stream contents: %w", err)
	}

	if err := p.cleanup.RunCleanup(ctx); err != nil {
		return fmt.Errorf("cleanup after pull: %w", err)
	}

	log.Info().
		Str("func", "pullSyncService.PullSync").
		Str("session_id", sessionID).
		Msg("pull sync finished")

	return nil
}

// syncSubscriptions refreshes the local feed mirror from the remote
// subscription list, skipping feeds the cleanup engine intentionally
// deleted.
func (p *pullSyncService) syncSubscriptions(ctx context.Context) error {
	log := logger.FromContext(ctx)

	list, err := p.remote.SubscriptionList(ctx)
	p.trackAPIUsage(ctx)
	if err != nil {
		return fmt.Errorf("fetch subscription list: %w", err)
	}

	ids := make([]string, 0, len(list.Subscriptions))
	for _, sub := range list.Subscriptions {
		ids = append(ids, sub.ID)
	}

	tracked, err := p.deletions.FilterKnown(ctx, models.EntityFeed, ids)
	if err != nil {
		return fmt.Errorf("filter deleted feeds: %w", err)
	}

	feeds := make([]models.Feed, 0, len(list.Subscriptions))
	for _, sub := range list.Subscriptions {
		if _, deleted := tracked[sub.ID]; deleted {
			continue
		}
		feeds = append(feeds, models.Feed{
			InoreaderID: sub.ID,
			Title:       sub.Title,
			URL:         sub.URL,
			SiteURL:     sub.HTMLURL,
		})
	}

	if err = p.feeds.Upsert(ctx, p.now(), feeds...); err != nil {
		return fmt.Errorf("upsert feeds: %w", err)
	}

	log.Debug().
		Str("func", "pullSyncService.syncSubscriptions").
		Int("remote_feeds", len(list.Subscriptions)).
		Int("skipped_deleted", len(list.Subscriptions)-len(feeds)).
		Msg("subscription list imported")

	return nil
}

// syncStream walks the reading-list stream page by page, bounded by
// cfg.MaxPullPages, reconciling each page against the local mirror.
func (p *pullSyncService) syncStream(ctx context.Context, sessionID string) error {
	continuation := ""

	for page := 0; page < p.cfg.MaxPullPages; page++ {
		contents, err := p.remote.StreamContents(ctx, continuation)
		p.trackAPIUsage(ctx)
		if err != nil {
			return fmt.Errorf("fetch stream page %d: %w", page, err)
		}

		if err = p.reconcilePage(ctx, sessionID, contents.Items); err != nil {
			return fmt.Errorf("reconcile stream page %d: %w", page, err)
		}

		continuation = contents.Continuation
		if continuation == "" {
			break
		}
	}

	return nil
}

// reconcilePage applies one page of remote items: known articles get
// remote-wins state reconciliation, unknown ones are imported unless a
// deletion marker exists.
func (p *pullSyncService) reconcilePage(ctx context.Context, sessionID string, items []models.StreamItem) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	states, err := p.articles.GetStates(ctx, ids)
	if err != nil {
		return fmt.Errorf("load local article states: %w", err)
	}

	local := make(map[string]models.ArticleState, len(states))
	for _, st := range states {
		local[st.InoreaderID] = st
	}

	var fresh []models.StreamItem
	for _, item := range items {
		st, known := local[item.ID]
		if !known {
			fresh = append(fresh, item)
			continue
		}
		if err = p.reconcileItem(ctx, sessionID, st, item); err != nil {
			return err
		}
	}

	return p.importArticles(ctx, fresh)
}

// reconcileItem compares one known article with its remote state and, on
// divergence, logs the conflict and overwrites the local flags.
func (p *pullSyncService) reconcileItem(ctx context.Context, sessionID string, local models.ArticleState, remote models.StreamItem) error {
	log := logger.FromContext(ctx)

	remoteRead, remoteStarred := remote.Read(), remote.Starred()
	readDiverged := local.Read != remoteRead
	starredDiverged := local.Starred != remoteStarred
	if !readDiverged && !starredDiverged {
		return nil
	}

	var conflictType models.ConflictType
	switch {
	case readDiverged && starredDiverged:
		conflictType = models.ConflictBoth
	case readDiverged:
		conflictType = models.ConflictReadStatus
	default:
		conflictType = models.ConflictStarredStatus
	}

	entry := models.SyncConflictLogEntry{
		SyncSessionID: sessionID,
		ArticleID:     local.ID,
		ConflictType:  conflictType,
		LocalValue:    formatState(local.Read, local.Starred),
		RemoteValue:   formatState(remoteRead, remoteStarred),
		Resolution:    models.ResolutionRemote,
		Note:          "remote state applied, local change discarded",
		CreatedAt:     p.now(),
	}
	if err := p.conflicts.Append(ctx, entry); err != nil {
		return fmt.Errorf("append conflict log entry: %w", err)
	}

	if err := p.articles.ApplyRemoteState(ctx, local.ID, remoteRead, remoteStarred, p.now()); err != nil {
		return fmt.Errorf("apply remote state for article %d: %w", local.ID, err)
	}

	log.Debug().
		Str("func", "pullSyncService.reconcileItem").
		Int64("article_id", local.ID).
		Str("conflict_type", string(conflictType)).
		Msg("divergence resolved remote-wins")

	return nil
}

// importArticles inserts remote items the local mirror has never seen,
// skipping ids with a deletion-tracking marker.
func (p *pullSyncService) importArticles(ctx context.Context, items []models.StreamItem) error {
	if len(items) == 0 {
		return nil
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	tracked, err := p.deletions.FilterKnown(ctx, models.EntityArticle, ids)
	if err != nil {
		return fmt.Errorf("filter deleted articles: %w", err)
	}

	now := p.now()
	articles := make([]models.Article, 0, len(items))
	for _, item := range items {
		if _, deleted := tracked[item.ID]; deleted {
			continue
		}
		art := models.Article{
			InoreaderID: item.ID,
			Title:       item.Title,
			URL:         item.URL(),
			Author:      item.Author,
			Read:        item.Read(),
			Starred:     item.Starred(),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if item.Published > 0 {
			art.PublishedAt.Time = time.Unix(item.Published, 0).UTC()
			art.PublishedAt.Valid = true
		}
		articles = append(articles, art)
	}

	if err = p.articles.InsertIgnoreExisting(ctx, articles...); err != nil {
		return fmt.Errorf("insert pulled articles: %w", err)
	}

	return nil
}

func (p *pullSyncService) trackAPIUsage(ctx context.Context) {
	log := logger.FromContext(ctx)

	date := p.now().UTC().Format(models.UsageDateLayout)
	if err := p.usage.Increment(ctx, remoteService, date); err != nil {
		log.Warn().
			Err(err).
			Str("func", "pullSyncService.trackAPIUsage").
			Str("date", date).
			Msg("failed to track api usage")
	}
}

func formatState(read, starred bool) string {
	return fmt.Sprintf("read=%t,starred=%t", read, starred)
}
