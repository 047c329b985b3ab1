package store

import (
	"context"
	"fmt"
	"time"

	"github.com/dkotelnikov/feedsync/internal/logger"
	"github.com/dkotelnikov/feedsync/models"
)

// articleRepository is the SQL-backed implementation of [ArticleRepository].
type articleRepository struct {
	*DB
	logger *logger.Logger
}

// NewArticleRepository constructs an [ArticleRepository] backed by the
// provided database connection and logger.
func NewArticleRepository(db *DB, logger *logger.Logger) ArticleRepository {
	return &articleRepository{
		DB:     db,
		logger: logger,
	}
}

// InsertIgnoreExisting implements [ArticleRepository]. Inserts run one by
// one inside a transaction; the pull path batches pages of at most a hundred
// items, so statement count is bounded.
func (a *articleRepository) InsertIgnoreExisting(ctx context.Context, articles ...models.Article) error {
	log := logger.FromContext(ctx)

	if len(articles) == 0 {
		return nil
	}

	tx, err := a.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "articleRepository.InsertIgnoreExisting").
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	defer tx.Rollback()

	for i := range articles {
		art := articles[i]
		_, execErr := tx.ExecContext(ctx, insertArticleIgnoreExisting,
			art.FeedID,
			art.InoreaderID,
			art.Title,
			art.URL,
			art.Author,
			art.Read,
			art.Starred,
			art.PublishedAt,
			art.CreatedAt,
			art.UpdatedAt,
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "articleRepository.InsertIgnoreExisting").
				Str("inoreader_id", art.InoreaderID).
				Int("iteration", i).
				Msg("failed to insert pulled article")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "articleRepository.InsertIgnoreExisting").
			Msg("failed to commit article insert transaction")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetStates implements [ArticleRepository].
func (a *articleRepository) GetStates(ctx context.Context, inoreaderIDs []string) ([]models.ArticleState, error) {
	log := logger.FromContext(ctx)

	if len(inoreaderIDs) == 0 {
		return nil, nil
	}

	query, args, err := buildGetArticleStatesQuery(inoreaderIDs)
	if err != nil {
		log.Err(err).
			Str("func", "articleRepository.GetStates").
			Msg("failed to build states query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := a.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "articleRepository.GetStates").
			Int("ids_count", len(inoreaderIDs)).
			Msg("failed to execute article states query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	states := make([]models.ArticleState, 0, len(inoreaderIDs))

	for rows.Next() {
		var st models.ArticleState
		if scanErr := rows.Scan(&st.ID, &st.InoreaderID, &st.Read, &st.Starred); scanErr != nil {
			log.Err(scanErr).
				Str("func", "articleRepository.GetStates").
				Msg("failed to scan article state row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		states = append(states, st)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "articleRepository.GetStates").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return states, nil
}

// ApplyRemoteState implements [ArticleRepository].
func (a *articleRepository) ApplyRemoteState(ctx context.Context, articleID int64, read, starred bool, at time.Time) error {
	log := logger.FromContext(ctx)

	res, err := a.DB.ExecContext(ctx, applyRemoteArticleState, read, starred, at, articleID)
	if err != nil {
		log.Err(err).
			Str("func", "articleRepository.ApplyRemoteState").
			Int64("article_id", articleID).
			Msg("failed to apply remote article state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrArticleNotFound
	}

	return nil
}

// GetCleanupCandidates implements [ArticleRepository]. The newest
// retentionLimit read articles are kept; whatever lies beyond them, oldest
// first and capped at maxBatch, becomes this run's candidate set.
func (a *articleRepository) GetCleanupCandidates(ctx context.Context, retentionLimit, maxBatch int) ([]models.ArticleState, error) {
	log := logger.FromContext(ctx)

	rows, err := a.DB.QueryContext(ctx, getCleanupCandidates, retentionLimit, maxBatch)
	if err != nil {
		log.Err(err).
			Str("func", "articleRepository.GetCleanupCandidates").
			Int("retention_limit", retentionLimit).
			Int("max_batch", maxBatch).
			Msg("failed to execute cleanup candidates query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	candidates := make([]models.ArticleState, 0, maxBatch)

	for rows.Next() {
		var st models.ArticleState
		if scanErr := rows.Scan(&st.ID, &st.InoreaderID, &st.Read, &st.Starred); scanErr != nil {
			log.Err(scanErr).
				Str("func", "articleRepository.GetCleanupCandidates").
				Msg("failed to scan cleanup candidate row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		candidates = append(candidates, st)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "articleRepository.GetCleanupCandidates").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return candidates, nil
}

// DeleteByIDs implements [ArticleRepository]. The caller chunks ids to the
// configured delete bound before calling.
func (a *articleRepository) DeleteByIDs(ctx context.Context, ids []int64) (int64, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return 0, ErrNothingToDelete
	}

	query, args, err := buildDeleteArticlesQuery(ids)
	if err != nil {
		log.Err(err).
			Str("func", "articleRepository.DeleteByIDs").
			Msg("failed to build article delete query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := a.DB.ExecRetryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "articleRepository.DeleteByIDs").
			Int("ids_count", len(ids)).
			Msg("failed to delete articles")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, _ := res.RowsAffected()
	return affected, nil
}
