package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dkotelnikov/feedsync/internal/logger"
	"github.com/dkotelnikov/feedsync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeletionRepo(t *testing.T) (*deletionTrackingRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &deletionTrackingRepository{
		DB:     &DB{DB: db, errorClassificator: NewSQLiteErrorClassifier(), logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestDeletionRecord_WritesAllMarkersInOneTransaction(t *testing.T) {
	repo, mock, db := newTestDeletionRepo(t)
	defer db.Close()

	at := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO deletion_tracking").
		WithArgs("item-1", "article", at, "read article beyond retention limit").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO deletion_tracking").
		WithArgs("feed/9", "feed", at, "feed removed from remote subscriptions").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	err := repo.Record(context.Background(),
		models.DeletionTrackingRecord{EntityID: "item-1", EntityType: models.EntityArticle, DeletedAt: at, Reason: "read article beyond retention limit"},
		models.DeletionTrackingRecord{EntityID: "feed/9", EntityType: models.EntityFeed, DeletedAt: at, Reason: "feed removed from remote subscriptions"},
	)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletionRecord_RollsBackOnFailure(t *testing.T) {
	repo, mock, db := newTestDeletionRepo(t)
	defer db.Close()

	at := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO deletion_tracking").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.Record(context.Background(),
		models.DeletionTrackingRecord{EntityID: "item-1", EntityType: models.EntityArticle, DeletedAt: at},
	)

	require.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletionRecord_EmptyInput_NoOp(t *testing.T) {
	repo, mock, db := newTestDeletionRepo(t)
	defer db.Close()

	err := repo.Record(context.Background())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterKnown_ReturnsOnlyTrackedIDs(t *testing.T) {
	repo, mock, db := newTestDeletionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT entity_id FROM deletion_tracking").
		WithArgs("article", "item-1", "item-2", "item-3").
		WillReturnRows(sqlmock.NewRows([]string{"entity_id"}).AddRow("item-2"))

	known, err := repo.FilterKnown(context.Background(), models.EntityArticle, []string{"item-1", "item-2", "item-3"})

	require.NoError(t, err)
	assert.Len(t, known, 1)
	_, ok := known["item-2"]
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFilterKnown_EmptyInput_NoQuery(t *testing.T) {
	repo, mock, db := newTestDeletionRepo(t)
	defer db.Close()

	known, err := repo.FilterKnown(context.Background(), models.EntityFeed, nil)

	require.NoError(t, err)
	assert.Empty(t, known)
	assert.NoError(t, mock.ExpectationsWereMet())
}
