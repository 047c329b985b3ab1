package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dkotelnikov/feedsync/internal/logger"
	"github.com/dkotelnikov/feedsync/models"
)

func newTestQueueRepo(t *testing.T) (*queueRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &queueRepository{
		DB:     &DB{DB: db, errorClassificator: NewSQLiteErrorClassifier(), logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestEnqueue_Success(t *testing.T) {
	repo, mock, db := newTestQueueRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "action_type", "inoreader_id", "sync_attempts", "created_at", "last_attempt_at"}).
		AddRow(int64(7), "read", "item-123", 0, now, nil)

	mock.ExpectQuery("INSERT INTO sync_queue").
		WithArgs("read", "item-123", sqlmock.AnyArg()).
		WillReturnRows(rows)

	item, err := repo.Enqueue(ctx, models.ActionRead, "item-123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ID != 7 {
		t.Errorf("expected ID=7, got %d", item.ID)
	}
	if item.SyncAttempts != 0 {
		t.Errorf("expected zero attempts on insert, got %d", item.SyncAttempts)
	}
	if item.LastAttemptAt.Valid {
		t.Error("expected last_attempt_at to be NULL on insert")
	}
}

func TestEnqueue_DBError(t *testing.T) {
	repo, mock, db := newTestQueueRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO sync_queue").
		WillReturnError(errors.New("db network error"))

	_, err := repo.Enqueue(context.Background(), models.ActionRead, "item-123")
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestGetPending_ExcludesExhaustedAndOrdersOldestFirst(t *testing.T) {
	repo, mock, db := newTestQueueRepo(t)
	defer db.Close()

	oldest := time.Now().Add(-time.Hour)
	newer := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "action_type", "inoreader_id", "sync_attempts", "created_at", "last_attempt_at"}).
		AddRow(int64(1), "read", "item-a", 0, oldest, nil).
		AddRow(int64(2), "star", "item-b", 2, newer, newer)

	mock.ExpectQuery("SELECT id, action_type").
		WithArgs(3).
		WillReturnRows(rows)

	items, err := repo.GetPending(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].InoreaderID != "item-a" {
		t.Errorf("expected oldest item first, got %s", items[0].InoreaderID)
	}
	if !items[1].LastAttemptAt.Valid {
		t.Error("expected last_attempt_at to be set for retried item")
	}
}

func TestGetPending_ScanError(t *testing.T) {
	repo, mock, db := newTestQueueRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id"}).AddRow(1)

	mock.ExpectQuery("SELECT id, action_type").
		WithArgs(3).
		WillReturnRows(rows)

	_, err := repo.GetPending(context.Background(), 3)
	if !errors.Is(err, ErrScanningRow) {
		t.Fatalf("expected ErrScanningRow, got %v", err)
	}
}

func TestDeleteByIDs_Success(t *testing.T) {
	repo, mock, db := newTestQueueRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sync_queue").
		WithArgs(int64(1), int64(2), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	affected, err := repo.DeleteByIDs(context.Background(), []int64{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if affected != 3 {
		t.Errorf("expected 3 rows removed, got %d", affected)
	}
}

func TestDeleteByIDs_EmptyInput(t *testing.T) {
	repo, _, db := newTestQueueRepo(t)
	defer db.Close()

	_, err := repo.DeleteByIDs(context.Background(), nil)
	if !errors.Is(err, ErrNothingToDelete) {
		t.Fatalf("expected ErrNothingToDelete, got %v", err)
	}
}

func TestMarkAttempt_SingleUpdateForBatch(t *testing.T) {
	repo, mock, db := newTestQueueRepo(t)
	defer db.Close()

	at := time.Now()

	mock.ExpectExec("UPDATE sync_queue SET sync_attempts = sync_attempts").
		WithArgs(at, int64(5), int64(6)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := repo.MarkAttempt(context.Background(), []int64{5, 6}, at); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestMarkAttempt_EmptyInputIsNoop(t *testing.T) {
	repo, mock, db := newTestQueueRepo(t)
	defer db.Close()

	if err := repo.MarkAttempt(context.Background(), nil, time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected no statements, got: %v", err)
	}
}

func TestAbandon_ParksRowsAtCap(t *testing.T) {
	repo, mock, db := newTestQueueRepo(t)
	defer db.Close()

	at := time.Now()

	mock.ExpectExec("UPDATE sync_queue SET sync_attempts").
		WithArgs(3, at, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Abandon(context.Background(), []int64{9}, 3, at); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStats_WithOldestItem(t *testing.T) {
	repo, mock, db := newTestQueueRepo(t)
	defer db.Close()

	oldest := time.Now().Add(-2 * time.Hour)

	mock.ExpectQuery("SELECT").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"pending", "failed"}).AddRow(int64(12), int64(2)))
	mock.ExpectQuery("SELECT created_at").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(oldest))

	stats, err := repo.Stats(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalPending != 12 {
		t.Errorf("expected 12 pending, got %d", stats.TotalPending)
	}
	if stats.FailedItems != 2 {
		t.Errorf("expected 2 failed, got %d", stats.FailedItems)
	}
	if stats.OldestItem == nil || !stats.OldestItem.Equal(oldest) {
		t.Errorf("expected oldest item %v, got %v", oldest, stats.OldestItem)
	}
}

func TestStats_EmptyQueue(t *testing.T) {
	repo, mock, db := newTestQueueRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").
		WithArgs(3).
		WillReturnRows(sqlmock.NewRows([]string{"pending", "failed"}).AddRow(int64(0), int64(0)))
	mock.ExpectQuery("SELECT created_at").
		WithArgs(3).
		WillReturnError(sql.ErrNoRows)

	stats, err := repo.Stats(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.OldestItem != nil {
		t.Errorf("expected nil oldest item for empty queue, got %v", stats.OldestItem)
	}
}

func TestClearFailed_Success(t *testing.T) {
	repo, mock, db := newTestQueueRepo(t)
	defer db.Close()

	olderThan := time.Now().Add(-24 * time.Hour)

	mock.ExpectExec("DELETE FROM sync_queue").
		WithArgs(3, olderThan).
		WillReturnResult(sqlmock.NewResult(0, 4))

	removed, err := repo.ClearFailed(context.Background(), 3, olderThan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 4 {
		t.Errorf("expected 4 rows removed, got %d", removed)
	}
}
