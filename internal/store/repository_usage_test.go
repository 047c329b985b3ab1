package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dkotelnikov/feedsync/internal/logger"
)

func newTestUsageRepo(t *testing.T) (*usageRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &usageRepository{
		DB:     &DB{DB: db, errorClassificator: NewSQLiteErrorClassifier(), logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestIncrement_Success(t *testing.T) {
	repo, mock, db := newTestUsageRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO api_usage").
		WithArgs("inoreader", "2026-08-30").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Increment(context.Background(), "inoreader", "2026-08-30"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIncrement_DBError(t *testing.T) {
	repo, mock, db := newTestUsageRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO api_usage").
		WillReturnError(errors.New("db network error"))

	err := repo.Increment(context.Background(), "inoreader", "2026-08-30")
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestGetUsage_Success(t *testing.T) {
	repo, mock, db := newTestUsageRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"service", "date", "count"}).
		AddRow("inoreader", "2026-08-30", int64(42))

	mock.ExpectQuery("SELECT service, date, count").
		WithArgs("inoreader", "2026-08-30").
		WillReturnRows(rows)

	rec, err := repo.Get(context.Background(), "inoreader", "2026-08-30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Count != 42 {
		t.Errorf("expected count 42, got %d", rec.Count)
	}
}

func TestGetUsage_NotFound(t *testing.T) {
	repo, mock, db := newTestUsageRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT service, date, count").
		WithArgs("inoreader", "2026-08-30").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "inoreader", "2026-08-30")
	if !errors.Is(err, ErrUsageRecordNotFound) {
		t.Fatalf("expected ErrUsageRecordNotFound, got %v", err)
	}
}
