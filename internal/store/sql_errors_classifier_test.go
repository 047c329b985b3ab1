// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dkotelnikov/feedsync/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil error", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "serialization failure", err: &pgconn.PgError{Code: pgerrcode.SerializationFailure}, want: Retryable},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Retryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "undefined table", err: &pgconn.PgError{Code: pgerrcode.UndefinedTable}, want: NonRetryable},
		{name: "wrapped pg error", err: errors.Join(errors.New("exec"), &pgconn.PgError{Code: pgerrcode.DeadlockDetected}), want: Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("constraint failed")))
	assert.Equal(t, Retryable, c.Classify(errors.New("database is locked")))
	assert.Equal(t, Retryable, c.Classify(errors.New("database table is locked")))
}

func TestExecRetryContext_RetriesLockedDatabase(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	d := &DB{DB: db, errorClassificator: NewSQLiteErrorClassifier(), logger: logger.Nop()}

	mock.ExpectExec("UPDATE sync_queue").WillReturnError(errors.New("database is locked"))
	mock.ExpectExec("UPDATE sync_queue").WillReturnResult(sqlmock.NewResult(0, 1))

	_, err = d.ExecRetryContext(context.Background(), "UPDATE sync_queue SET sync_attempts = 0")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecRetryContext_NoRetryOnPermanentError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	d := &DB{DB: db, errorClassificator: NewSQLiteErrorClassifier(), logger: logger.Nop()}

	mock.ExpectExec("UPDATE sync_queue").WillReturnError(errors.New("no such table: sync_queue"))

	_, err = d.ExecRetryContext(context.Background(), "UPDATE sync_queue SET sync_attempts = 0")
	require.Error(t, err)
	// a second attempt would violate the single registered expectation
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestExecRetryContext_GivesUpAfterBoundedAttempts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	d := &DB{DB: db, errorClassificator: NewSQLiteErrorClassifier(), logger: logger.Nop()}

	for i := 0; i < execRetryAttempts; i++ {
		mock.ExpectExec("UPDATE sync_queue").WillReturnError(errors.New("database is locked"))
	}

	_, err = d.ExecRetryContext(context.Background(), "UPDATE sync_queue SET sync_attempts = 0")
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
