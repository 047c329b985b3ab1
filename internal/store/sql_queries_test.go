// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Kotelnikov

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_buildMarkAttemptQuery_SQLContainsParts(t *testing.T) {
	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	query, args, err := buildMarkAttemptQuery([]int64{1, 2, 3}, at)
	require.NoError(t, err)

	// first arg is the timestamp, then the ids
	require.Len(t, args, 4)
	require.Equal(t, at, args[0])
	require.Equal(t, int64(1), args[1])

	q := strings.ToLower(query)

	require.Contains(t, q, "update sync_queue")
	require.Contains(t, q, "sync_attempts = sync_attempts + 1")
	require.Contains(t, q, "last_attempt_at")
	require.Contains(t, q, "where")

	// placeholder format should be $N
	require.Contains(t, query, "$1")
	require.Contains(t, query, "$4")
}

func Test_buildAbandonQuery_ForcesAttemptCap(t *testing.T) {
	at := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	query, args, err := buildAbandonQuery([]int64{7}, 3, at)
	require.NoError(t, err)

	require.Len(t, args, 3)
	require.Equal(t, 3, args[0])
	require.Equal(t, at, args[1])
	require.Equal(t, int64(7), args[2])

	q := strings.ToLower(query)
	require.Contains(t, q, "update sync_queue")
	require.Contains(t, q, "sync_attempts")
	require.NotContains(t, q, "sync_attempts + 1")
}

func Test_buildClearFailedQuery_BothConditions(t *testing.T) {
	olderThan := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildClearFailedQuery(3, olderThan)
	require.NoError(t, err)

	require.Len(t, args, 2)
	require.Equal(t, 3, args[0])
	require.Equal(t, olderThan, args[1])

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from sync_queue")
	require.Contains(t, q, "sync_attempts >= $1")
	require.Contains(t, q, "created_at < $2")
}

func Test_buildGetArticleStatesQuery_ExpandsIDList(t *testing.T) {
	query, args, err := buildGetArticleStatesQuery([]string{"item-a", "item-b"})
	require.NoError(t, err)

	require.Len(t, args, 2)
	require.Equal(t, "item-a", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "from articles")
	require.Contains(t, q, "inoreader_id in ($1,$2)")
}

func Test_buildFilterKnownDeletionsQuery_FiltersByType(t *testing.T) {
	query, args, err := buildFilterKnownDeletionsQuery("article", []string{"item-a"})
	require.NoError(t, err)

	require.Len(t, args, 2)
	require.Equal(t, "article", args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "from deletion_tracking")
	require.Contains(t, q, "entity_type = $1")
	require.Contains(t, q, "entity_id in ($2)")
}

func Test_buildDeleteQueries(t *testing.T) {
	tests := []struct {
		name  string
		build func() (string, []any, error)
		table string
		args  int
	}{
		{
			name:  "queue items by id",
			build: func() (string, []any, error) { return buildDeleteQueueItemsQuery([]int64{1, 2}) },
			table: "sync_queue",
			args:  2,
		},
		{
			name:  "articles by id",
			build: func() (string, []any, error) { return buildDeleteArticlesQuery([]int64{1}) },
			table: "articles",
			args:  1,
		},
		{
			name:  "feeds by remote id",
			build: func() (string, []any, error) { return buildDeleteFeedsQuery([]string{"feed/1", "feed/2"}) },
			table: "feeds",
			args:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build()
			require.NoError(t, err)
			require.Len(t, args, tt.args)
			require.Contains(t, strings.ToLower(query), "delete from "+tt.table)
		})
	}
}
