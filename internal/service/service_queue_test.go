package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dkotelnikov/feedsync/internal/adapter"
	"github.com/dkotelnikov/feedsync/internal/config"
	"github.com/dkotelnikov/feedsync/internal/logger"
	"github.com/dkotelnikov/feedsync/internal/mock"
	"github.com/dkotelnikov/feedsync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testSyncCfg = config.Sync{
	MinChanges:      10,
	BatchSize:       50,
	MaxRetries:      3,
	StalenessWindow: 15 * time.Minute,
}

func newTestQueueService(t *testing.T) (*syncQueueService, *mock.MockQueueRepository, *mock.MockUsageRepository, *mock.MockInoreaderAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)

	queue := mock.NewMockQueueRepository(ctrl)
	usage := mock.NewMockUsageRepository(ctrl)
	remote := mock.NewMockInoreaderAdapter(ctrl)

	svc := NewSyncQueueService(queue, usage, remote, testSyncCfg, logger.Nop()).(*syncQueueService)
	return svc, queue, usage, remote
}

func pendingItems(action models.SyncActionType, n int, createdAt time.Time) []models.SyncQueueItem {
	items := make([]models.SyncQueueItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, models.SyncQueueItem{
			ID:          int64(i + 1),
			ActionType:  action,
			InoreaderID: fmt.Sprintf("item-%d", i+1),
			CreatedAt:   createdAt,
		})
	}
	return items
}

func TestProcessSyncQueue_SkipsBelowThresholdWhenNothingStale(t *testing.T) {
	svc, queue, _, _ := newTestQueueService(t)

	// 5 fresh items: below MinChanges=10, none older than the window
	queue.EXPECT().
		GetPending(gomock.Any(), testSyncCfg.MaxRetries).
		Return(pendingItems(models.ActionRead, 5, time.Now().Add(-time.Minute)), nil)

	err := svc.ProcessSyncQueue(context.Background())
	require.NoError(t, err)
	// no EditTag, DeleteByIDs or usage expectations: any call would fail the test
}

func TestProcessSyncQueue_DispatchesSmallBatchWithStaleItem(t *testing.T) {
	svc, queue, usage, remote := newTestQueueService(t)

	items := pendingItems(models.ActionRead, 3, time.Now().Add(-20*time.Minute))

	queue.EXPECT().
		GetPending(gomock.Any(), testSyncCfg.MaxRetries).
		Return(items, nil)
	remote.EXPECT().
		EditTag(gomock.Any(), models.ActionRead, []string{"item-1", "item-2", "item-3"}).
		Return(nil)
	queue.EXPECT().
		DeleteByIDs(gomock.Any(), []int64{1, 2, 3}).
		Return(int64(3), nil)
	usage.EXPECT().
		Increment(gomock.Any(), remoteService, gomock.Any()).
		Return(nil)

	err := svc.ProcessSyncQueue(context.Background())
	require.NoError(t, err)
}

func TestProcessSyncQueue_ChunksLargeBacklog(t *testing.T) {
	svc, queue, usage, remote := newTestQueueService(t)

	// 200 pending items of one action: 4 network calls of 50 ids each
	items := pendingItems(models.ActionRead, 200, time.Now().Add(-time.Hour))

	queue.EXPECT().
		GetPending(gomock.Any(), testSyncCfg.MaxRetries).
		Return(items, nil)

	var dispatched int
	remote.EXPECT().
		EditTag(gomock.Any(), models.ActionRead, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.SyncActionType, ids []string) error {
			assert.LessOrEqual(t, len(ids), testSyncCfg.BatchSize)
			dispatched += len(ids)
			return nil
		}).
		Times(4)
	queue.EXPECT().
		DeleteByIDs(gomock.Any(), gomock.Any()).
		Return(int64(50), nil).
		Times(4)
	usage.EXPECT().
		Increment(gomock.Any(), remoteService, gomock.Any()).
		Return(nil).
		Times(4)

	err := svc.ProcessSyncQueue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 200, dispatched)
}

func TestProcessSyncQueue_GroupsActionsInFixedOrder(t *testing.T) {
	svc, queue, usage, remote := newTestQueueService(t)

	old := time.Now().Add(-time.Hour)
	items := []models.SyncQueueItem{
		{ID: 1, ActionType: models.ActionStar, InoreaderID: "item-s", CreatedAt: old},
		{ID: 2, ActionType: models.ActionRead, InoreaderID: "item-r", CreatedAt: old},
	}

	queue.EXPECT().
		GetPending(gomock.Any(), testSyncCfg.MaxRetries).
		Return(items, nil)

	var order []models.SyncActionType
	remote.EXPECT().
		EditTag(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, action models.SyncActionType, _ []string) error {
			order = append(order, action)
			return nil
		}).
		Times(2)
	queue.EXPECT().DeleteByIDs(gomock.Any(), gomock.Any()).Return(int64(1), nil).Times(2)
	usage.EXPECT().Increment(gomock.Any(), remoteService, gomock.Any()).Return(nil).Times(2)

	err := svc.ProcessSyncQueue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.SyncActionType{models.ActionRead, models.ActionStar}, order)
}

func TestProcessSyncQueue_FailedBatchGetsAttemptBump(t *testing.T) {
	svc, queue, _, remote := newTestQueueService(t)

	items := pendingItems(models.ActionRead, 12, time.Now().Add(-time.Hour))

	queue.EXPECT().
		GetPending(gomock.Any(), testSyncCfg.MaxRetries).
		Return(items, nil)
	remote.EXPECT().
		EditTag(gomock.Any(), models.ActionRead, gomock.Any()).
		Return(fmt.Errorf("edit tag request: %w", adapter.ErrUnauthorized))
	queue.EXPECT().
		MarkAttempt(gomock.Any(), []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, gomock.Any()).
		Return(nil)

	// the failure is absorbed, not surfaced to the scheduler
	err := svc.ProcessSyncQueue(context.Background())
	require.NoError(t, err)
}

func TestProcessSyncQueue_StopsCycleOnRateLimit(t *testing.T) {
	svc, queue, _, remote := newTestQueueService(t)

	old := time.Now().Add(-time.Hour)
	items := append(
		pendingItems(models.ActionRead, 60, old),
		models.SyncQueueItem{ID: 100, ActionType: models.ActionStar, InoreaderID: "item-star", CreatedAt: old},
	)

	queue.EXPECT().
		GetPending(gomock.Any(), testSyncCfg.MaxRetries).
		Return(items, nil)
	// first chunk hits the quota; no further chunks, no star group
	remote.EXPECT().
		EditTag(gomock.Any(), models.ActionRead, gomock.Any()).
		Return(fmt.Errorf("edit tag request: %w", adapter.ErrRateLimited))
	queue.EXPECT().
		MarkAttempt(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)

	err := svc.ProcessSyncQueue(context.Background())
	require.NoError(t, err)
}

func TestProcessSyncQueue_AbandonsUnknownActionTypes(t *testing.T) {
	svc, queue, usage, remote := newTestQueueService(t)

	old := time.Now().Add(-time.Hour)
	items := []models.SyncQueueItem{
		{ID: 1, ActionType: models.SyncActionType("archive"), InoreaderID: "item-x", CreatedAt: old},
		{ID: 2, ActionType: models.ActionRead, InoreaderID: "item-r", CreatedAt: old},
	}

	queue.EXPECT().
		GetPending(gomock.Any(), testSyncCfg.MaxRetries).
		Return(items, nil)
	queue.EXPECT().
		Abandon(gomock.Any(), []int64{1}, testSyncCfg.MaxRetries, gomock.Any()).
		Return(nil)
	remote.EXPECT().
		EditTag(gomock.Any(), models.ActionRead, []string{"item-r"}).
		Return(nil)
	queue.EXPECT().DeleteByIDs(gomock.Any(), []int64{2}).Return(int64(1), nil)
	usage.EXPECT().Increment(gomock.Any(), remoteService, gomock.Any()).Return(nil)

	err := svc.ProcessSyncQueue(context.Background())
	require.NoError(t, err)
}

func TestProcessSyncQueue_ReentrantCallRejected(t *testing.T) {
	svc, _, _, _ := newTestQueueService(t)

	svc.running.Store(true)
	defer svc.running.Store(false)

	err := svc.ProcessSyncQueue(context.Background())
	require.ErrorIs(t, err, ErrSyncInProgress)
	// no repository expectations: the guarded call must perform zero operations
}

func TestProcessSyncQueue_EmptyQueueIsNoop(t *testing.T) {
	svc, queue, _, _ := newTestQueueService(t)

	queue.EXPECT().
		GetPending(gomock.Any(), testSyncCfg.MaxRetries).
		Return(nil, nil)

	err := svc.ProcessSyncQueue(context.Background())
	require.NoError(t, err)
}

func TestProcessSyncQueue_UsageFailureDoesNotFailCycle(t *testing.T) {
	svc, queue, usage, remote := newTestQueueService(t)

	items := pendingItems(models.ActionRead, 15, time.Now().Add(-time.Hour))

	queue.EXPECT().
		GetPending(gomock.Any(), testSyncCfg.MaxRetries).
		Return(items, nil)
	remote.EXPECT().EditTag(gomock.Any(), models.ActionRead, gomock.Any()).Return(nil)
	queue.EXPECT().DeleteByIDs(gomock.Any(), gomock.Any()).Return(int64(15), nil)
	usage.EXPECT().
		Increment(gomock.Any(), remoteService, gomock.Any()).
		Return(fmt.Errorf("db busy"))

	err := svc.ProcessSyncQueue(context.Background())
	require.NoError(t, err)
}

func TestGetSyncQueueStats_PassesRetryCap(t *testing.T) {
	svc, queue, _, _ := newTestQueueService(t)

	oldest := time.Now().Add(-time.Hour)
	queue.EXPECT().
		Stats(gomock.Any(), testSyncCfg.MaxRetries).
		Return(models.SyncQueueStats{TotalPending: 7, FailedItems: 1, OldestItem: &oldest}, nil)

	stats, err := svc.GetSyncQueueStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.TotalPending)
	assert.Equal(t, int64(1), stats.FailedItems)
}

func TestClearFailedItems(t *testing.T) {
	svc, queue, _, _ := newTestQueueService(t)

	olderThan := time.Now().Add(-24 * time.Hour)
	queue.EXPECT().
		ClearFailed(gomock.Any(), testSyncCfg.MaxRetries, olderThan).
		Return(int64(4), nil)

	removed, err := svc.ClearFailedItems(context.Background(), olderThan)
	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)
}

func TestEnqueue_DelegatesToRepository(t *testing.T) {
	svc, queue, _, _ := newTestQueueService(t)

	queue.EXPECT().
		Enqueue(gomock.Any(), models.ActionStar, "item-9").
		Return(models.SyncQueueItem{ID: 1, ActionType: models.ActionStar, InoreaderID: "item-9"}, nil)

	item, err := svc.Enqueue(context.Background(), models.ActionStar, "item-9")
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.ID)
}
