package mock

import (
	"github.com/dkotelnikov/feedsync/internal/store"
)

// Compile-time checks that the generated mocks track every repository
// interface in internal/store. A missing or drifted mock fails the build here
// instead of in whichever test reaches for it first.
var (
	_ store.QueueRepository            = (*MockQueueRepository)(nil)
	_ store.UsageRepository            = (*MockUsageRepository)(nil)
	_ store.ArticleRepository          = (*MockArticleRepository)(nil)
	_ store.FeedRepository             = (*MockFeedRepository)(nil)
	_ store.ConflictLogSink            = (*MockConflictLogSink)(nil)
	_ store.DeletionTrackingRepository = (*MockDeletionTrackingRepository)(nil)
	_ store.ConfigRepository           = (*MockConfigRepository)(nil)
)
