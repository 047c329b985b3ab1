package service

import "errors"

var (
	// ErrSyncInProgress is returned when a dispatch cycle is requested while
	// another one is still running.
	ErrSyncInProgress = errors.New("sync cycle already in progress")

	// ErrPartialCleanup marks a cleanup run in which at least one delete
	// chunk failed while others succeeded.
	ErrPartialCleanup = errors.New("cleanup completed partially")
)
