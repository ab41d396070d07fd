package snapshot

import "errors"

// Sentinel errors for snapshot store operations.
var (
	ErrNotFound   = errors.New("snapshot not found")
	ErrLoadFailed = errors.New("snapshot load failed")
	ErrSaveFailed = errors.New("snapshot save failed")
)
