package storage

import (
	"context"
	"time"

	"urlshot/pkg/domain"
)

// CaptureList groups a page of captures together with an optional NextCursor
// used for pagination.
type CaptureList struct {
	// Captures contains the current page of capture records.
	Captures []domain.Capture
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// CaptureStorage defines persistence operations for capture records.
// Implementations should handle soft deletes where applicable.
type CaptureStorage interface {
	// StoreCapture inserts a capture record and returns the stored row as it
	// exists in the database (including generated fields).
	StoreCapture(ctx context.Context, capture domain.Capture) (*domain.Capture, error)
	// CaptureByID fetches a capture by its ID, excluding soft-deleted records.
	// Returns nil when not found.
	CaptureByID(ctx context.Context, ID domain.CaptureID) (*domain.Capture, error)
	// RecentCaptures returns a page of captures created before the optional
	// cursor time, newest first, limited by the given limit.
	RecentCaptures(ctx context.Context, cursor time.Time, limit uint) (CaptureList, error)
	// DeleteCapture performs a soft delete for the given capture ID and returns
	// the deleted capture, or nil if it was not found.
	DeleteCapture(ctx context.Context, ID domain.CaptureID) (*domain.Capture, error)
}
