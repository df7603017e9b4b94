// Package browser provides browser sessions for page capture and a
// fixed-capacity pool with a bounded FIFO admission queue in front of them.
package browser

import "context"

// Session is a single browser page usable for screenshots. A Session is not
// safe for concurrent use; the Pool guarantees exclusive access while leased.
//
//go:generate mockgen -package mockbrowser -source=interface.go -destination=mock/mockbrowser.go *
type Session interface {
	// Capture navigates to URL, waits for the document to become ready and
	// returns a PNG screenshot of the page.
	Capture(ctx context.Context, URL string) ([]byte, error)
	// Close releases the underlying browser resources.
	Close() error
}

// Factory creates Sessions on demand. The Pool calls it lazily, at most once
// per outstanding lease.
type Factory interface {
	NewSession(ctx context.Context) (Session, error)
}
