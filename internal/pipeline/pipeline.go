// Package pipeline orchestrates a capture request end to end: URL analysis,
// anonymization, redirect resolution, session admission and screenshots.
package pipeline

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"urlshot/internal/browser"
	"urlshot/internal/crawler"
	"urlshot/pkg/domain"
	"urlshot/pkg/logger"
	"urlshot/pkg/serrors"
	"urlshot/pkg/urlid"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// DefaultMaxURLLength rejects absurdly long URLs before any work happens.
	DefaultMaxURLLength = 2048
	// DefaultAcquireTimeout bounds how long a request waits for a session.
	DefaultAcquireTimeout = 30 * time.Second
)

// Options configure a Pipeline.
type Options struct {
	// MaxURLLength is the longest accepted input URL in bytes. Zero means
	// DefaultMaxURLLength.
	MaxURLLength int
	// AcquireTimeout bounds the wait for a browser session. Zero means
	// DefaultAcquireTimeout.
	AcquireTimeout time.Duration
}

// Pipeline runs the capture sequence. It is stateless apart from its
// collaborators and safe for concurrent use.
type Pipeline struct {
	codec   *urlid.Codec
	crawler *crawler.Crawler
	pool    *browser.Pool
	opts    Options
}

// New constructs a Pipeline, applying defaults for zero option values.
func New(codec *urlid.Codec, crawler *crawler.Crawler, pool *browser.Pool, opts Options) *Pipeline {
	if opts.MaxURLLength <= 0 {
		opts.MaxURLLength = DefaultMaxURLLength
	}
	if opts.AcquireTimeout <= 0 {
		opts.AcquireTimeout = DefaultAcquireTimeout
	}

	return &Pipeline{codec: codec, crawler: crawler, pool: pool, opts: opts}
}

// Process runs the full capture sequence for rawURL.
//
// Requests that never reach a browser session fail with a semantic error and
// no record: ErrBadRequest for invalid input, ErrQueueFull and ErrTimeout for
// admission control, ErrUnavailable when no session could be created. Once a
// session is held, Process always returns a well-formed record: screenshot
// failures produce a partial result with status "error", the message set and
// all URL analysis plus any surviving screenshot included.
func (p *Pipeline) Process(ctx context.Context, rawURL string) (*domain.Capture, error) {
	if len(rawURL) > p.opts.MaxURLLength {
		return nil, serrors.With(serrors.ErrBadRequest, "URL exceeds maximum length of %d", p.opts.MaxURLLength)
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return nil, serrors.With(serrors.ErrBadRequest, "URL must use http or https")
	}

	ids, err := p.codec.Scan(rawURL)
	if err != nil {
		return nil, fmt.Errorf("could not scan URL: %w", err)
	}
	anon, err := p.codec.Anonymize(rawURL, ids)
	if err != nil {
		return nil, fmt.Errorf("could not anonymize URL: %w", err)
	}
	ctx = logger.WithFields(ctx, zap.String("anonymizedURL", anon.AnonymizedURL))

	chain := p.crawler.Follow(ctx, rawURL)
	logger.Info(ctx, "redirect chain resolved",
		zap.Int("hops", chain.Hops()),
		zap.String("reason", string(chain.Reason)))

	acquireCtx, cancel := context.WithTimeout(ctx, p.opts.AcquireTimeout)
	lease, err := p.pool.Acquire(acquireCtx)
	cancel()
	if err != nil {
		return nil, fmt.Errorf("could not acquire browser session: %w", err)
	}
	defer lease.Release()

	capture := &domain.Capture{
		ID:            domain.CaptureID(uuid.New()),
		OriginalURL:   rawURL,
		AnonymizedURL: anon.AnonymizedURL,
		DecodedURL:    urlid.ExpandDecoded(rawURL, ids),
		FinalURL:      chain.FinalURL,
		RedirectChain: chain,
		Identifiers:   anon.Identifiers,
		Status:        domain.CaptureStatusSuccess,
		CreatedAt:     time.Now().UTC(),
	}

	var failures []string

	// Screenshot the anonymized URL so the sensitive spans never reach the
	// browser.
	if png, err := lease.Session().Capture(ctx, anon.AnonymizedURL); err != nil {
		logger.Error(ctx, "could not capture original screenshot", zap.Error(err))
		failures = append(failures, fmt.Sprintf("original screenshot failed: %v", err))
	} else {
		capture.OriginalScreenshot = base64.StdEncoding.EncodeToString(png)
	}

	// The second screenshot only adds information when the chain moved.
	if chain.FinalURL != rawURL {
		if png, err := lease.Session().Capture(ctx, chain.FinalURL); err != nil {
			logger.Error(ctx, "could not capture final screenshot", zap.Error(err))
			failures = append(failures, fmt.Sprintf("final screenshot failed: %v", err))
		} else {
			capture.FinalScreenshot = base64.StdEncoding.EncodeToString(png)
		}
	}

	if len(failures) > 0 {
		capture.Status = domain.CaptureStatusError
		capture.Message = strings.Join(failures, "; ")
	}

	return capture, nil
}
