package browser

import (
	"context"
	"time"

	"urlshot/pkg/logger"
	"urlshot/pkg/serrors"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const (
	// DefaultViewportWidth and DefaultViewportHeight match a common desktop
	// window so pages render their full layout.
	DefaultViewportWidth  = 1920
	DefaultViewportHeight = 1080
	// DefaultCaptureTimeout bounds a single navigate-and-screenshot round trip.
	DefaultCaptureTimeout = 30 * time.Second
)

// ChromeOptions configure the Chrome-backed session factory.
type ChromeOptions struct {
	// DevToolsURL points at a running Chrome DevTools endpoint
	// (e.g. ws://localhost:9222). When empty, a headless Chrome process is
	// launched locally instead.
	DevToolsURL string
	// ViewportWidth and ViewportHeight set the emulated viewport. Zero means
	// the package defaults.
	ViewportWidth  int
	ViewportHeight int
	// CaptureTimeout bounds each Capture call. Zero means DefaultCaptureTimeout.
	CaptureTimeout time.Duration
}

// ChromeFactory creates chromedp-backed Sessions, either against a remote
// DevTools endpoint or a locally launched headless Chrome. It is safe for
// concurrent use.
type ChromeFactory struct {
	opts        ChromeOptions
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// NewChromeFactory constructs the factory and its shared allocator context.
// Close must be called to shut the allocator down.
func NewChromeFactory(opts ChromeOptions) *ChromeFactory {
	if opts.ViewportWidth <= 0 {
		opts.ViewportWidth = DefaultViewportWidth
	}
	if opts.ViewportHeight <= 0 {
		opts.ViewportHeight = DefaultViewportHeight
	}
	if opts.CaptureTimeout <= 0 {
		opts.CaptureTimeout = DefaultCaptureTimeout
	}

	var (
		allocCtx    context.Context
		allocCancel context.CancelFunc
	)
	if opts.DevToolsURL != "" {
		allocCtx, allocCancel = chromedp.NewRemoteAllocator(context.Background(), opts.DevToolsURL)
	} else {
		allocCtx, allocCancel = chromedp.NewExecAllocator(context.Background(),
			append(chromedp.DefaultExecAllocatorOptions[:],
				chromedp.Flag("headless", true),
				chromedp.Flag("disable-gpu", true),
				chromedp.Flag("no-sandbox", true),
				chromedp.Flag("disable-dev-shm-usage", true),
			)...)
	}

	return &ChromeFactory{
		opts:        opts,
		allocCtx:    allocCtx,
		allocCancel: allocCancel,
	}
}

// NewSession opens a fresh browser tab. The first Capture on it triggers the
// actual browser start when running against a local allocator.
func (f *ChromeFactory) NewSession(ctx context.Context) (Session, error) {
	tabCtx, tabCancel := chromedp.NewContext(f.allocCtx)

	// Start the target eagerly so creation failures surface here, not on the
	// first Capture.
	if err := chromedp.Run(tabCtx); err != nil {
		tabCancel()

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not start browser session")
	}

	logger.Debug(ctx, "browser session created")

	return &chromeSession{
		ctx:    tabCtx,
		cancel: tabCancel,
		opts:   f.opts,
	}, nil
}

// Close shuts down the shared allocator and every session created from it.
func (f *ChromeFactory) Close() error {
	f.allocCancel()

	return nil
}

type chromeSession struct {
	ctx    context.Context
	cancel context.CancelFunc
	opts   ChromeOptions
}

func (s *chromeSession) Capture(ctx context.Context, URL string) ([]byte, error) {
	runCtx, cancel := context.WithTimeout(s.ctx, s.opts.CaptureTimeout)
	defer cancel()

	// Stop early when the caller gives up even though chromedp runs on the
	// session context.
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	start := time.Now()
	var png []byte
	err := chromedp.Run(runCtx,
		chromedp.EmulateViewport(int64(s.opts.ViewportWidth), int64(s.opts.ViewportHeight)),
		chromedp.Navigate(URL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.CaptureScreenshot(&png),
	)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrCaptureFailed, err, "could not capture %s", URL)
	}

	logger.Debug(ctx, "captured screenshot",
		zap.String("URL", URL),
		zap.Int("bytes", len(png)),
		zap.Duration("took", time.Since(start)))

	return png, nil
}

func (s *chromeSession) Close() error {
	s.cancel()

	return nil
}

// Ensure the chromedp implementations conform at compile time.
var (
	_ Factory = (*ChromeFactory)(nil)
	_ Session = (*chromeSession)(nil)
)
