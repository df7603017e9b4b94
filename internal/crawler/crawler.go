// Package crawler follows a URL's HTTP redirect chain to its final
// destination. Each hop is a single no-body probe with redirect following
// disabled; the crawl is bounded by a hop limit, a per-hop timeout and
// cycle detection.
package crawler

import (
	"context"
	"errors"
	"net/url"
	"time"

	"urlshot/pkg/domain"
	"urlshot/pkg/logger"

	"go.uber.org/zap"
)

const (
	// DefaultMaxHops bounds how many redirects are followed.
	DefaultMaxHops = 10
	// DefaultHopTimeout bounds each individual probe.
	DefaultHopTimeout = 10 * time.Second
)

// Options configure a Crawler.
type Options struct {
	// MaxHops is the maximum number of redirects followed regardless of
	// server behavior. Zero means DefaultMaxHops.
	MaxHops int
	// HopTimeout is the deadline applied to each probe. Zero means
	// DefaultHopTimeout.
	HopTimeout time.Duration
}

// Crawler resolves redirect chains using a Prober. It is stateless and safe
// for concurrent use.
type Crawler struct {
	prober Prober
	opts   Options
}

// New constructs a Crawler, applying defaults for zero option values.
func New(prober Prober, opts Options) *Crawler {
	if opts.MaxHops <= 0 {
		opts.MaxHops = DefaultMaxHops
	}
	if opts.HopTimeout <= 0 {
		opts.HopTimeout = DefaultHopTimeout
	}

	return &Crawler{prober: prober, opts: opts}
}

// Follow resolves the redirect chain starting at startURL. It never returns
// an error: crawl failures terminate the chain with the appropriate reason
// and the final URL falls back to the last successfully resolved one.
func (c *Crawler) Follow(ctx context.Context, startURL string) domain.RedirectChain {
	chain := domain.RedirectChain{
		Steps:    []string{startURL},
		FinalURL: startURL,
	}
	visited := map[string]struct{}{startURL: {}}
	current := startURL

	for {
		hopCtx, cancel := context.WithTimeout(ctx, c.opts.HopTimeout)
		res, err := c.prober.Probe(hopCtx, current)
		cancel()
		if err != nil {
			chain.FinalURL = current
			if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
				chain.Reason = domain.ReasonTimeout
			} else {
				chain.Reason = domain.ReasonNetworkError
			}
			logger.Debug(ctx, "redirect probe failed",
				zap.String("url", current),
				zap.String("reason", string(chain.Reason)),
				zap.Error(err))

			return chain
		}

		if res.StatusCode < 300 || res.StatusCode >= 400 || res.Location == "" {
			chain.FinalURL = current
			chain.Reason = domain.ReasonResolvedNonRedirect

			return chain
		}

		next, err := resolveLocation(current, res.Location)
		if err != nil {
			logger.Warn(ctx, "unresolvable redirect location",
				zap.String("url", current),
				zap.String("location", res.Location),
				zap.Error(err))
			chain.FinalURL = current
			chain.Reason = domain.ReasonNetworkError

			return chain
		}

		// Fast-fail on a provable cycle instead of looping to the hop limit.
		if _, seen := visited[next]; seen {
			chain.FinalURL = current
			chain.Reason = domain.ReasonMaxHopsExceeded

			return chain
		}

		chain.Steps = append(chain.Steps, next)
		visited[next] = struct{}{}
		current = next

		if len(chain.Steps) > c.opts.MaxHops {
			chain.FinalURL = current
			chain.Reason = domain.ReasonMaxHopsExceeded

			return chain
		}
	}
}

// resolveLocation resolves a Location header value, which may be relative,
// against the URL that produced it.
func resolveLocation(current, location string) (string, error) {
	base, err := url.Parse(current)
	if err != nil {
		return "", err //nolint: wrapcheck
	}
	ref, err := url.Parse(location)
	if err != nil {
		return "", err //nolint: wrapcheck
	}

	return base.ResolveReference(ref).String(), nil
}
