package crawler

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// DefaultUserAgent identifies the service on outbound probes.
const DefaultUserAgent = "urlshot/1.0"

// ProbeResult is the outcome of a single redirect probe.
type ProbeResult struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int
	// Location is the raw Location header value, empty when absent.
	Location string
}

// Prober issues exactly one HTTP request for a URL without following
// redirects and without reading the body.
type Prober interface {
	Probe(ctx context.Context, url string) (ProbeResult, error)
}

// HTTPProber implements Prober on top of net/http. It is safe for
// concurrent use.
type HTTPProber struct {
	client    *http.Client
	userAgent string
}

// NewHTTPProber constructs an HTTPProber with redirect following disabled.
// Per-probe deadlines come from the caller's context.
func NewHTTPProber(userAgent string) *HTTPProber {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &HTTPProber{
		client: &http.Client{
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
			Transport: &http.Transport{
				IdleConnTimeout:     90 * time.Second,
				MaxIdleConnsPerHost: 4,
			},
		},
		userAgent: userAgent,
	}
}

// Probe performs one GET request and returns the status code and Location
// header. The response body is discarded unread.
func (p *HTTPProber) Probe(ctx context.Context, url string) (ProbeResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ProbeResult{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return ProbeResult{}, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	return ProbeResult{
		StatusCode: resp.StatusCode,
		Location:   resp.Header.Get("Location"),
	}, nil
}

// Ensure HTTPProber conforms to the Prober interface at compile time.
var _ Prober = (*HTTPProber)(nil)
