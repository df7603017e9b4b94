package browser

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"urlshot/pkg/logger"
	"urlshot/pkg/serrors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

const (
	// DefaultMaxSessions bounds concurrent browser sessions.
	DefaultMaxSessions = 4
	// DefaultQueueSize bounds how many acquirers may wait for a session.
	DefaultQueueSize = 16
)

// PoolOptions configure a Pool.
type PoolOptions struct {
	// MaxSessions is the maximum number of leases outstanding at once.
	// Zero means DefaultMaxSessions.
	MaxSessions int
	// QueueSize is the maximum number of acquirers allowed to wait once all
	// sessions are leased. Further acquirers are rejected immediately.
	// Zero means DefaultQueueSize.
	QueueSize int
	// Registerer receives the pool gauges when non-nil.
	Registerer prometheus.Registerer
}

// Health is a point-in-time snapshot of pool usage.
type Health struct {
	// Leased is the number of sessions currently handed out.
	Leased int `json:"leased"`
	// Waiting is the number of acquirers queued for a session.
	Waiting int `json:"waiting"`
	// Capacity is the configured maximum number of sessions.
	Capacity int `json:"capacity"`
	// QueueSize is the configured waiting-list capacity.
	QueueSize int `json:"queueSize"`
}

// Status classifies the snapshot: healthy while sessions remain, degraded
// while requests queue, unhealthy once the queue itself is full.
func (h Health) Status() string {
	switch {
	case h.Waiting >= h.QueueSize:
		return "unhealthy"
	case h.Leased >= h.Capacity:
		return "degraded"
	default:
		return "healthy"
	}
}

// handoff is the value passed from a releasing lease to a queued waiter.
// A nil session grants the waiter the right to create its own; closed tells
// the waiter the pool shut down while it was queued.
type handoff struct {
	session Session
	closed  bool
}

// waiter is one queued acquirer. ch is buffered so the releasing goroutine
// never blocks on the transfer.
type waiter struct {
	ch chan handoff
}

// Pool hands out exclusive browser session leases, bounded by MaxSessions,
// with a FIFO waiting list bounded by QueueSize.
//
// # Admission protocol
//
// Acquire first tries to take a free slot under the mutex: an idle session is
// reused, otherwise the slot is claimed and a session is created through the
// Factory outside the lock. When all slots are leased, the acquirer joins the
// waiting list unless it is full, in which case it is rejected immediately
// with ErrQueueFull so callers can tell admission rejection apart from
// capture failure.
//
// Release and waiter cancellation race over the same waiter entry; both sides
// resolve the race under the pool mutex. Release pops the first waiter while
// holding the lock and completes the transfer through the waiter's buffered
// channel, so the lease count never dips and no second acquirer can steal the
// slot. A cancelled waiter removes itself from the list under the same lock;
// if it is no longer listed, a transfer is already in flight, and the waiter
// drains its channel and re-releases the session so nothing leaks.
//
// Session creation failures give the claimed slot back (waking the next
// waiter if any) and fail only that Acquire call.
type Pool struct {
	factory Factory
	opts    PoolOptions

	// mu protects free, leased, waiters and closed.
	mu      sync.Mutex
	free    []Session
	leased  int
	waiters []*waiter
	closed  bool

	leasedGauge  prometheus.Gauge
	waitingGauge prometheus.Gauge
}

// NewPool constructs a Pool around the given session factory.
func NewPool(factory Factory, opts PoolOptions) *Pool {
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = DefaultMaxSessions
	}
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}

	p := &Pool{
		factory: factory,
		opts:    opts,
		leasedGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "browser_pool_leased_sessions",
			Help: "Number of browser sessions currently leased.",
		}),
		waitingGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "browser_pool_waiting_acquirers",
			Help: "Number of acquirers queued for a browser session.",
		}),
	}
	if opts.Registerer != nil {
		opts.Registerer.MustRegister(p.leasedGauge, p.waitingGauge)
	}

	return p
}

// Acquire returns an exclusive session lease, waiting in FIFO order when all
// sessions are leased. It fails with ErrQueueFull when the waiting list is
// full, ErrTimeout when ctx fires while waiting and ErrUnavailable when a
// session cannot be created.
func (p *Pool) Acquire(ctx context.Context) (*Lease, error) {
	p.mu.Lock()

	if p.closed {
		p.mu.Unlock()

		return nil, serrors.With(serrors.ErrUnavailable, "session pool is closed")
	}

	// Free slot: claim it now, create the session outside the lock.
	if p.leased < p.opts.MaxSessions {
		p.leased++
		p.leasedGauge.Set(float64(p.leased))
		var s Session
		if n := len(p.free); n > 0 {
			s = p.free[n-1]
			p.free = p.free[:n-1]
		}
		p.mu.Unlock()

		return p.lease(ctx, s)
	}

	// All slots leased: queue up, or reject when the queue is full.
	if len(p.waiters) >= p.opts.QueueSize {
		p.mu.Unlock()
		logger.Debug(ctx, "session pool queue full",
			zap.Int("queueSize", p.opts.QueueSize))

		return nil, serrors.With(serrors.ErrQueueFull, "session pool queue is full")
	}

	w := &waiter{ch: make(chan handoff, 1)}
	p.waiters = append(p.waiters, w)
	p.waitingGauge.Set(float64(len(p.waiters)))
	p.mu.Unlock()

	start := time.Now()
	select {
	case h := <-w.ch:
		if h.closed {
			return nil, serrors.With(serrors.ErrUnavailable, "session pool is closed")
		}
		logger.Debug(ctx, "session handed off from queue",
			zap.Duration("waited", time.Since(start)))

		return p.lease(ctx, h.session)
	case <-ctx.Done():
		p.mu.Lock()
		if p.removeWaiterLocked(w) {
			p.mu.Unlock()

			return nil, serrors.Wrap(serrors.ErrTimeout, ctx.Err(), "timed out waiting for a session")
		}
		p.mu.Unlock()

		// Lost the race: a release already popped us, so the transfer is in
		// flight. Take it and pass it on.
		if h := <-w.ch; !h.closed {
			p.release(h.session)
		}

		return nil, serrors.Wrap(serrors.ErrTimeout, ctx.Err(), "timed out waiting for a session")
	}
}

// lease wraps a claimed slot in a Lease, creating the session when the slot
// came without one. The slot is already counted in leased.
func (p *Pool) lease(ctx context.Context, s Session) (*Lease, error) {
	if s == nil {
		created, err := p.factory.NewSession(ctx)
		if err != nil {
			// Give the slot back before failing this acquire.
			p.release(nil)

			return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not create browser session")
		}
		s = created
	}

	return &Lease{pool: p, session: s}, nil
}

// release returns a slot to the pool: the first queued waiter gets it,
// otherwise the lease count drops and a non-nil session goes to the free
// list. A nil session means the slot is free but no session exists for it.
func (p *Pool) release(s Session) {
	p.mu.Lock()

	if len(p.waiters) > 0 {
		w := p.waiters[0]
		p.waiters = p.waiters[1:]
		p.waitingGauge.Set(float64(len(p.waiters)))
		p.mu.Unlock()

		// Buffered channel: the waiter may have lost a cancellation race, but
		// it always drains the transfer, so this never blocks or leaks.
		w.ch <- handoff{session: s}

		return
	}

	p.leased--
	p.leasedGauge.Set(float64(p.leased))
	closed := p.closed
	if s != nil && !closed {
		p.free = append(p.free, s)
	}
	p.mu.Unlock()

	// After shutdown there is no free list to return to.
	if s != nil && closed {
		_ = s.Close()
	}
}

// removeWaiterLocked removes w from the waiting list. It reports false when w
// is no longer listed, meaning a release already popped it.
func (p *Pool) removeWaiterLocked(w *waiter) bool {
	for i, cand := range p.waiters {
		if cand == w {
			p.waiters = append(p.waiters[:i], p.waiters[i+1:]...)
			p.waitingGauge.Set(float64(len(p.waiters)))

			return true
		}
	}

	return false
}

// Health returns a consistent snapshot of pool usage.
func (p *Pool) Health() Health {
	p.mu.Lock()
	defer p.mu.Unlock()

	return Health{
		Leased:    p.leased,
		Waiting:   len(p.waiters),
		Capacity:  p.opts.MaxSessions,
		QueueSize: p.opts.QueueSize,
	}
}

// Close marks the pool closed, fails all queued waiters and closes idle
// sessions. Outstanding leases may still be released afterwards.
func (p *Pool) Close() error {
	p.mu.Lock()
	p.closed = true
	waiters := p.waiters
	p.waiters = nil
	p.waitingGauge.Set(0)
	free := p.free
	p.free = nil
	p.mu.Unlock()

	for _, w := range waiters {
		w.ch <- handoff{closed: true}
	}
	for _, s := range free {
		if err := s.Close(); err != nil {
			return fmt.Errorf("could not close idle session: %w", err)
		}
	}

	return nil
}

// Lease is an exclusive claim on one browser session. Release must be called
// exactly once; a second call panics.
type Lease struct {
	pool     *Pool
	session  Session
	released atomic.Bool
}

// Session returns the leased browser session.
func (l *Lease) Session() Session { return l.session }

// Release returns the session to the pool. Calling Release twice is a
// programming error and panics.
func (l *Lease) Release() {
	if !l.released.CompareAndSwap(false, true) {
		panic("browser: lease released twice")
	}

	l.pool.release(l.session)
}
