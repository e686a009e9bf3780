//go:generate mockgen -source ./synchronizer.go -destination=./mocks/synchronizer.go -package=mock_syncer
package syncer

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/cache"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/metrics"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/orders"
)

const DefaultInterval = 4 * time.Second

var ErrAlreadyStarted = errors.New("synchronizer already started")

type Fetcher interface {
	FetchOrders(ctx context.Context) ([]orders.Order, error)
}

type Config struct {
	Interval time.Duration
}

// Status describes the synchronizer for presentation; LastError is the
// non-blocking notice shown while the held snapshot may be stale.
type Status struct {
	Running      bool      `json:"running"`
	LastSyncedAt time.Time `json:"last_synced_at"`
	LastError    string    `json:"last_error,omitempty"`
	LastErrorAt  time.Time `json:"last_error_at"`
	Fetches      uint64    `json:"fetches"`
	Applied      uint64    `json:"applied"`
	Discarded    uint64    `json:"discarded"`
}

// Synchronizer keeps the order cache in step with the feed by polling it.
// Every fetch carries a sequence number and only results newer than the last
// applied one replace the cache.
type Synchronizer struct {
	feed     Fetcher
	cache    *cache.OrderCache
	interval time.Duration
	logger   *zap.Logger
	now      func() time.Time

	refreshCh chan struct{}
	wg        sync.WaitGroup

	mu         sync.Mutex
	started    bool
	stopped    bool
	nextSeq    uint64
	appliedSeq uint64
	errSeq     uint64
	status     Status
}

func New(feed Fetcher, c *cache.OrderCache, cfg Config, logger *zap.Logger) *Synchronizer {
	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Synchronizer{
		feed:      feed,
		cache:     c,
		interval:  interval,
		logger:    logger.With(zap.String("component", "syncer")),
		now:       time.Now,
		refreshCh: make(chan struct{}, 1),
	}
}

// Handle owns a running synchronizer. Stop must be called on teardown.
type Handle struct {
	s      *Synchronizer
	cancel context.CancelFunc
	once   sync.Once
}

// Start fetches once right away and then on every interval tick until the
// returned handle is stopped or ctx is done.
func (s *Synchronizer) Start(ctx context.Context) (*Handle, error) {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil, ErrAlreadyStarted
	}
	s.started = true
	s.status.Running = true
	s.mu.Unlock()

	loopCtx, cancel := context.WithCancel(ctx)
	h := &Handle{s: s, cancel: cancel}

	s.logger.Info("Starting order synchronizer", zap.Duration("interval", s.interval))
	s.spawnFetch(loopCtx)

	s.wg.Add(1)
	go s.run(loopCtx)

	return h, nil
}

// Stop cancels the timer and waits for in-flight fetches to finish. Results
// arriving after Stop are dropped. Safe to call more than once.
func (h *Handle) Stop() {
	h.once.Do(func() {
		s := h.s
		s.mu.Lock()
		s.stopped = true
		s.status.Running = false
		s.mu.Unlock()

		h.cancel()
		s.wg.Wait()
		s.logger.Info("Order synchronizer stopped")
	})
}

// Refresh asks for a fetch outside the regular schedule. It never blocks and
// coalesces with a refresh that is already pending. It reports false when the
// synchronizer is not running.
func (s *Synchronizer) Refresh() bool {
	s.mu.Lock()
	running := s.started && !s.stopped
	s.mu.Unlock()
	if !running {
		return false
	}

	select {
	case s.refreshCh <- struct{}{}:
	default:
	}
	return true
}

func (s *Synchronizer) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Synchronizer) Cache() *cache.OrderCache {
	return s.cache
}

func (s *Synchronizer) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.spawnFetch(ctx)
		case <-s.refreshCh:
			s.logger.Debug("Refresh requested")
			s.spawnFetch(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (s *Synchronizer) spawnFetch(ctx context.Context) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.nextSeq++
	seq := s.nextSeq
	s.status.Fetches++
	s.wg.Add(1)
	s.mu.Unlock()

	metrics.FeedFetchesTotal.Inc()
	go s.fetch(ctx, seq)
}

func (s *Synchronizer) fetch(ctx context.Context, seq uint64) {
	defer s.wg.Done()

	start := time.Now()
	list, err := s.feed.FetchOrders(ctx)
	metrics.FeedFetchDuration.Observe(time.Since(start).Seconds())

	s.apply(seq, list, err)
}

func (s *Synchronizer) apply(seq uint64, list []orders.Order, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l := s.logger.With(zap.Uint64("seq", seq))

	if s.stopped {
		s.status.Discarded++
		metrics.SnapshotsDiscardedTotal.Inc()
		return
	}

	if err != nil {
		metrics.FeedFetchErrorsTotal.Inc()
		if seq < s.appliedSeq {
			l.Debug("Ignoring failure of superseded fetch", zap.Error(err))
			return
		}
		s.errSeq = seq
		s.status.LastError = err.Error()
		s.status.LastErrorAt = s.now()
		l.Warn("Order feed fetch failed, keeping previous snapshot", zap.Error(err))
		return
	}

	if seq <= s.appliedSeq {
		s.status.Discarded++
		metrics.SnapshotsDiscardedTotal.Inc()
		l.Debug("Discarding stale snapshot", zap.Uint64("applied_seq", s.appliedSeq))
		return
	}

	now := s.now()
	s.cache.Replace(list, now)
	s.appliedSeq = seq
	s.status.Applied++
	s.status.LastSyncedAt = now
	if s.errSeq < seq {
		s.status.LastError = ""
	}
	l.Debug("Applied order snapshot", zap.Int("orders", len(list)))
}
