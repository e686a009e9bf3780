package syncer_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/cache"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/orders"
	"gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/syncer"
	mock_syncer "gitlab.ozon.dev/pupkingeorgij/orderdesk/internal/syncer/mocks"
)

const (
	waitFor = 2 * time.Second
	tick    = 5 * time.Millisecond
)

var (
	snapshotA = []orders.Order{{Code: "DH001", Status: orders.StatusDelivered}, {Code: "DH002", Status: orders.StatusPending}}
	snapshotB = []orders.Order{{Code: "DH003", Status: orders.StatusShipped}}
)

func newSynchronizer(t *testing.T, feed syncer.Fetcher, interval time.Duration) (*syncer.Synchronizer, *cache.OrderCache) {
	t.Helper()
	c := cache.NewOrderCache(zap.NewNop())
	return syncer.New(feed, c, syncer.Config{Interval: interval}, zap.NewNop()), c
}

func TestSynchronizer_FetchesImmediatelyOnStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mock_syncer.NewMockFetcher(ctrl)

	var calls atomic.Int32
	feed.EXPECT().FetchOrders(gomock.Any()).DoAndReturn(func(context.Context) ([]orders.Order, error) {
		calls.Add(1)
		return snapshotA, nil
	}).Times(1)

	s, c := newSynchronizer(t, feed, time.Hour)
	assert.Equal(t, 0, c.Len())

	h, err := s.Start(context.Background())
	require.NoError(t, err)
	defer h.Stop()

	assert.Equal(t, uint64(1), s.Status().Fetches)
	assert.Eventually(t, func() bool { return c.Len() == 2 }, waitFor, tick)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	assert.True(t, s.Status().Running)
	assert.Empty(t, s.Status().LastError)
}

func TestSynchronizer_PollsUntilStopped(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mock_syncer.NewMockFetcher(ctrl)

	var calls atomic.Int32
	feed.EXPECT().FetchOrders(gomock.Any()).DoAndReturn(func(context.Context) ([]orders.Order, error) {
		calls.Add(1)
		return snapshotA, nil
	}).AnyTimes()

	interval := 20 * time.Millisecond
	s, _ := newSynchronizer(t, feed, interval)

	h, err := s.Start(context.Background())
	require.NoError(t, err)

	// Three periods after start means at least four fetches.
	assert.Eventually(t, func() bool { return calls.Load() >= 4 }, waitFor, tick)

	h.Stop()
	stoppedAt := calls.Load()
	assert.False(t, s.Status().Running)

	time.Sleep(5 * interval)
	assert.Equal(t, stoppedAt, calls.Load())

	h.Stop()
	assert.False(t, s.Refresh())
}

func TestSynchronizer_FailureKeepsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mock_syncer.NewMockFetcher(ctrl)

	gomock.InOrder(
		feed.EXPECT().FetchOrders(gomock.Any()).Return(snapshotA, nil),
		feed.EXPECT().FetchOrders(gomock.Any()).Return(nil, errors.New("connection refused")),
		feed.EXPECT().FetchOrders(gomock.Any()).Return(snapshotB, nil),
	)

	s, c := newSynchronizer(t, feed, time.Hour)
	h, err := s.Start(context.Background())
	require.NoError(t, err)
	defer h.Stop()

	require.Eventually(t, func() bool { return s.Status().Applied == 1 }, waitFor, tick)

	require.True(t, s.Refresh())
	require.Eventually(t, func() bool { return s.Status().LastError != "" }, waitFor, tick)
	assert.Contains(t, s.Status().LastError, "connection refused")
	assert.Equal(t, 2, c.Len())
	_, ok := c.Get("DH001")
	assert.True(t, ok)

	require.True(t, s.Refresh())
	require.Eventually(t, func() bool { return s.Status().Applied == 2 }, waitFor, tick)
	assert.Empty(t, s.Status().LastError)
	assert.Equal(t, 1, c.Len())
}

func TestSynchronizer_DiscardsOutOfOrderSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mock_syncer.NewMockFetcher(ctrl)

	release := make(chan struct{})
	firstStarted := make(chan struct{})

	gomock.InOrder(
		feed.EXPECT().FetchOrders(gomock.Any()).DoAndReturn(func(context.Context) ([]orders.Order, error) {
			close(firstStarted)
			<-release
			return snapshotA, nil
		}),
		feed.EXPECT().FetchOrders(gomock.Any()).Return(snapshotB, nil),
	)

	s, c := newSynchronizer(t, feed, time.Hour)
	h, err := s.Start(context.Background())
	require.NoError(t, err)
	defer h.Stop()

	<-firstStarted
	require.True(t, s.Refresh())
	require.Eventually(t, func() bool { return s.Status().Applied == 1 }, waitFor, tick)

	close(release)
	require.Eventually(t, func() bool { return s.Status().Discarded == 1 }, waitFor, tick)

	all := c.All()
	require.Len(t, all, 1)
	assert.Equal(t, "DH003", all[0].Code)
}

func TestSynchronizer_DropsResponseAfterStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mock_syncer.NewMockFetcher(ctrl)

	inFlight := make(chan struct{})
	feed.EXPECT().FetchOrders(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]orders.Order, error) {
		close(inFlight)
		<-ctx.Done()
		// A late response that ignores cancellation.
		return snapshotA, nil
	})

	s, c := newSynchronizer(t, feed, time.Hour)
	h, err := s.Start(context.Background())
	require.NoError(t, err)

	<-inFlight
	h.Stop()

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, uint64(0), s.Status().Applied)
	assert.Equal(t, uint64(1), s.Status().Discarded)
	assert.Empty(t, s.Status().LastError)
}

func TestSynchronizer_StartTwice(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mock_syncer.NewMockFetcher(ctrl)
	feed.EXPECT().FetchOrders(gomock.Any()).Return(snapshotA, nil).AnyTimes()

	s, _ := newSynchronizer(t, feed, time.Hour)
	assert.False(t, s.Refresh())

	h, err := s.Start(context.Background())
	require.NoError(t, err)
	defer h.Stop()

	_, err = s.Start(context.Background())
	assert.ErrorIs(t, err, syncer.ErrAlreadyStarted)
}

func TestSynchronizer_StopsWithParentContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	feed := mock_syncer.NewMockFetcher(ctrl)

	var calls atomic.Int32
	feed.EXPECT().FetchOrders(gomock.Any()).DoAndReturn(func(context.Context) ([]orders.Order, error) {
		calls.Add(1)
		return snapshotA, nil
	}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	s, _ := newSynchronizer(t, feed, 10*time.Millisecond)
	h, err := s.Start(ctx)
	require.NoError(t, err)

	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, waitFor, tick)
	cancel()
	h.Stop()

	n := calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, n, calls.Load())
}
