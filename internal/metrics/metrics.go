package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	FeedFetchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orderdesk_feed_fetches_total",
		Help: "Total number of order feed fetches started.",
	})

	FeedFetchErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orderdesk_feed_fetch_errors_total",
		Help: "Total number of order feed fetches that failed.",
	})

	FeedFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "orderdesk_feed_fetch_duration_seconds",
		Help:    "Duration of order feed fetches.",
		Buckets: prometheus.DefBuckets,
	})

	SnapshotsDiscardedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orderdesk_snapshots_discarded_total",
		Help: "Fetched snapshots dropped because a newer one was already applied or the synchronizer stopped.",
	})

	DuplicateOrdersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orderdesk_duplicate_orders_total",
		Help: "Orders dropped on ingest because their code was already present in the snapshot.",
	})

	OrderCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "orderdesk_order_cache_items",
		Help: "Current number of orders held in the cache.",
	})

	ReturnDecisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orderdesk_return_decisions_total",
		Help: "Return decisions accepted for dispatch, by decision.",
	},
		[]string{"decision"},
	)

	OutboxTasksPublishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "orderdesk_outbox_tasks_published_total",
		Help: "Outbox tasks successfully handed to the producer.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "orderdesk_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)
)
