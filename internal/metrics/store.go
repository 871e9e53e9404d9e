package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameStoreRequests        = "store_requests_total"
	NameStoreRequestDuration = "store_request_duration_seconds"
	NameStoreFetchedBlocks   = "store_fetched_blocks_total"
	LabelMethod              = "method"
	LabelStatus              = "status"
)

const (
	StatusSuccess = "success"
	StatusFailure = "failure"
)

var StoreRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameStoreRequests,
		Help:      "Total requests sent to the block store",
		Namespace: Namespace,
	},
	[]string{LabelMethod, LabelStatus},
)

var StoreRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:      NameStoreRequestDuration,
		Help:      "Duration of the requests sent to the block store",
		Namespace: Namespace,
		Buckets:   prometheus.DefBuckets,
	},
	[]string{LabelMethod},
)

var StoreFetchedBlocks = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameStoreFetchedBlocks,
		Help:      "Total blocks returned by the block store",
		Namespace: Namespace,
	},
	[]string{LabelMethod},
)
