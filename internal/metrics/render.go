package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameRenderedBlocks       = "rendered_blocks_total"
	NameUnhandledBlocks      = "unhandled_blocks_total"
	NameUnresolvedBlocks     = "unresolved_blocks_total"
	NameUnhandledAnnotations = "unhandled_annotations_total"
	LabelBlockType           = "block_type"
	LabelAnnotation          = "annotation"
)

var RenderedBlocks = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameRenderedBlocks,
		Help:      "Total rendered blocks",
		Namespace: Namespace,
	},
	[]string{LabelBlockType},
)

var UnhandledBlocks = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameUnhandledBlocks,
		Help:      "Total blocks skipped because of their unknown type",
		Namespace: Namespace,
	},
	[]string{LabelBlockType},
)

var UnresolvedBlocks = promauto.NewCounter(
	prometheus.CounterOpts{
		Name:      NameUnresolvedBlocks,
		Help:      "Total blocks that could not be loaded from the store",
		Namespace: Namespace,
	},
)

var UnhandledAnnotations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameUnhandledAnnotations,
		Help:      "Total text annotations skipped because of their unknown code",
		Namespace: Namespace,
	},
	[]string{LabelAnnotation},
)
