package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	CompileDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hotkeyc_compile_seconds",
		Help:    "Time spent compiling a root config and its includes.",
		Buckets: prometheus.DefBuckets,
	})

	SourceUnitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hotkeyc_source_units_total",
		Help: "Total number of config files loaded.",
	})

	IncludeEdges = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hotkeyc_include_edges",
		Help: "Number of include edges in the last compiled closure.",
	})

	OutputsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotkeyc_outputs_total",
		Help: "Total number of compiled outputs by kind.",
	}, []string{"kind"})

	CompileErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "hotkeyc_compile_errors_total",
		Help: "Total number of failed compilations by error code.",
	}, []string{"code"})

	DroppedContinuationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hotkeyc_dropped_continuations_total",
		Help: "Total number of continuation lines dropped because their kind differed from the pending line.",
	})

	OrphanLinesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hotkeyc_orphan_lines_total",
		Help: "Total number of key or command lines left without a partner.",
	})

	IncludeCyclesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hotkeyc_include_cycles_total",
		Help: "Total number of include cycles detected.",
	})
)
