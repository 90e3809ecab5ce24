package pkmeans

import (
	"math/rand"
	"runtime"
)

const (
	// DefaultMaxIterations is the iteration cap used when WithMaxIterations is not given.
	DefaultMaxIterations = 100

	// DefaultSeed seeds initial-center selection when neither WithSeed nor WithRand is given.
	DefaultSeed int64 = 79

	// DefaultSearchBlockSize is the number of clusters one nearest-center worker scans.
	DefaultSearchBlockSize = 256
)

// Source picks random indexes for initial-center selection.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

type options struct {
	maxIterations    int
	newSource        func() Source
	workers          int
	searchBlockSize  int
	logger           *Logger
	metricsCollector MetricsCollector
	checkPartition   bool
}

func defaultOptions() options {
	return options{
		maxIterations:    DefaultMaxIterations,
		newSource:        seededSource(DefaultSeed),
		workers:          runtime.GOMAXPROCS(0),
		searchBlockSize:  DefaultSearchBlockSize,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

func seededSource(seed int64) func() Source {
	return func() Source {
		return rand.New(rand.NewSource(seed))
	}
}

// Option configures an Engine.
type Option func(*options)

// WithMaxIterations caps the number of assign/recompute iterations.
// Values <= 0 are rejected by New.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithSeed seeds initial-center selection. Every Run starts from a fresh
// generator with this seed, so repeated runs over the same data agree.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.newSource = seededSource(seed)
	}
}

// WithRand uses src for initial-center selection. The source is shared by all
// runs of the engine, so it must be safe for concurrent use if Run is called
// concurrently.
//
// If nil is passed, the default seed is used.
func WithRand(src Source) Option {
	return func(o *options) {
		if src == nil {
			o.newSource = seededSource(DefaultSeed)
			return
		}
		o.newSource = func() Source { return src }
	}
}

// WithWorkers limits the number of goroutines used per phase.
// If n <= 0, runtime.GOMAXPROCS(0) is used.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.workers = n
	}
}

// WithSearchBlockSize sets how many clusters a single nearest-center worker
// scans. When k is not larger than n, the search for a point runs on the
// calling goroutine.
func WithSearchBlockSize(n int) Option {
	return func(o *options) {
		if n <= 0 {
			n = DefaultSearchBlockSize
		}
		o.searchBlockSize = n
	}
}

// WithLogger configures the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
//
// Example:
//
//	metrics := &pkmeans.BasicMetricsCollector{}
//	engine, _ := pkmeans.New(8, pkmeans.WithMetricsCollector(metrics))
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithPartitionCheck verifies after every phase that the clusters partition the
// point set. It costs a full pass over all memberships and is meant for tests
// and debugging.
func WithPartitionCheck(enabled bool) Option {
	return func(o *options) {
		o.checkPartition = enabled
	}
}
