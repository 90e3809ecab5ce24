package pkmeans

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordInit is called after the initial centers have been selected.
	RecordInit(k int, duration time.Duration)

	// RecordIteration is called after each assign/recompute iteration.
	// moved is the number of points that changed cluster during assignment.
	RecordIteration(iteration, moved int, assign, recompute time.Duration)

	// RecordRun is called once per Run. err is nil if successful.
	RecordRun(iterations int, converged bool, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInit(int, time.Duration)                          {}
func (NoopMetricsCollector) RecordIteration(int, int, time.Duration, time.Duration) {}
func (NoopMetricsCollector) RecordRun(int, bool, time.Duration, error)              {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount            atomic.Int64
	RunErrors           atomic.Int64
	ConvergedRuns       atomic.Int64
	RunTotalNanos       atomic.Int64
	InitTotalNanos      atomic.Int64
	IterationCount      atomic.Int64
	PointsMoved         atomic.Int64
	AssignTotalNanos    atomic.Int64
	RecomputeTotalNanos atomic.Int64
}

// RecordInit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInit(_ int, duration time.Duration) {
	b.InitTotalNanos.Add(duration.Nanoseconds())
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(_, moved int, assign, recompute time.Duration) {
	b.IterationCount.Add(1)
	b.PointsMoved.Add(int64(moved))
	b.AssignTotalNanos.Add(assign.Nanoseconds())
	b.RecomputeTotalNanos.Add(recompute.Nanoseconds())
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(_ int, converged bool, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
		return
	}
	if converged {
		b.ConvergedRuns.Add(1)
	}
}

// MetricsStats is a point-in-time copy of BasicMetricsCollector counters.
type MetricsStats struct {
	Runs              int64
	RunErrors         int64
	ConvergedRuns     int64
	Iterations        int64
	PointsMoved       int64
	AvgRunNanos       int64
	AvgAssignNanos    int64
	AvgRecomputeNanos int64
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() MetricsStats {
	s := MetricsStats{
		Runs:          b.RunCount.Load(),
		RunErrors:     b.RunErrors.Load(),
		ConvergedRuns: b.ConvergedRuns.Load(),
		Iterations:    b.IterationCount.Load(),
		PointsMoved:   b.PointsMoved.Load(),
	}
	if s.Runs > 0 {
		s.AvgRunNanos = b.RunTotalNanos.Load() / s.Runs
	}
	if s.Iterations > 0 {
		s.AvgAssignNanos = b.AssignTotalNanos.Load() / s.Iterations
		s.AvgRecomputeNanos = b.RecomputeTotalNanos.Load() / s.Iterations
	}
	return s
}
