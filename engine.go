package pkmeans

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/hupe1980/pkmeans/internal/parallel"
	"golang.org/x/time/rate"
)

// Engine partitions points into k clusters with parallel Lloyd iterations.
//
// An Engine holds only configuration; every call to Run works on its own
// state, so one Engine may be reused for several point sets.
type Engine struct {
	k    int
	opts options
}

// New creates an Engine that forms k clusters.
func New(k int, optFns ...Option) (*Engine, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	if k <= 0 {
		return nil, &PreconditionError{K: k, Reason: "k must be positive"}
	}
	if opts.maxIterations <= 0 {
		return nil, &PreconditionError{K: k, Reason: fmt.Sprintf("max iterations must be positive, got %d", opts.maxIterations)}
	}

	return &Engine{k: k, opts: opts}, nil
}

// K returns the number of clusters the engine forms.
func (e *Engine) K() int { return e.k }

// MaxIterations returns the iteration cap.
func (e *Engine) MaxIterations() int { return e.opts.maxIterations }

// Run clusters points and returns the final cluster state.
//
// Run resets every point's cluster tag before it starts and sets it to the
// final cluster on return. The points must not be used concurrently by another
// run. Both a converged run and a run that hits the iteration cap are
// successful; Result.State tells them apart.
//
// Run fails with ErrPreconditionViolation when k exceeds the number of points,
// when points is empty, when the points disagree on dimensionality, or when
// two points share an id. Cancelling ctx stops the run at the next phase
// boundary.
func (e *Engine) Run(ctx context.Context, points []*Point) (*Result, error) {
	start := time.Now()
	logger := e.opts.logger.WithK(e.k).WithCount(len(points))

	r, err := e.newRun(points)
	if err != nil {
		logger.LogRun(ctx, 0, StateUninitialized, time.Since(start), err)
		e.opts.metricsCollector.RecordRun(0, false, time.Since(start), err)
		return nil, err
	}
	r.logger = logger.WithDimension(r.dim)

	res, err := r.run(ctx)
	elapsed := time.Since(start)
	if err != nil {
		r.logger.LogRun(ctx, r.iteration, r.state, elapsed, err)
		e.opts.metricsCollector.RecordRun(r.iteration, false, elapsed, err)
		return nil, err
	}

	r.logger.LogRun(ctx, res.Iterations, res.State, elapsed, nil)
	e.opts.metricsCollector.RecordRun(res.Iterations, res.Converged(), elapsed, nil)
	return res, nil
}

// run is the per-call state of Engine.Run.
type run struct {
	k              int
	maxIterations  int
	workers        int
	checkPartition bool
	src            Source
	logger         *Logger
	metrics        MetricsCollector
	progress       rate.Sometimes

	points       []*Point
	dim          int
	clusters     []*cluster
	searchBlocks []parallel.Block

	state     State
	iteration int
}

func (e *Engine) newRun(points []*Point) (*run, error) {
	n := len(points)
	if n == 0 {
		return nil, &PreconditionError{K: e.k, Points: 0, Reason: "no points"}
	}
	if e.k > n {
		return nil, &PreconditionError{K: e.k, Points: n}
	}

	dim := points[0].Dim()
	if dim == 0 {
		return nil, &PreconditionError{K: e.k, Points: n, Reason: "points have no coordinates"}
	}
	ids := make(map[int]struct{}, n)
	for _, p := range points {
		if p.Dim() != dim {
			return nil, &PreconditionError{K: e.k, Points: n,
				Reason: fmt.Sprintf("point %d has dimension %d, expected %d", p.id, p.Dim(), dim)}
		}
		if _, dup := ids[p.id]; dup {
			return nil, &PreconditionError{K: e.k, Points: n, Reason: fmt.Sprintf("duplicate point id %d", p.id)}
		}
		ids[p.id] = struct{}{}
	}

	return &run{
		k:              e.k,
		maxIterations:  e.opts.maxIterations,
		workers:        e.opts.workers,
		checkPartition: e.opts.checkPartition,
		src:            e.opts.newSource(),
		metrics:        e.opts.metricsCollector,
		progress:       rate.Sometimes{Interval: time.Second},
		points:         points,
		dim:            dim,
		searchBlocks:   parallel.Chunk(e.k, e.opts.searchBlockSize),
		state:          StateUninitialized,
	}, nil
}

func (r *run) run(ctx context.Context) (*Result, error) {
	initStart := time.Now()
	centers := r.selectCenters()
	initDuration := time.Since(initStart)
	r.metrics.RecordInit(r.k, initDuration)
	r.logger.LogInit(ctx, centers, initDuration)

	loopStart := time.Now()
	var moved int
	for r.iteration = 1; ; r.iteration++ {
		assignStart := time.Now()
		var err error
		if moved, err = r.assign(ctx); err != nil {
			return nil, err
		}
		assignDuration := time.Since(assignStart)

		recomputeStart := time.Now()
		if err := r.recompute(ctx); err != nil {
			return nil, err
		}
		recomputeDuration := time.Since(recomputeStart)

		r.metrics.RecordIteration(r.iteration, moved, assignDuration, recomputeDuration)
		r.logger.LogIteration(ctx, r.iteration, moved, assignDuration, recomputeDuration)
		r.progress.Do(func() {
			r.logger.LogProgress(ctx, r.iteration, r.maxIterations, moved)
		})

		if moved == 0 || r.iteration >= r.maxIterations {
			break
		}
	}
	loopDuration := time.Since(loopStart)

	r.state = StateIterationCapReached
	if moved == 0 {
		r.state = StateConverged
	}

	res := &Result{
		Iterations:   r.iteration,
		Changed:      moved > 0,
		Moved:        moved,
		State:        r.state,
		InitDuration: initDuration,
		LoopDuration: loopDuration,
		Clusters:     make([]ClusterSnapshot, len(r.clusters)),
	}
	for i, c := range r.clusters {
		res.Clusters[i] = c.snapshot(r.points)
	}
	return res, nil
}

// selectCenters picks k distinct points by rejection sampling and seeds one
// cluster with each, in draw order. It returns the ids of the chosen points.
func (r *run) selectCenters() []int {
	for _, p := range r.points {
		p.setCluster(Unassigned)
	}

	n := len(r.points)
	chosen := make(map[int]struct{}, r.k)
	centers := make([]int, 0, r.k)
	r.clusters = make([]*cluster, 0, r.k)
	for id := range r.k {
		for {
			h := r.src.Intn(n)
			if _, dup := chosen[h]; dup {
				continue
			}
			chosen[h] = struct{}{}
			centers = append(centers, r.points[h].id)

			r.points[h].setCluster(id)
			r.clusters = append(r.clusters, newCluster(id, r.points[h].coords, h))
			break
		}
	}

	r.state = StateCentersSelected
	return centers
}

// assign moves every point to its nearest cluster and returns how many moved.
func (r *run) assign(ctx context.Context) (int, error) {
	r.state = StateAssigning

	var moved atomic.Int64
	err := parallel.For(ctx, len(r.points), r.workers, func(b parallel.Block) error {
		var local int64
		for h := b.Lo; h < b.Hi; h++ {
			p := r.points[h]
			old := p.cluster
			next := nearestCluster(r.clusters, p.coords, r.searchBlocks)
			if old == next {
				continue
			}
			if old != Unassigned && !r.clusters[old].removeMember(h) {
				return fmt.Errorf("%w: point %d missing from cluster %d", ErrPartitionViolation, p.id, old)
			}
			r.clusters[next].addMember(h)
			p.setCluster(next)
			local++
		}
		moved.Add(local)
		return nil
	})
	if err != nil {
		return 0, err
	}

	if r.checkPartition {
		if err := verifyPartition(r.points, r.clusters); err != nil {
			return 0, err
		}
	}
	return int(moved.Load()), nil
}

// recompute moves every non-empty cluster's centroid to the mean of its members.
func (r *run) recompute(ctx context.Context) error {
	r.state = StateRecomputing

	err := parallel.For(ctx, len(r.clusters), r.workers, func(b parallel.Block) error {
		sum := make([]float64, r.dim)
		for _, c := range r.clusters[b.Lo:b.Hi] {
			if err := c.recompute(r.points, sum); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if r.checkPartition {
		return verifyPartition(r.points, r.clusters)
	}
	return nil
}
