package pkmeans

import (
	"fmt"
	"time"
)

// State is the lifecycle state of a clustering run.
type State int

const (
	StateUninitialized State = iota
	StateCentersSelected
	StateAssigning
	StateRecomputing
	// StateConverged means the last assignment phase moved no point.
	StateConverged
	// StateIterationCapReached means the run stopped at the iteration cap
	// while points were still moving.
	StateIterationCapReached
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateCentersSelected:
		return "CentersSelected"
	case StateAssigning:
		return "Assigning"
	case StateRecomputing:
		return "Recomputing"
	case StateConverged:
		return "Converged"
	case StateIterationCapReached:
		return "IterationCapReached"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Terminal reports whether s ends a run.
func (s State) Terminal() bool {
	return s == StateConverged || s == StateIterationCapReached
}

// ClusterSnapshot is a read-only copy of a cluster at the end of a run.
type ClusterSnapshot struct {
	ID       int       `json:"id"`
	Centroid []float64 `json:"centroid"`
	// Members holds the ids of the member points in ascending handle order.
	Members []int `json:"members"`
}

// Size returns the number of member points.
func (c ClusterSnapshot) Size() int { return len(c.Members) }

// Result is the outcome of a successful run.
type Result struct {
	// Iterations is the iteration at which the loop stopped (1-based).
	Iterations int
	// Changed reports whether any point changed cluster on the last assignment pass.
	Changed bool
	// Moved is the number of points that changed cluster on the last assignment pass.
	Moved int
	// State is StateConverged or StateIterationCapReached.
	State State

	// InitDuration is the time spent selecting the initial centers.
	InitDuration time.Duration
	// LoopDuration is the time spent in the assign/recompute loop.
	LoopDuration time.Duration

	// Clusters are ordered by cluster id.
	Clusters []ClusterSnapshot
}

// Converged reports whether the run stopped because no point moved.
func (r *Result) Converged() bool { return !r.Changed }

// TotalDuration returns InitDuration + LoopDuration.
func (r *Result) TotalDuration() time.Duration { return r.InitDuration + r.LoopDuration }

// Assignments maps each point id to its cluster id.
func (r *Result) Assignments() map[int]int {
	n := 0
	for _, c := range r.Clusters {
		n += len(c.Members)
	}
	out := make(map[int]int, n)
	for _, c := range r.Clusters {
		for _, id := range c.Members {
			out[id] = c.ID
		}
	}
	return out
}
