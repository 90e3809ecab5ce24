package pkmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrPreconditionViolation is returned when a run cannot start with the given
	// parameters, for example when k exceeds the number of points.
	ErrPreconditionViolation = errors.New("precondition violation")

	// ErrIndexOutOfRange is returned when a coordinate or centroid index is outside
	// [0, dimensionality).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrResourceUnavailable is returned when a secondary output such as the
	// timing log cannot be opened. Callers are expected to recover from it.
	ErrResourceUnavailable = errors.New("resource unavailable")

	// ErrPartitionViolation indicates that cluster membership no longer partitions
	// the point set.
	ErrPartitionViolation = errors.New("partition violation")
)

// PreconditionError describes why a run was rejected.
//
// It matches ErrPreconditionViolation with errors.Is.
type PreconditionError struct {
	K      int
	Points int
	Reason string
}

func (e *PreconditionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("precondition violation: %s (k=%d, points=%d)", e.Reason, e.K, e.Points)
	}
	return fmt.Sprintf("precondition violation: k=%d exceeds point count %d", e.K, e.Points)
}

func (e *PreconditionError) Is(target error) bool { return target == ErrPreconditionViolation }

// IndexOutOfRangeError indicates an out-of-range coordinate or centroid access.
//
// It matches ErrIndexOutOfRange with errors.Is.
type IndexOutOfRangeError struct {
	Index     int
	Dimension int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index out of range: %d not in [0, %d)", e.Index, e.Dimension)
}

func (e *IndexOutOfRangeError) Is(target error) bool { return target == ErrIndexOutOfRange }
