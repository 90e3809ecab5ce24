package pkmeans

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// verifyPartition checks that the clusters' memberships are disjoint, cover
// every point, and agree with each point's cluster tag.
//
// Must only be called at a phase boundary.
func verifyPartition(points []*Point, clusters []*cluster) error {
	seen := roaring.New()
	for _, c := range clusters {
		m := roaring.New()
		for _, h := range c.members {
			if h < 0 || h >= len(points) {
				return fmt.Errorf("%w: cluster %d holds unknown handle %d", ErrPartitionViolation, c.id, h)
			}
			if got := points[h].cluster; got != c.id {
				return fmt.Errorf("%w: point %d is tagged %d but is a member of cluster %d",
					ErrPartitionViolation, points[h].id, got, c.id)
			}
			m.Add(uint32(h))
		}
		if m.GetCardinality() != uint64(len(c.members)) {
			return fmt.Errorf("%w: cluster %d holds duplicate members", ErrPartitionViolation, c.id)
		}
		if seen.Intersects(m) {
			return fmt.Errorf("%w: cluster %d shares members with another cluster", ErrPartitionViolation, c.id)
		}
		seen.Or(m)
	}

	if got := seen.GetCardinality(); got != uint64(len(points)) {
		return fmt.Errorf("%w: %d of %d points are assigned", ErrPartitionViolation, got, len(points))
	}
	return nil
}

// VerifyPartition checks that res assigns every point in points to exactly one
// cluster and that each point's cluster tag matches.
func VerifyPartition(res *Result, points []*Point) error {
	index := make(map[int]int, len(points))
	for i, p := range points {
		index[p.id] = i
	}

	seen := roaring.New()
	for _, c := range res.Clusters {
		for _, id := range c.Members {
			h, ok := index[id]
			if !ok {
				return fmt.Errorf("%w: cluster %d holds unknown point %d", ErrPartitionViolation, c.ID, id)
			}
			if got := points[h].cluster; got != c.ID {
				return fmt.Errorf("%w: point %d is tagged %d but is a member of cluster %d",
					ErrPartitionViolation, id, got, c.ID)
			}
			if !seen.CheckedAdd(uint32(h)) {
				return fmt.Errorf("%w: point %d is a member of more than one cluster", ErrPartitionViolation, id)
			}
		}
	}

	if got := seen.GetCardinality(); got != uint64(len(points)) {
		return fmt.Errorf("%w: %d of %d points are assigned", ErrPartitionViolation, got, len(points))
	}
	return nil
}
