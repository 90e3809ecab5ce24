package pkmeans

import (
	"slices"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// cluster owns one centroid and the handles (indexes into the run's point
// slice) of its current members.
//
// Membership is guarded by mu because many assignment workers move points
// concurrently. The centroid is not locked: it is only written during the
// recompute phase, where each cluster is handled by exactly one worker, and
// only read during the assignment phase.
type cluster struct {
	id       int
	centroid []float64

	mu      sync.Mutex
	members []int
}

func newCluster(id int, centroid []float64, first int) *cluster {
	return &cluster{
		id:       id,
		centroid: slices.Clone(centroid),
		members:  []int{first},
	}
}

func (c *cluster) addMember(h int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.members = append(c.members, h)
}

// removeMember removes the first occurrence of h and reports whether it was found.
func (c *cluster) removeMember(h int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, m := range c.members {
		if m == h {
			c.members = slices.Delete(c.members, i, i+1)
			return true
		}
	}
	return false
}

func (c *cluster) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.members)
}

func (c *cluster) centroidAt(j int) (float64, error) {
	if j < 0 || j >= len(c.centroid) {
		return 0, &IndexOutOfRangeError{Index: j, Dimension: len(c.centroid)}
	}
	return c.centroid[j], nil
}

func (c *cluster) setCentroidAt(j int, v float64) error {
	if j < 0 || j >= len(c.centroid) {
		return &IndexOutOfRangeError{Index: j, Dimension: len(c.centroid)}
	}
	c.centroid[j] = v
	return nil
}

// recompute sets the centroid to the mean of the members' coordinates.
// An empty cluster keeps its centroid. sum is scratch space of length dim.
//
// Must only be called after the assignment phase has finished.
func (c *cluster) recompute(points []*Point, sum []float64) error {
	if len(c.members) == 0 {
		return nil
	}

	// Member order depends on scheduling; sort so the sums are reproducible.
	slices.Sort(c.members)

	clear(sum)
	for _, h := range c.members {
		floats.Add(sum, points[h].coords)
	}

	n := float64(len(c.members))
	for j, v := range sum {
		if err := c.setCentroidAt(j, v/n); err != nil {
			return err
		}
	}
	return nil
}

func (c *cluster) snapshot(points []*Point) ClusterSnapshot {
	members := make([]int, len(c.members))
	for i, h := range c.members {
		members[i] = points[h].id
	}
	return ClusterSnapshot{
		ID:       c.id,
		Centroid: slices.Clone(c.centroid),
		Members:  members,
	}
}
