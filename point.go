package pkmeans

import "slices"

// Unassigned is the cluster id of a point that has not been placed in any cluster yet.
const Unassigned = -1

// Point is an immutable coordinate vector tagged with the cluster it currently belongs to.
//
// Only the engine changes the cluster tag. Callers may read it once Run has returned.
type Point struct {
	id      int
	coords  []float64
	cluster int
	label   string
}

// NewPoint creates a point. The coordinates are copied.
// label is an optional display name and may be empty.
func NewPoint(id int, coords []float64, label string) *Point {
	return &Point{
		id:      id,
		coords:  slices.Clone(coords),
		cluster: Unassigned,
		label:   label,
	}
}

// ID returns the stable identity of the point.
func (p *Point) ID() int { return p.id }

// Dim returns the number of coordinates.
func (p *Point) Dim() int { return len(p.coords) }

// Label returns the optional display name.
func (p *Point) Label() string { return p.label }

// ClusterID returns the id of the cluster the point is assigned to, or Unassigned.
func (p *Point) ClusterID() int { return p.cluster }

// Coord returns the j-th coordinate.
func (p *Point) Coord(j int) (float64, error) {
	if j < 0 || j >= len(p.coords) {
		return 0, &IndexOutOfRangeError{Index: j, Dimension: len(p.coords)}
	}
	return p.coords[j], nil
}

// Coords returns a copy of the coordinate vector.
func (p *Point) Coords() []float64 {
	return slices.Clone(p.coords)
}

func (p *Point) setCluster(id int) { p.cluster = id }
