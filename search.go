package pkmeans

import (
	"math"

	"github.com/hupe1980/pkmeans/distance"
	"github.com/hupe1980/pkmeans/internal/parallel"
)

// candidate is a worker's running minimum during nearest-center search.
type candidate struct {
	dist    float64
	cluster int
}

// scanBlock returns the closest cluster within b. Clusters are visited in
// ascending id order and only a strictly smaller distance replaces the current
// best, so the lowest id wins a tie.
func scanBlock(clusters []*cluster, coords []float64, b parallel.Block) candidate {
	best := candidate{dist: math.Inf(1), cluster: clusters[b.Lo].id}
	for i := b.Lo; i < b.Hi; i++ {
		if d := distance.SquaredL2(coords, clusters[i].centroid); d < best.dist {
			best = candidate{dist: d, cluster: clusters[i].id}
		}
	}
	return best
}

// nearestCluster returns the id of the cluster whose centroid is closest to
// coords by squared Euclidean distance.
//
// The clusters are split into blocks of at most blockSize. Each block is
// scanned by its own worker into a private partial minimum; the partials are
// then merged in block order with strict less-than. Since blocks are ordered
// by cluster id, ties resolve to the lowest cluster id no matter how the
// workers were scheduled.
//
// Centroids must not change while a search is running.
func nearestCluster(clusters []*cluster, coords []float64, blocks []parallel.Block) int {
	if len(blocks) == 1 {
		return scanBlock(clusters, coords, blocks[0]).cluster
	}

	partials := make([]candidate, len(blocks))
	parallel.Each(blocks, func(i int, b parallel.Block) {
		partials[i] = scanBlock(clusters, coords, b)
	})

	best := partials[0]
	for _, c := range partials[1:] {
		if c.dist < best.dist {
			best = c
		}
	}
	return best.cluster
}
