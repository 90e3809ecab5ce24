package pkmeans

import (
	"fmt"
	"testing"

	"github.com/hupe1980/pkmeans/internal/parallel"
	"github.com/hupe1980/pkmeans/testutil"
	"github.com/stretchr/testify/assert"
)

func clustersAt(centroids ...[]float64) []*cluster {
	out := make([]*cluster, len(centroids))
	for i, c := range centroids {
		out[i] = newCluster(i, c, i)
	}
	return out
}

func TestNearestCluster(t *testing.T) {
	clusters := clustersAt([]float64{0, 0}, []float64{10, 10}, []float64{20, 20})

	for _, blockSize := range []int{1, 2, 3} {
		blocks := parallel.Chunk(len(clusters), blockSize)
		assert.Equal(t, 0, nearestCluster(clusters, []float64{1, 1}, blocks))
		assert.Equal(t, 1, nearestCluster(clusters, []float64{11, 9}, blocks))
		assert.Equal(t, 2, nearestCluster(clusters, []float64{100, 100}, blocks))
	}
}

func TestNearestCluster_TieBreaksToLowestID(t *testing.T) {
	tests := []struct {
		name      string
		centroids [][]float64
		point     []float64
		want      int
	}{
		{"Equidistant", [][]float64{{-1}, {1}}, []float64{0}, 0},
		{"Duplicates", [][]float64{{5}, {3}, {3}, {3}}, []float64{3}, 1},
		{"AllSame", [][]float64{{2, 2}, {2, 2}, {2, 2}, {2, 2}, {2, 2}}, []float64{0, 0}, 0},
		{"LaterBlock", [][]float64{{9}, {9}, {4}, {6}, {4}}, []float64{5}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clusters := clustersAt(tt.centroids...)
			for blockSize := 1; blockSize <= len(clusters); blockSize++ {
				blocks := parallel.Chunk(len(clusters), blockSize)
				assert.Equal(t, tt.want, nearestCluster(clusters, tt.point, blocks), "block size %d", blockSize)
			}
		})
	}
}

func TestNearestCluster_MatchesExactSearch(t *testing.T) {
	rng := testutil.NewRNG(4711)
	centroids := rng.UniformVectors(37, 5)
	queries := rng.UniformVectors(200, 5)
	clusters := clustersAt(centroids...)

	for _, blockSize := range []int{1, 4, 16, 37} {
		blocks := parallel.Chunk(len(clusters), blockSize)
		for _, q := range queries {
			assert.Equal(t, testutil.ExactNearest(q, centroids), nearestCluster(clusters, q, blocks))
		}
	}
}

func BenchmarkNearestCluster(b *testing.B) {
	rng := testutil.NewRNG(4711)
	clusters := clustersAt(rng.UniformVectors(1024, 16)...)
	query := rng.UniformVectors(1, 16)[0]

	for _, blockSize := range []int{64, 256, 1024} {
		blocks := parallel.Chunk(len(clusters), blockSize)
		b.Run(fmt.Sprintf("block=%d", blockSize), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = nearestCluster(clusters, query, blocks)
			}
		})
	}
}

