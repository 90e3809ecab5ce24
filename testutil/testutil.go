package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe, so it can be shared as a random source between runs.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float64()
		}
		vectors[i] = vec
	}

	return vectors
}

// ClusteredVectors generates vectors scattered around clusters well separated
// centers. Point i belongs to center i%clusters; the returned slice holds that
// center index per vector. spread is the standard deviation of the noise.
//
// Centers lie on a grid with spacing 1, so a spread well below 0.25 keeps the
// blobs apart.
func (r *RNG) ClusteredVectors(num, dim, clusters int, spread float64) ([][]float64, []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	centers := make([][]float64, clusters)
	for c := range centers {
		center := make([]float64, dim)
		// Spread the centers along the first axes so they never coincide.
		rest := c
		for j := range center {
			center[j] = float64(rest % (clusters + 1))
			rest /= clusters + 1
		}
		centers[c] = center
	}

	data := make([]float64, num*dim)
	vectors := make([][]float64, num)
	truth := make([]int, num)

	for i := range num {
		c := i % clusters
		vec := data[i*dim : (i+1)*dim]
		for j := range dim {
			vec[j] = centers[c][j] + r.rand.NormFloat64()*spread
		}
		vectors[i] = vec
		truth[i] = c
	}

	return vectors, truth
}

// Mean returns the component-wise mean of vectors, or nil if vectors is empty.
func Mean(vectors [][]float64) []float64 {
	if len(vectors) == 0 {
		return nil
	}
	mean := make([]float64, len(vectors[0]))
	for _, v := range vectors {
		for j, x := range v {
			mean[j] += x
		}
	}
	for j := range mean {
		mean[j] /= float64(len(vectors))
	}
	return mean
}

// ExactNearest returns the index of the centroid closest to vec by squared
// Euclidean distance, preferring the lowest index on ties.
func ExactNearest(vec []float64, centroids [][]float64) int {
	best, bestDist := -1, math.Inf(1)
	for i, c := range centroids {
		var d float64
		for j := range vec {
			diff := vec[j] - c[j]
			d += diff * diff
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}
