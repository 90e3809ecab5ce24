package pkmeans

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCluster_Membership(t *testing.T) {
	c := newCluster(0, []float64{1, 2}, 5)
	assert.Equal(t, 1, c.size())

	c.addMember(7)
	c.addMember(9)
	assert.Equal(t, 3, c.size())

	assert.True(t, c.removeMember(7))
	assert.False(t, c.removeMember(7))
	assert.False(t, c.removeMember(42))
	assert.Equal(t, []int{5, 9}, c.members)
}

func TestCluster_RemoveFirstMatchOnly(t *testing.T) {
	c := newCluster(0, []float64{0}, 1)
	c.addMember(1)

	assert.True(t, c.removeMember(1))
	assert.Equal(t, []int{1}, c.members)
}

func TestCluster_ConcurrentMembership(t *testing.T) {
	c := newCluster(0, []float64{0}, -1)

	const workers, perWorker = 8, 500
	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWorker {
				c.addMember(w*perWorker + i)
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1+workers*perWorker, c.size())

	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range perWorker {
				assert.True(t, c.removeMember(w*perWorker+i))
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, []int{-1}, c.members)
}

func TestCluster_Centroid(t *testing.T) {
	c := newCluster(3, []float64{1, 2}, 0)

	v, err := c.centroidAt(1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)

	require.NoError(t, c.setCentroidAt(0, 4))
	v, err = c.centroidAt(0)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v)

	_, err = c.centroidAt(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.ErrorIs(t, c.setCentroidAt(-1, 0), ErrIndexOutOfRange)
}

func TestCluster_Recompute(t *testing.T) {
	points := []*Point{
		NewPoint(10, []float64{1, 10}, ""),
		NewPoint(11, []float64{3, 20}, ""),
		NewPoint(12, []float64{8, 30}, ""),
	}

	t.Run("Mean", func(t *testing.T) {
		c := newCluster(0, points[2].coords, 2)
		c.addMember(0)
		c.addMember(1)

		require.NoError(t, c.recompute(points, make([]float64, 2)))
		assert.InDeltaSlice(t, []float64{4, 20}, c.centroid, 1e-12)
		assert.Equal(t, []int{0, 1, 2}, c.members)
	})

	t.Run("EmptyKeepsCentroid", func(t *testing.T) {
		c := newCluster(1, []float64{5, 6}, 0)
		require.True(t, c.removeMember(0))

		require.NoError(t, c.recompute(points, make([]float64, 2)))
		assert.Equal(t, []float64{5, 6}, c.centroid)
	})

	t.Run("Snapshot", func(t *testing.T) {
		c := newCluster(4, []float64{1, 10}, 0)
		c.addMember(2)

		snap := c.snapshot(points)
		assert.Equal(t, 4, snap.ID)
		assert.Equal(t, []int{10, 12}, snap.Members)
		assert.Equal(t, 2, snap.Size())

		snap.Centroid[0] = 99
		assert.Equal(t, 1.0, c.centroid[0])
	})
}
