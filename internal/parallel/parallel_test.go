package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		parts int
		want  []Block
	}{
		{"Empty", 0, 4, nil},
		{"Even", 8, 4, []Block{{0, 2}, {2, 4}, {4, 6}, {6, 8}}},
		{"Remainder", 7, 3, []Block{{0, 3}, {3, 5}, {5, 7}}},
		{"MorePartsThanItems", 2, 8, []Block{{0, 1}, {1, 2}}},
		{"NonPositiveParts", 3, 0, []Block{{0, 3}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.n, tt.parts))
		})
	}
}

func TestChunk(t *testing.T) {
	assert.Nil(t, Chunk(0, 3))
	assert.Equal(t, []Block{{0, 3}, {3, 6}, {6, 7}}, Chunk(7, 3))
	assert.Equal(t, []Block{{0, 5}}, Chunk(5, 0))
	assert.Equal(t, []Block{{0, 5}}, Chunk(5, 100))

	total := 0
	for _, b := range Chunk(1000, 64) {
		total += b.Len()
	}
	assert.Equal(t, 1000, total)
}

func TestFor(t *testing.T) {
	const n = 10_000
	seen := make([]int32, n)

	err := For(context.Background(), n, 7, func(b Block) error {
		for i := b.Lo; i < b.Hi; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
		return nil
	})
	require.NoError(t, err)

	for i, v := range seen {
		require.Equal(t, int32(1), v, "index %d", i)
	}
}

func TestFor_Error(t *testing.T) {
	boom := errors.New("boom")

	err := For(context.Background(), 100, 4, func(b Block) error {
		if b.Lo == 0 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestFor_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	err := For(ctx, 100, 4, func(Block) error {
		calls.Add(1)
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), calls.Load())
}

func TestFor_Empty(t *testing.T) {
	err := For(context.Background(), 0, 4, func(Block) error {
		t.Fatal("unexpected call")
		return nil
	})
	assert.NoError(t, err)
}

func TestEach(t *testing.T) {
	blocks := Chunk(100, 9)
	sums := make([]int, len(blocks))

	Each(blocks, func(i int, b Block) {
		for j := b.Lo; j < b.Hi; j++ {
			sums[i] += j
		}
	})

	total := 0
	for _, s := range sums {
		total += s
	}
	assert.Equal(t, 99*100/2, total)

	Each(nil, func(int, Block) { t.Fatal("unexpected call") })
}
