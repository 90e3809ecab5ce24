package parallel

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Block is the half-open index range [Lo, Hi).
type Block struct {
	Lo, Hi int
}

// Len returns the number of indexes in the block.
func (b Block) Len() int { return b.Hi - b.Lo }

// Split divides [0, n) into at most parts contiguous blocks whose sizes differ
// by at most one. Blocks are returned in ascending order.
func Split(n, parts int) []Block {
	if n <= 0 {
		return nil
	}
	if parts <= 0 {
		parts = 1
	}
	if parts > n {
		parts = n
	}

	blocks := make([]Block, parts)
	size, rem := n/parts, n%parts
	lo := 0
	for i := range blocks {
		hi := lo + size
		if i < rem {
			hi++
		}
		blocks[i] = Block{Lo: lo, Hi: hi}
		lo = hi
	}
	return blocks
}

// Chunk divides [0, n) into contiguous blocks of at most size indexes.
func Chunk(n, size int) []Block {
	if n <= 0 {
		return nil
	}
	if size <= 0 || size > n {
		size = n
	}

	blocks := make([]Block, 0, (n+size-1)/size)
	for lo := 0; lo < n; lo += size {
		blocks = append(blocks, Block{Lo: lo, Hi: min(lo+size, n)})
	}
	return blocks
}

// For runs fn over [0, n) split into workers blocks, with at most workers
// goroutines at a time. It returns the first error; remaining blocks observe
// the canceled context and are skipped.
func For(ctx context.Context, n, workers int, fn func(b Block) error) error {
	blocks := Split(n, workers)
	if len(blocks) == 0 {
		return ctx.Err()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for _, b := range blocks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(b)
		})
	}

	return g.Wait()
}

// Each runs fn once per block concurrently and waits for all of them.
// The last block runs on the calling goroutine.
func Each(blocks []Block, fn func(i int, b Block)) {
	if len(blocks) == 0 {
		return
	}

	var wg sync.WaitGroup
	last := len(blocks) - 1
	wg.Add(last)
	for i, b := range blocks[:last] {
		go func() {
			defer wg.Done()
			fn(i, b)
		}()
	}
	fn(last, blocks[last])
	wg.Wait()
}
