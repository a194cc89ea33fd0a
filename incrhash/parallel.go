package incrhash

import (
	"context"
	"github.com/takakv/incrhash/digest"
	"golang.org/x/sync/errgroup"
	"runtime"
)

// cancelCheckInterval is how many elements a worker hashes between checks of
// its context.
const cancelCheckInterval = 256

// SumParallel returns Sum(elements...) computed by workers goroutines. Each
// worker folds a contiguous shard into its own Hash and the partial hashes
// are added at the end. If workers <= 0, GOMAXPROCS workers are used.
//
// The only error is ctx.Err() when ctx is done before the sum completes.
func SumParallel[D digest.Tag](ctx context.Context, elements [][]byte, workers int) (Hash[D], error) {
	if err := ctx.Err(); err != nil {
		return Hash[D]{}, err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(elements))
	if workers <= 1 {
		return Sum[D](elements...), nil
	}

	shard := (len(elements) + workers - 1) / workers
	partials := make([]Hash[D], workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := range partials {
		lo := w * shard
		if lo >= len(elements) {
			break
		}
		hi := min(lo+shard, len(elements))
		partial := &partials[w]
		g.Go(func() error {
			for i, element := range elements[lo:hi] {
				if i%cancelCheckInterval == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				partial.Insert(element)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Hash[D]{}, err
	}

	var h Hash[D]
	for i := range partials {
		h.AddAssign(partials[i])
	}
	return h, nil
}
