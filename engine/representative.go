package engine

import (
	"context"

	"github.com/se2-go/speakeasy2/nmi"
	"golang.org/x/sync/errgroup"
)

// selectRepresentative computes the all-pairs NMI of every candidate
// partition in store and copies the one with the largest summed NMI - the
// partition most representative of the ensemble - into memb. Ties are
// broken by lowest index, since that's simply whichever the scan visits
// first.
//
// Each worker accumulates into its own column of an n x threads matrix, so
// no partition's running sum is ever written by two goroutines at once;
// the columns are summed into a single total after every worker has
// finished.
func selectRepresentative(ctx context.Context, store [][]int, opts Options, level int, prog *progress, memb []int) error {
	n := len(store)
	threads := opts.MaxThreads
	if threads < 1 {
		threads = 1
	}

	accum := make([][]float64, n)
	for i := range accum {
		accum[i] = make([]float64, threads)
	}

	g, gctx := errgroup.WithContext(ctx)
	for tid := 0; tid < threads; tid++ {
		tid := tid
		g.Go(func() error {
			for i := tid; i < n; i += threads {
				if err := gctx.Err(); err != nil {
					return err
				}
				for j := i + 1; j < n; j++ {
					score := nmi.Compare(store[i], store[j])
					accum[i][tid] += score
					accum[j][tid] += score
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	sums := make([]float64, n)
	var total float64
	for i := range sums {
		for tid := 0; tid < threads; tid++ {
			sums[i] += accum[i][tid]
			total += accum[i][tid]
		}
	}

	if opts.Verbose && level == 0 && n > 1 {
		prog.meanNMI(total / float64(n*(n-1)))
	}

	best := 0
	bestSum := -1.0
	for i, s := range sums {
		if s > bestSum {
			bestSum = s
			best = i
		}
	}

	copy(memb, store[best])
	return nil
}
