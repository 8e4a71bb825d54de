package engine

import (
	"context"
	"math/rand"
	"sync"

	"github.com/se2-go/speakeasy2/neighbor"
	"github.com/se2-go/speakeasy2/partition"
	"github.com/se2-go/speakeasy2/seed"
	"github.com/se2-go/speakeasy2/tracker"
	"golang.org/x/sync/errgroup"
)

// bootstrap runs opts.IndependentRuns fully independent clustering runs
// over view, each producing opts.TargetPartitions candidate partitions,
// and returns the single membership vector elected as most representative
// of the ensemble.
func bootstrap(ctx context.Context, view *neighbor.View, opts Options, level int, prog *progress) ([]int, error) {
	store, err := buildPartitionStore(ctx, view, opts, level, prog)
	if err != nil {
		return nil, err
	}

	memb := make([]int, view.VCount())
	if err := selectRepresentative(ctx, store, opts, level, prog, memb); err != nil {
		return nil, err
	}
	return memb, nil
}

// buildPartitionStore runs opts.IndependentRuns fully independent
// clustering runs over view and returns the raw, un-elected partition
// store: exactly opts.IndependentRuns * opts.TargetPartitions membership
// vectors, one slice of length view.VCount() per candidate partition.
func buildPartitionStore(ctx context.Context, view *neighbor.View, opts Options, level int, prog *progress) ([][]int, error) {
	n := view.VCount()
	nPartitions := opts.IndependentRuns * opts.TargetPartitions
	store := make([][]int, nPartitions)
	for i := range store {
		store[i] = make([]int, n)
	}

	if opts.Verbose && level == 0 && opts.Multicommunity > 1 {
		prog.puts("Attempting overlapping clustering.")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.MaxThreads)

	var greetOnce sync.Once
	for runI := 0; runI < opts.IndependentRuns; runI++ {
		runI := runI
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			offset := runI * opts.TargetPartitions
			rng := rand.New(rand.NewSource(opts.RandomSeed + int64(runI)))
			nUnique := seed.Seed(view, opts.TargetClusters, store[offset], rng)

			if opts.Verbose && level == 0 {
				greetOnce.Do(func() { prog.greet(nUnique, opts.TargetClusters, opts.MaxThreads) })
				prog.runStart(runI+1, opts.IndependentRuns)
			}

			p := partition.New(store[offset])
			tr := tracker.New(opts.MinClust, opts.DiscardTransient, opts.TargetPartitions)
			runCore(view, p, tr, store, offset, rng)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Verbose && level == 0 {
		prog.generated(nPartitions)
	}

	return store, nil
}
