package engine

import (
	"fmt"
	"sync"

	"github.com/se2-go/speakeasy2/neighbor"
)

// progress serializes SpeakEasy 2's verbose console output so concurrent
// bootstrap workers don't interleave their lines. It's a no-op when
// verbosity is off, so callers never need to branch on Options.Verbose
// themselves.
type progress struct {
	mu      sync.Mutex
	enabled bool
	greeted bool
}

func newProgress(enabled bool) *progress {
	return &progress{enabled: enabled}
}

func (p *progress) puts(msg string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Println(msg)
}

func (p *progress) edgeDensity(view *neighbor.View) {
	if !p.enabled {
		return
	}
	n := view.VCount()
	if n == 0 {
		return
	}
	density := float64(view.ECount()) / float64(n*n)

	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("Graph has %d nodes, edge density %.4f.\n", n, density)
	if view.HasWeights() {
		fmt.Println("Graph is weighted.")
	} else {
		fmt.Println("Graph is unweighted.")
	}
}

func (p *progress) greet(nUnique, targetClusters, threads int) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.greeted {
		return
	}
	p.greeted = true
	fmt.Printf("Completed generating initial labels.\nProduced %d seed labels, goal was %d.\n", nUnique, targetClusters)
	if threads > 1 {
		fmt.Println("Starting independent runs; they may not print in order.")
	} else {
		fmt.Println("Starting independent runs.")
	}
}

func (p *progress) runStart(i, total int) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("Starting independent run #%d of %d.\n", i, total)
}

func (p *progress) generated(n int) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("Generated %d partitions.\n", n)
}

func (p *progress) meanNMI(mean float64) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("Mean of all NMIs is %0.5f.\n", mean)
}

func (p *progress) levelBanner(level int) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("Subclustering at level %d.\n", level+1)
}
