package engine

import (
	"context"

	"github.com/se2-go/speakeasy2/neighbor"
)

// Run drives the full clustering pipeline: reweigh, bootstrap a level-0
// partition, then repeatedly subcluster each community of the previous
// level into its own bootstrap run, for opts.Subcluster levels.
func Run(ctx context.Context, view *neighbor.View, opts Options) ([][]int, error) {
	n := view.VCount()
	if err := opts.applyDefaults(n); err != nil {
		return nil, err
	}

	prog := newProgress(opts.Verbose)
	prog.edgeDensity(view)

	neighbor.Reweigh(view)

	memb := make([][]int, opts.Subcluster)
	level0, err := bootstrap(ctx, view, opts, 0, prog)
	if err != nil {
		return nil, err
	}
	memb[0] = level0

	for level := 1; level < opts.Subcluster; level++ {
		prog.levelBanner(level)

		prev := memb[level-1]
		levelMemb := make([]int, n)
		nComms := communityCount(prev)

		for comm := 0; comm < nComms; comm++ {
			members := collectMembers(prev, comm)
			if len(members) <= opts.MinClust {
				for _, m := range members {
					levelMemb[m] = 0
				}
				continue
			}

			subView, err := buildSubView(view, members)
			if err != nil {
				return nil, err
			}
			neighbor.Reweigh(subView)

			subMemb, err := bootstrap(ctx, subView, opts, level, prog)
			if err != nil {
				return nil, err
			}
			for i, m := range members {
				levelMemb[m] = subMemb[i]
			}
		}

		relabelHierarchical(prev, levelMemb)
		memb[level] = levelMemb
	}

	return memb, nil
}

func communityCount(memb []int) int {
	max := 0
	for _, l := range memb {
		if l > max {
			max = l
		}
	}
	return max + 1
}

func collectMembers(memb []int, comm int) []int {
	var out []int
	for i, l := range memb {
		if l == comm {
			out = append(out, i)
		}
	}
	return out
}

// buildSubView extracts the induced subgraph over members, renumbering
// node indices to 0..len(members)-1 and dropping any edge that leaves the
// community.
func buildSubView(view *neighbor.View, members []int) (*neighbor.View, error) {
	pos := make(map[int]int, len(members))
	for i, m := range members {
		pos[m] = i
	}

	neigh := make([][]int, len(members))
	var weight [][]float64
	if view.HasWeights() {
		weight = make([][]float64, len(members))
	}

	for i, m := range members {
		var ns []int
		var ws []float64
		for j, nb := range view.Neighbors(m) {
			p, ok := pos[nb]
			if !ok {
				continue
			}
			ns = append(ns, p)
			if weight != nil {
				ws = append(ws, view.Weight(m, j))
			}
		}
		neigh[i] = ns
		if weight != nil {
			weight[i] = ws
		}
	}

	return neighbor.NewView(neigh, weight)
}

// relabelHierarchical offsets each community's sub-cluster labels by a
// running total so labels stay globally unique across the whole level,
// instead of colliding with another community's local 0-based numbering.
func relabelHierarchical(prev []int, levelMemb []int) {
	nComms := communityCount(prev)
	prevMax := 0

	for comm := 0; comm < nComms; comm++ {
		members := collectMembers(prev, comm)
		if len(members) == 0 {
			continue
		}
		localMax := 0
		for _, m := range members {
			levelMemb[m] += prevMax
			if levelMemb[m] > localMax+prevMax {
				localMax = levelMemb[m] - prevMax
			}
		}
		prevMax += localMax + 1
	}
}
