// Package fixtures builds small, deterministic graphs for exercising the
// clustering engine end to end: a complete graph (everyone in one
// community), a cycle (a line-graph-like boundary case), and a planted
// partition (several dense blocks loosely connected to each other) - the
// shapes SpeakEasy 2's own test scenarios are built around.
package fixtures

import (
	"math/rand"
	"sort"

	"github.com/se2-go/speakeasy2/neighbor"
)

// Complete returns the neighbor lists of the complete simple graph K_n:
// every node adjacent to every other node, plus itself once Reweigh runs.
//
// Contract: n >= 1. Pair order is deterministic - node i's list holds
// every j != i in ascending order - so two calls with the same n produce
// byte-identical output.
func Complete(n int) [][]int {
	neigh := make([][]int, n)
	for i := 0; i < n; i++ {
		row := make([]int, 0, n-1)
		for j := 0; j < n; j++ {
			if j != i {
				row = append(row, j)
			}
		}
		neigh[i] = row
	}
	return neigh
}

// Cycle returns the neighbor lists of an undirected cycle of n nodes:
// node i is adjacent to i-1 and i+1 (mod n). A cycle has no natural
// community boundary, making it a useful "everything stays one cluster"
// regression case.
func Cycle(n int) [][]int {
	neigh := make([][]int, n)
	for i := 0; i < n; i++ {
		neigh[i] = []int{(i - 1 + n) % n, (i + 1) % n}
	}
	return neigh
}

// Line returns the neighbor lists of an undirected path of n nodes: node i
// is adjacent to i-1 and i+1 where those indices exist. Unlike Cycle, the
// two endpoints each have degree 1.
func Line(n int) [][]int {
	neigh := make([][]int, n)
	for i := 0; i < n; i++ {
		var row []int
		if i > 0 {
			row = append(row, i-1)
		}
		if i < n-1 {
			row = append(row, i+1)
		}
		neigh[i] = row
	}
	return neigh
}

// PlantedPartition returns the neighbor lists of a graph built from len(sizes)
// blocks: within a block, any two nodes are connected with probability
// pIn; across blocks, with probability pOut. Edges are undirected (mirrored
// both ways). pOut well below pIn produces a graph with an obvious
// ground-truth community structure for end-to-end tests to recover.
func PlantedPartition(sizes []int, pIn, pOut float64, rng *rand.Rand) [][]int {
	n := 0
	blockOf := map[int]int{}
	for b, s := range sizes {
		for k := 0; k < s; k++ {
			blockOf[n] = b
			n++
		}
	}

	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			p := pOut
			if blockOf[i] == blockOf[j] {
				p = pIn
			}
			if rng.Float64() < p {
				adj[i][j] = true
				adj[j][i] = true
			}
		}
	}

	neigh := make([][]int, n)
	for i := 0; i < n; i++ {
		var row []int
		for j := 0; j < n; j++ {
			if adj[i][j] {
				row = append(row, j)
			}
		}
		neigh[i] = row
	}

	// View expects its construction to produce a view usable by every
	// engine component, but building it is the caller's job so PlantedPartition
	// stays a pure neighbor-list generator independent of neighbor.View's
	// weighting concerns.
	return neigh
}

// MustView is a small convenience wrapper for test code: it panics instead
// of returning an error, since fixture-built adjacency is always
// well-formed.
func MustView(neigh [][]int) *neighbor.View {
	v, err := neighbor.NewView(neigh, nil)
	if err != nil {
		panic(err)
	}
	return v
}

// karateEdges is Zachary's karate club social network: 34 members (node 0
// is the instructor "Mr. Hi", node 33 the administrator "John A"), 78
// undirected edges, split by the well-known fission into the instructor's
// and administrator's factions. A standard benchmark for community
// detection; every end-to-end test that needs a graph with real, rather
// than synthetic, community structure uses it.
var karateEdges = [][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}, {0, 6}, {0, 7}, {0, 8}, {0, 10},
	{0, 11}, {0, 12}, {0, 13}, {0, 17}, {0, 19}, {0, 21}, {0, 31},
	{1, 2}, {1, 3}, {1, 7}, {1, 13}, {1, 17}, {1, 19}, {1, 21}, {1, 30},
	{2, 3}, {2, 7}, {2, 8}, {2, 9}, {2, 13}, {2, 27}, {2, 28}, {2, 32},
	{3, 7}, {3, 12}, {3, 13},
	{4, 6}, {4, 10},
	{5, 6}, {5, 10}, {5, 16},
	{6, 16},
	{8, 30}, {8, 32}, {8, 33},
	{9, 33},
	{13, 33},
	{14, 32}, {14, 33},
	{15, 32}, {15, 33},
	{18, 32}, {18, 33},
	{19, 33},
	{20, 32}, {20, 33},
	{22, 32}, {22, 33},
	{23, 25}, {23, 27}, {23, 29}, {23, 32}, {23, 33},
	{24, 25}, {24, 27}, {24, 31},
	{25, 31},
	{26, 29}, {26, 33},
	{27, 33},
	{28, 31}, {28, 33},
	{29, 32}, {29, 33},
	{30, 32}, {30, 33},
	{31, 32}, {31, 33},
	{32, 33},
}

// Karate returns the neighbor lists of Zachary's karate club graph.
func Karate() [][]int {
	const n = 34
	neigh := make([][]int, n)
	for _, e := range karateEdges {
		a, b := e[0], e[1]
		neigh[a] = append(neigh[a], b)
		neigh[b] = append(neigh[b], a)
	}
	for i := range neigh {
		sort.Ints(neigh[i])
	}
	return neigh
}
