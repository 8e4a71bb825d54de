// Package nmi computes Normalized Mutual Information between two
// community partitions of the same node set, the similarity measure
// SpeakEasy 2 uses to elect a representative partition out of a bootstrap
// ensemble.
package nmi

import "math"

// Compare returns the NMI of two same-length label assignments, in
// [0, 1]. Two identical partitions (up to relabeling) score 1; two
// partitions that share no information score 0.
func Compare(a, b []int) float64 {
	n := len(a)
	if n == 0 {
		return 1
	}

	joint := make(map[[2]int]int)
	marginalA := make(map[int]int)
	marginalB := make(map[int]int)
	for i := 0; i < n; i++ {
		joint[[2]int{a[i], b[i]}]++
		marginalA[a[i]]++
		marginalB[b[i]]++
	}

	nf := float64(n)
	var mi float64
	for k, nij := range joint {
		pij := float64(nij) / nf
		pi := float64(marginalA[k[0]]) / nf
		pj := float64(marginalB[k[1]]) / nf
		mi += pij * math.Log(pij/(pi*pj))
	}

	hA := entropy(marginalA, nf)
	hB := entropy(marginalB, nf)
	if hA+hB == 0 {
		return 1
	}
	return 2 * mi / (hA + hB)
}

func entropy(counts map[int]int, n float64) float64 {
	var h float64
	for _, c := range counts {
		p := float64(c) / n
		h -= p * math.Log(p)
	}
	return h
}
