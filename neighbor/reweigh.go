package neighbor

import "math"

// Reweigh conditions a View's edge weights in place before clustering:
//
//  1. measure skewness of the raw weight distribution
//  2. normalize weights to [-1, 1] by the maximum magnitude
//  3. install exactly one self-loop per node, deduplicating extras
//  4. set each self-loop's weight: the sign-aware mean of the node's other
//     edge weights when skewed, 1 otherwise
//  5. if skewed and no edge carries a negative weight, blend a small offset
//     into every edge so the diagonal doesn't dominate propagation
//
// An unweighted View only goes through step 3; there are no weights to
// skew, normalize or offset.
func Reweigh(v *View) {
	skewed := false
	if v.HasWeights() {
		skewed = skewness(v) >= 2
		normalize(v)
	}

	installSelfLoops(v, skewed)

	if v.HasWeights() && skewed && !hasNegativeWeights(v) {
		addOffset(v)
	}
}

func skewness(v *View) float64 {
	n := float64(v.ECount())
	if n == 0 {
		return 0
	}

	var sum float64
	for i := 0; i < v.VCount(); i++ {
		for _, w := range v.weight[i] {
			sum += w
		}
	}
	avg := sum / n

	var m2, m3 float64
	for i := 0; i < v.VCount(); i++ {
		for _, w := range v.weight[i] {
			d := w - avg
			d2 := d * d
			m2 += d2
			m3 += d * d2
		}
	}

	sd := math.Sqrt(m2)
	sd3 := sd * sd * sd

	return (m3 / n) / sd3 / math.Sqrt(n)
}

func normalize(v *View) {
	var maxAbs float64
	for i := range v.weight {
		for _, w := range v.weight[i] {
			if a := math.Abs(w); a > maxAbs {
				maxAbs = a
			}
		}
	}
	if maxAbs == 0 {
		return
	}
	for i := range v.weight {
		for j := range v.weight[i] {
			v.weight[i][j] /= maxAbs
		}
	}
}

// installSelfLoops ensures every node has exactly one self-loop entry and
// assigns that entry's weight per the reweighing policy.
func installSelfLoops(v *View, skewed bool) {
	n := v.VCount()
	selfLoopPos := make([]int, n)

	for i := 0; i < n; i++ {
		var selfIdx []int
		for j, nb := range v.neigh[i] {
			if nb == i {
				selfIdx = append(selfIdx, j)
			}
		}

		switch len(selfIdx) {
		case 0:
			v.neigh[i] = append(v.neigh[i], i)
			if v.weight != nil {
				v.weight[i] = append(v.weight[i], 0)
			}
			selfLoopPos[i] = len(v.neigh[i]) - 1
		case 1:
			if v.weight != nil {
				v.weight[i][selfIdx[0]] = 0
			}
			selfLoopPos[i] = selfIdx[0]
		default:
			keep := selfIdx[0]
			for k := len(selfIdx) - 1; k >= 1; k-- {
				idx := selfIdx[k]
				v.neigh[i] = append(v.neigh[i][:idx], v.neigh[i][idx+1:]...)
				if v.weight != nil {
					v.weight[i] = append(v.weight[i][:idx], v.weight[i][idx+1:]...)
				}
			}
			if v.weight != nil {
				v.weight[i][keep] = 0
			}
			selfLoopPos[i] = keep
		}
	}
	v.selfLoop = selfLoopPos

	if v.weight == nil {
		return
	}

	diag := make([]float64, n)
	if skewed {
		meanSignedLinkWeight(v, diag)
	} else {
		for i := range diag {
			diag[i] = 1
		}
	}
	for i := 0; i < n; i++ {
		v.weight[i][selfLoopPos[i]] = diag[i]
	}
}

// meanSignedLinkWeight fills diag[i] with the mean of node i's own edge
// weights (excluding its just-zeroed self-loop), normalized by the count of
// signs rather than the count of edges so a handful of large-magnitude
// negative weights can't silently cancel into a near-zero diagonal.
func meanSignedLinkWeight(v *View, diag []float64) {
	for i := 0; i < v.VCount(); i++ {
		var sum float64
		var signSum int
		for j, w := range v.weight[i] {
			if v.neigh[i][j] == i {
				continue
			}
			sum += w
			if w < 0 {
				signSum--
			} else {
				signSum++
			}
		}
		if signSum != 0 {
			diag[i] = sum / float64(signSum)
		}
	}
}

func addOffset(v *View) {
	n := v.VCount()
	if n == 0 {
		return
	}

	var offsetSum float64
	for i := 0; i < n; i++ {
		offsetSum += v.weight[i][v.selfLoop[i]]
	}
	offset := offsetSum / float64(n)

	for i := 0; i < n; i++ {
		for j := range v.weight[i] {
			v.weight[i][j] = (1-offset)*v.weight[i][j] + offset
		}
	}
}

func hasNegativeWeights(v *View) bool {
	for i := range v.weight {
		for _, w := range v.weight[i] {
			if w < 0 {
				return true
			}
		}
	}
	return false
}
