package ntru

import "math"

// SampleCoset runs the randomized nearest-plane algorithm: it returns a
// lattice vector v distributed as a discrete Gaussian of width sigma
// centered at c. sigma must exceed smoothing times MaxGSNorm, which the
// caller fixes once per basis. The arithmetic stays exact in float64
// because every intermediate is an integer below 2^52.
func (gs *GramSchmidt) SampleCoset(c []int64, sigma float64, smp *SamplerZ) []int64 {
	n2 := 2 * gs.N
	ci := make([]float64, n2)
	for i, x := range c {
		ci[i] = float64(x)
	}
	for i := n2 - 1; i >= 0; i-- {
		cip := dotRow(ci, gs.Bst[i]) / gs.Norms2[i]
		sip := sigma / gs.Norms[i]
		z := float64(smp.Sample(cip, sip))
		for j := range ci {
			ci[j] -= z * gs.B[i][j]
		}
	}
	v := make([]int64, n2)
	for i := range v {
		v[i] = int64(math.Round(float64(c[i]) - ci[i]))
	}
	return v
}
