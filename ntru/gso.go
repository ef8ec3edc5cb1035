package ntru

import "math"

// GramSchmidt holds a trapdoor basis together with its orthogonalization,
// ready for coset sampling. Rows have length 2N: the first N are the
// negacyclic rotations of (g, -f), the last N those of (BigG, -BigF).
// Entries fit well below 2^52 so float64 carries them exactly.
type GramSchmidt struct {
	N      int
	B      [][]float64
	Bst    [][]float64
	Norms2 []float64
	Norms  []float64
}

// rotRow applies the negacyclic shift to each N-half of a 2N row:
// (a_0..a_{N-1}) -> (-a_{N-1}, a_0, .., a_{N-2}).
func rotRow(v []float64, n int) []float64 {
	out := make([]float64, 2*n)
	for _, h := range []int{0, n} {
		out[h] = -v[h+n-1]
		for j := 1; j < n; j++ {
			out[h+j] = v[h+j-1]
		}
	}
	return out
}

func dotRow(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// NewGramSchmidt orthogonalizes the anticirculant basis of b. Within
// each N-row block the Gram-Schmidt vectors obey an isometric recurrence
// under the negacyclic shift, which brings the cost down to O(N^2): only
// the block boundary needs a full projection.
func NewGramSchmidt(b *Basis) *GramSchmidt {
	n := len(b.F)
	n2 := 2 * n
	rows := make([][]float64, n2)
	row := make([]float64, n2)
	for i := 0; i < n; i++ {
		row[i] = float64(b.G[i])
		row[n+i] = float64(-b.F[i])
	}
	for k := 0; k < n; k++ {
		rows[k] = row
		row = rotRow(row, n)
	}
	row = make([]float64, n2)
	for i := 0; i < n; i++ {
		row[i] = float64(b.BigG[i])
		row[n+i] = float64(-b.BigF[i])
	}
	for k := 0; k < n; k++ {
		rows[n+k] = row
		row = rotRow(row, n)
	}

	gs := &GramSchmidt{
		N:      n,
		B:      rows,
		Bst:    make([][]float64, n2),
		Norms2: make([]float64, n2),
		Norms:  make([]float64, n2),
	}
	gs.Bst[0] = append([]float64(nil), rows[0]...)
	gs.Norms2[0] = dotRow(rows[0], rows[0])
	v := append([]float64(nil), rows[0]...)
	for k := 1; k < n2; k++ {
		if k == n {
			// Block boundary: project the second generator against the
			// whole first block and restart the recurrence from it.
			w := append([]float64(nil), rows[n]...)
			for i := 0; i < n; i++ {
				mu := dotRow(w, gs.Bst[i]) / gs.Norms2[i]
				for j := range w {
					w[j] -= mu * gs.Bst[i][j]
				}
			}
			gs.Bst[k] = w
			gs.Norms2[k] = dotRow(w, w)
			v = append([]float64(nil), w...)
			continue
		}
		rb := rotRow(gs.Bst[k-1], n)
		ck := dotRow(v, rb)
		dk := dotRow(v, v)
		bs := make([]float64, n2)
		for j := range bs {
			bs[j] = rb[j] - (ck/dk)*v[j]
		}
		scale := ck / gs.Norms2[k-1]
		for j := range v {
			v[j] -= scale * rb[j]
		}
		gs.Bst[k] = bs
		gs.Norms2[k] = dotRow(bs, bs)
	}
	for k := 0; k < n2; k++ {
		gs.Norms[k] = math.Sqrt(gs.Norms2[k])
	}
	return gs
}

// MaxGSNorm is the largest Gram-Schmidt norm, the quantity that sets
// the coset sampling width.
func (gs *GramSchmidt) MaxGSNorm() float64 {
	m := gs.Norms[0]
	for _, x := range gs.Norms[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
