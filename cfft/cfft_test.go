package cfft

import (
	"math"
	"math/rand"
	"testing"
)

const testPrec = 128

func approxEqual(got *BigComplex, re, im, tol float64) bool {
	gr, gi := got.Float64()
	return math.Abs(gr-re) < tol && math.Abs(gi-im) < tol
}

func TestFFTRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(41))
	for _, n := range []int{1, 2, 8, 64} {
		in := make([]*BigComplex, n)
		want := make([]float64, n)
		for i := range in {
			in[i] = NewBigComplex(testPrec)
			want[i] = float64(rng.Intn(2001) - 1000)
			in[i].Real.SetFloat64(want[i])
		}
		out := IFFT(FFT(in, testPrec), testPrec)
		for i := range out {
			if !approxEqual(out[i], want[i], 0, 1e-20) {
				re, im := out[i].Float64()
				t.Fatalf("n=%d index %d: got (%g,%g) want (%g,0)", n, i, re, im, want[i])
			}
		}
	}
}

func TestFFTKnownValues(t *testing.T) {
	// (1, 1, 0, 0): X_k = 1 + w^k with w = exp(-2*pi*i/4).
	in := make([]*BigComplex, 4)
	for i := range in {
		in[i] = NewBigComplex(testPrec)
	}
	in[0].Real.SetInt64(1)
	in[1].Real.SetInt64(1)
	out := FFT(in, testPrec)
	cases := [][2]float64{{2, 0}, {1, -1}, {0, 0}, {1, 1}}
	for k, want := range cases {
		if !approxEqual(out[k], want[0], want[1], 1e-25) {
			re, im := out[k].Float64()
			t.Fatalf("X_%d = (%g,%g), want (%g,%g)", k, re, im, want[0], want[1])
		}
	}
}

func TestToEvalRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for _, n := range []int{2, 16, 128} {
		coeffs := make([]int64, n)
		for i := range coeffs {
			coeffs[i] = int64(rng.Intn(200001) - 100000)
		}
		e := ToCoeff(ToEval(ElemFromInt64(coeffs, testPrec), testPrec), testPrec)
		for i := range coeffs {
			if !approxEqual(e.Coeffs[i], float64(coeffs[i]), 0, 1e-15) {
				re, im := e.Coeffs[i].Float64()
				t.Fatalf("n=%d coeff %d: got (%g,%g) want %d", n, i, re, im, coeffs[i])
			}
		}
	}
}

// Multiplication in the embedding must agree with negacyclic schoolbook
// multiplication of the coefficients.
func TestEvalMulMatchesNegacyclic(t *testing.T) {
	const n = 16
	rng := rand.New(rand.NewSource(43))
	a := make([]int64, n)
	b := make([]int64, n)
	for i := 0; i < n; i++ {
		a[i] = int64(rng.Intn(201) - 100)
		b[i] = int64(rng.Intn(201) - 100)
	}
	want := make([]int64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p := a[i] * b[j]
			if i+j < n {
				want[i+j] += p
			} else {
				want[i+j-n] -= p
			}
		}
	}
	prod := ToCoeff(Mul(ToEval(ElemFromInt64(a, testPrec), testPrec), ToEval(ElemFromInt64(b, testPrec), testPrec)), testPrec)
	for i := 0; i < n; i++ {
		if !approxEqual(prod.Coeffs[i], float64(want[i]), 0, 1e-10) {
			re, im := prod.Coeffs[i].Float64()
			t.Fatalf("coeff %d: got (%g,%g) want %d", i, re, im, want[i])
		}
	}
}

func TestConjAbsSquared(t *testing.T) {
	c := NewBigComplex(testPrec)
	c.Real.SetInt64(3)
	c.Imag.SetInt64(-4)
	sq, _ := c.AbsSquared().Float64()
	if sq != 25 {
		t.Fatalf("|3-4i|^2 = %g, want 25", sq)
	}
	p := c.Mul(c.Conj())
	if !approxEqual(p, 25, 0, 1e-30) {
		re, im := p.Float64()
		t.Fatalf("c*conj(c) = (%g,%g), want (25,0)", re, im)
	}
}
