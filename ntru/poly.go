package ntru

import (
	"math/big"
	"math/bits"
)

// MulNegacyclicBig multiplies two big.Int coefficient vectors in
// Z[x]/(x^n+1) by schoolbook convolution. Used by the NTRU solver where
// coefficients outgrow 64 bits.
func MulNegacyclicBig(a, b []*big.Int) []*big.Int {
	n := len(a)
	h := make([]*big.Int, 2*n-1)
	for i := range h {
		h[i] = new(big.Int)
	}
	tmp := new(big.Int)
	for i := 0; i < n; i++ {
		if a[i].Sign() == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if b[j].Sign() == 0 {
				continue
			}
			tmp.Mul(a[i], b[j])
			h[i+j].Add(h[i+j], tmp)
		}
	}
	for i := 2*n - 2; i >= n; i-- {
		h[i-n].Sub(h[i-n], h[i])
	}
	return h[:n]
}

// Int64sToBig copies centered int64 coefficients into big.Ints.
func Int64sToBig(coeffs []int64) []*big.Int {
	out := make([]*big.Int, len(coeffs))
	for i, c := range coeffs {
		out[i] = big.NewInt(c)
	}
	return out
}

// BigToInt64s converts back, reporting overflow.
func BigToInt64s(coeffs []*big.Int) ([]int64, bool) {
	out := make([]int64, len(coeffs))
	for i, c := range coeffs {
		if !c.IsInt64() {
			return nil, false
		}
		out[i] = c.Int64()
	}
	return out, true
}

// Center maps a canonical residue in [0,q) to its representative in
// (-q/2, q/2].
func Center(v, q uint64) int64 {
	if v > q/2 {
		return int64(v) - int64(q)
	}
	return int64(v)
}

// Canonical maps any centered integer to its residue in [0,q).
func Canonical(v int64, q uint64) uint64 {
	m := v % int64(q)
	if m < 0 {
		m += int64(q)
	}
	return uint64(m)
}

// SquaredNorm returns the squared euclidean norm of the coefficient
// vector.
func SquaredNorm(coeffs []int64) float64 {
	var s float64
	for _, c := range coeffs {
		f := float64(c)
		s += f * f
	}
	return s
}

// InfNorm returns the largest coefficient magnitude.
func InfNorm(coeffs []int64) int64 {
	var m int64
	for _, c := range coeffs {
		if c < 0 {
			c = -c
		}
		if c > m {
			m = c
		}
	}
	return m
}

// bitlenMaxAbsBig returns the maximum bit length among the absolute
// values of the coefficients.
func bitlenMaxAbsBig(s []*big.Int) int {
	m := 0
	for _, v := range s {
		if bl := new(big.Int).Abs(v).BitLen(); bl > m {
			m = bl
		}
	}
	return m
}

// bitlenMaxAbsInt64 is the int64 analogue of bitlenMaxAbsBig.
func bitlenMaxAbsInt64(s []int64) int {
	m := 0
	for _, v := range s {
		if v < 0 {
			v = -v
		}
		if b := bits.Len64(uint64(v)); b > m {
			m = b
		}
	}
	return m
}

// extraBits returns how far the largest coefficient of a or b exceeds
// base bits; never negative. The solver shifts operands down by this
// amount before loading them into floats.
func extraBits(a, b []*big.Int, base int) int {
	maxBits := base
	if bl := bitlenMaxAbsBig(a); bl > maxBits {
		maxBits = bl
	}
	if bl := bitlenMaxAbsBig(b); bl > maxBits {
		maxBits = bl
	}
	return maxBits - base
}
