package ntru

import (
	"github.com/tuneinsight/lattigo/v4/ring"
)

// NTTInverse returns the NTT-domain inverse of the coefficient-domain
// polynomial a. Since q is prime and q = 1 mod 2N, x^N+1 splits into
// linear factors mod q, so a is a unit in R_q exactly when every NTT
// slot is nonzero, and the inverse is slot-wise Fermat exponentiation.
func NTTInverse(r *ring.Ring, a *ring.Poly) (*ring.Poly, bool) {
	q := r.Modulus[0]
	aN := r.NewPoly()
	ring.Copy(a, aN)
	ToNTT(r, aN)
	inv := r.NewPoly()
	for i, s := range aN.Coeffs[0] {
		if s == 0 {
			return nil, false
		}
		inv.Coeffs[0][i] = ring.ModExp(s, q-2, q)
	}
	return inv, true
}

// IsUnit reports whether the centered coefficient vector is invertible
// in R_q.
func IsUnit(r *ring.Ring, coeffs []int64) bool {
	p := PolyFromCentered(r, coeffs)
	ToNTT(r, p)
	for _, s := range p.Coeffs[0] {
		if s == 0 {
			return false
		}
	}
	return true
}
