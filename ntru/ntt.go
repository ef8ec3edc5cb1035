package ntru

import (
	"github.com/tuneinsight/lattigo/v4/ring"
)

// ToNTT applies the forward negacyclic NTT in place.
func ToNTT(r *ring.Ring, a *ring.Poly) {
	r.NTT(a, a)
}

// FromNTT applies the inverse NTT in place.
func FromNTT(r *ring.Ring, a *ring.Poly) {
	r.InvNTT(a, a)
}

// PolyFromCentered embeds centered int64 coefficients into a fresh
// coefficient-domain ring.Poly.
func PolyFromCentered(r *ring.Ring, coeffs []int64) *ring.Poly {
	q := r.Modulus[0]
	p := r.NewPoly()
	for i, c := range coeffs {
		p.Coeffs[0][i] = Canonical(c, q)
	}
	return p
}

// CenteredFromPoly extracts centered int64 coefficients from a
// coefficient-domain ring.Poly.
func CenteredFromPoly(r *ring.Ring, p *ring.Poly) []int64 {
	q := r.Modulus[0]
	out := make([]int64, r.N)
	for i, c := range p.Coeffs[0] {
		out[i] = Center(c, q)
	}
	return out
}

// Convolve multiplies two centered coefficient vectors in R_q via the
// NTT and returns the centered product. Exact for all inputs.
func Convolve(r *ring.Ring, a, b []int64) []int64 {
	pa := PolyFromCentered(r, a)
	pb := PolyFromCentered(r, b)
	ToNTT(r, pa)
	ToNTT(r, pb)
	out := r.NewPoly()
	r.MulCoeffs(pa, pb, out)
	FromNTT(r, out)
	return CenteredFromPoly(r, out)
}

// ConvolveNTT multiplies centered coefficients b against a polynomial
// already held in NTT form, saving a forward transform on the hot path.
func ConvolveNTT(r *ring.Ring, aNTT *ring.Poly, b []int64) []int64 {
	pb := PolyFromCentered(r, b)
	ToNTT(r, pb)
	out := r.NewPoly()
	r.MulCoeffs(aNTT, pb, out)
	FromNTT(r, out)
	return CenteredFromPoly(r, out)
}
