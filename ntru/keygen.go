package ntru

import (
	"errors"
	"math/big"
	"os"

	"github.com/hsaleemsupra/lattice-ibe/cfft"
	"github.com/tuneinsight/lattigo/v4/ring"
	"github.com/tuneinsight/lattigo/v4/utils"
)

// ErrMaxTrials is returned when no acceptable short pair was found
// within Params.MaxTrials attempts.
var ErrMaxTrials = errors.New("ntru: basis generation exceeded trial budget")

// Basis is a trapdoor basis of the lattice {(u, w) : u + w*h = 0 mod Q}.
// The rows are the negacyclic rotations of (G, -F) and (BigG, -BigF),
// with F*BigG - G*BigF = Q over the integers.
type Basis struct {
	F, G       []int64
	BigF, BigG []int64
}

// GenerateBasis samples short Gaussian pairs (f, g) until one passes the
// quality gates, then completes it into a full basis. The gates bound
// both the primal Gram-Schmidt norm, through the pair norm, and the dual
// one, through the averaged embedding slots; together they cap the width
// the coset sampler needs. f must also be a unit mod Q so the public key
// h = g/f exists.
func GenerateBasis(par Params, r *ring.Ring, prng utils.PRNG) (*Basis, error) {
	smp := NewSamplerZ(prng)
	for trial := 0; trial < par.MaxTrials; trial++ {
		f := smp.SamplePoly(par.N, par.SigmaKey)
		g := smp.SamplePoly(par.N, par.SigmaKey)
		if !gsQualityOK(f, g, par) {
			dbg(os.Stderr, "[keygen] trial %d: quality reject\n", trial)
			continue
		}
		if !IsUnit(r, f) {
			dbg(os.Stderr, "[keygen] trial %d: f not invertible\n", trial)
			continue
		}
		F, G, err := NTRUSolve(f, g, par)
		if err != nil {
			dbg(os.Stderr, "[keygen] trial %d: %v\n", trial, err)
			continue
		}
		dbg(os.Stderr, "[keygen] accepted at trial %d\n", trial)
		return &Basis{F: f, G: g, BigF: F, BigG: G}, nil
	}
	return nil, ErrMaxTrials
}

// PublicFromBasis returns h = g/f mod Q in NTT form. The caller
// guarantees f is a unit, as GenerateBasis does.
func PublicFromBasis(r *ring.Ring, b *Basis) (*ring.Poly, error) {
	fInv, ok := NTTInverse(r, PolyFromCentered(r, b.F))
	if !ok {
		return nil, errors.New("ntru: f is not invertible mod Q")
	}
	gNTT := PolyFromCentered(r, b.G)
	ToNTT(r, gNTT)
	h := r.NewPoly()
	r.MulCoeffs(gNTT, fInv, h)
	return h, nil
}

// gsQualityOK accepts (f, g) when both halves of the Gram-Schmidt
// profile stay short: the pair norm bounds the first N orthogonalized
// rows, and the dual vector Q*(f,g)/(f*conj(f)+g*conj(g)) bounds the
// last N. By Parseval the dual squared norm is the slot average of
// Q^2/(|f_i|^2+|g_i|^2), compared against the same BoundNorm.
func gsQualityOK(f, g []int64, par Params) bool {
	if SquaredNorm(f)+SquaredNorm(g) > par.BoundNorm {
		return false
	}
	prec := par.Prec
	fE := cfft.ToEval(cfft.ElemFromInt64(f, prec), prec)
	gE := cfft.ToEval(cfft.ElemFromInt64(g, prec), prec)
	qf := new(big.Float).SetPrec(prec).SetUint64(par.Q)
	q2 := new(big.Float).SetPrec(prec).Mul(qf, qf)
	sum := new(big.Float).SetPrec(prec)
	for i := 0; i < par.N; i++ {
		s := new(big.Float).SetPrec(prec).Add(fE.Coeffs[i].AbsSquared(), gE.Coeffs[i].AbsSquared())
		if s.Sign() == 0 {
			return false
		}
		sum.Add(sum, new(big.Float).SetPrec(prec).Quo(q2, s))
	}
	thr := new(big.Float).SetPrec(prec).SetFloat64(par.BoundNorm)
	thr.Mul(thr, new(big.Float).SetPrec(prec).SetInt64(int64(par.N)))
	return sum.Cmp(thr) <= 0
}
