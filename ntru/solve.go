package ntru

import (
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/hsaleemsupra/lattice-ibe/cfft"
)

// babaiScaleBase: coefficients whose bit length stays below this are
// loaded into the float embedding unscaled; anything larger is shifted
// down first so the mantissas stay inside the working precision.
const babaiScaleBase = 500

// NTRUSolve completes a short pair (f, g) into a basis of the lattice
// it spans: it returns F, G with f*G - g*F = Q in Z[x]/(x^N + 1),
// size-reduced against (f, g). N must be a power of two.
func NTRUSolve(f, g []int64, par Params) (F, G []int64, err error) {
	if len(f) != par.N || len(g) != par.N {
		return nil, nil, errors.New("ntru: solve dimension mismatch")
	}
	dbg(os.Stderr, "[solve] start N=%d Q=%d Prec=%d\n", par.N, par.Q, par.Prec)
	fb := Int64sToBig(f)
	gb := Int64sToBig(g)
	q := new(big.Int).SetUint64(par.Q)
	Fb, Gb, ok := towerSolve(fb, gb, q, par.Prec)
	if !ok {
		return nil, nil, errors.New("ntru: tower solver failed, resample (f, g)")
	}
	dbg(os.Stderr, "[solve] tower done bitlen=%d; global reduction\n", bitlenMaxAbsBig(Fb))
	Fb, Gb, ok = reduceBabai(fb, gb, Fb, Gb, par.Prec)
	if !ok {
		return nil, nil, errors.New("ntru: global Babai reduction failed")
	}
	dbg(os.Stderr, "[solve] reduced bitlen=%d\n", bitlenMaxAbsBig(Fb))
	Fi, ok1 := BigToInt64s(Fb)
	Gi, ok2 := BigToInt64s(Gb)
	if !ok1 || !ok2 {
		return nil, nil, errors.New("ntru: int64 overflow after reduction")
	}
	if !CheckNTRUIdentity(f, g, Fi, Gi, par.Q) {
		return nil, nil, errors.New("ntru: identity check failed after reduction")
	}
	return Fi, Gi, nil
}

// towerSolve recursively descends the tower Z[x]/(x^d+1) -> Z[x]/(x^{d/2}+1)
// via field norms, solves the base case with an extended gcd, and lifts the
// solution back up, size-reducing at every level.
func towerSolve(f, g []*big.Int, q *big.Int, prec uint) (F, G []*big.Int, ok bool) {
	d := len(f)
	if d == 0 {
		return nil, nil, false
	}
	if d == 1 {
		a := new(big.Int).Set(f[0])
		b := new(big.Int).Neg(g[0])
		u, v, gcd := extGCDMinV(a, b)
		if gcd.Cmp(big.NewInt(1)) != 0 {
			return nil, nil, false
		}
		F0 := new(big.Int).Mul(v, q)
		G0 := new(big.Int).Mul(u, q)
		dbg(os.Stderr, "[tower] base a=%s b=%s u=%s v=%s\n", a, b, u, v)
		return []*big.Int{F0}, []*big.Int{G0}, true
	}
	fc := conj2(f)
	gc := conj2(g)
	fn := reduce2(MulNegacyclicBig(f, fc))
	gn := reduce2(MulNegacyclicBig(g, gc))
	Fs, Gs, ok := towerSolve(fn, gn, q, prec)
	if !ok {
		return nil, nil, false
	}
	F = MulNegacyclicBig(expand2(Fs), gc)
	G = MulNegacyclicBig(expand2(Gs), fc)
	return reduceBabai(f, g, F, G, prec)
}

// reduceBabai subtracts k*(f, g) from (F, G) where k is the rounded
// embedding-domain quotient (F*conj(f) + G*conj(g)) / (f*conj(f) + g*conj(g)).
// Operands are scaled by powers of two before embedding so the float
// mantissas stay accurate; the quotient is shift-corrected on rounding.
func reduceBabai(f, g, F, G []*big.Int, prec uint) (Fout, Gout []*big.Int, ok bool) {
	n := len(f)
	if prec < 256 {
		prec = 256
	}
	exp1 := extraBits(f, g, babaiScaleBase)
	fE := cfft.ToEval(cfft.ElemFromBig(f, exp1, prec), prec)
	gE := cfft.ToEval(cfft.ElemFromBig(g, exp1, prec), prec)
	fConj := fE.Conj()
	gConj := gE.Conj()
	den := cfft.Add(cfft.Mul(fE, fConj), cfft.Mul(gE, gConj))

	Fb := make([]*big.Int, n)
	Gb := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		Fb[i] = new(big.Int).Set(F[i])
		Gb[i] = new(big.Int).Set(G[i])
	}
	maxIters := 2 * bitlenMaxAbsBig(Fb)
	if maxIters <= 0 {
		maxIters = 2
	}
	for iter := 0; iter < maxIters; iter++ {
		exp2 := extraBits(Fb, Gb, babaiScaleBase)
		FE := cfft.ToEval(cfft.ElemFromBig(Fb, exp2, prec), prec)
		GE := cfft.ToEval(cfft.ElemFromBig(Gb, exp2, prec), prec)
		num := cfft.Add(cfft.Mul(FE, fConj), cfft.Mul(GE, gConj))
		y := cfft.NewElem(n, prec)
		y.Domain = cfft.Eval
		for i := 0; i < n; i++ {
			d := den.Coeffs[i].Real
			if d.Sign() == 0 {
				return nil, nil, false
			}
			y.Coeffs[i] = num.Coeffs[i].DivByFloat(d)
		}
		k := roundShifted(y, exp2-exp1, prec)
		allZero := true
		for _, ki := range k {
			if ki.Sign() != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			break
		}
		Kf := MulNegacyclicBig(k, f)
		Kg := MulNegacyclicBig(k, g)
		for i := 0; i < n; i++ {
			Fb[i].Sub(Fb[i], Kf[i])
			Gb[i].Sub(Gb[i], Kg[i])
		}
	}
	return Fb, Gb, true
}

// roundShifted converts an Eval-domain quotient back to coefficients,
// rescales by 2^shift and rounds half away from zero to integers. The
// imaginary parts must vanish up to float noise since the quotient is a
// real ring element.
func roundShifted(y *cfft.Elem, shift int, prec uint) []*big.Int {
	c := cfft.ToCoeff(y, prec)
	half := new(big.Float).SetPrec(prec).SetFloat64(0.5)
	out := make([]*big.Int, c.N)
	for i := 0; i < c.N; i++ {
		re, im := c.Coeffs[i].Float64()
		if abs := absF(im); abs > 1e-7*maxF(1, absF(re)) {
			panic(fmt.Sprintf("ntru: non-real Babai quotient at %d: %g", i, im))
		}
		r := c.Coeffs[i].Real
		if shift != 0 {
			mant := new(big.Float).SetPrec(prec)
			exp := r.MantExp(mant)
			r = new(big.Float).SetPrec(prec).SetMantExp(mant, exp+shift)
		}
		neg := r.Sign() < 0
		if neg {
			r = new(big.Float).SetPrec(prec).Neg(r)
		}
		s := new(big.Float).SetPrec(prec).Add(r, half)
		out[i] = new(big.Int)
		s.Int(out[i])
		if neg {
			out[i].Neg(out[i])
		}
	}
	return out
}

// CheckNTRUIdentity verifies f*G - g*F == Q exactly over the integers.
func CheckNTRUIdentity(f, g, F, G []int64, q uint64) bool {
	fG := MulNegacyclicBig(Int64sToBig(f), Int64sToBig(G))
	gF := MulNegacyclicBig(Int64sToBig(g), Int64sToBig(F))
	want := new(big.Int).SetUint64(q)
	for i := range fG {
		d := new(big.Int).Sub(fG[i], gF[i])
		if i == 0 {
			if d.Cmp(want) != 0 {
				return false
			}
		} else if d.Sign() != 0 {
			return false
		}
	}
	return true
}

// conj2 is the Galois conjugate x -> -x: odd coefficients flip sign.
func conj2(p []*big.Int) []*big.Int {
	out := make([]*big.Int, len(p))
	for i := range p {
		out[i] = new(big.Int).Set(p[i])
		if i&1 == 1 {
			out[i].Neg(out[i])
		}
	}
	return out
}

// reduce2 keeps the even coefficients, mapping f*conj2(f) down one tower level.
func reduce2(p []*big.Int) []*big.Int {
	out := make([]*big.Int, len(p)/2)
	for i := range out {
		out[i] = new(big.Int).Set(p[2*i])
	}
	return out
}

// expand2 is the section of reduce2: coefficients land on even positions.
func expand2(p []*big.Int) []*big.Int {
	out := make([]*big.Int, 2*len(p))
	for i := range out {
		out[i] = new(big.Int)
	}
	for i := range p {
		out[2*i].Set(p[i])
	}
	return out
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
