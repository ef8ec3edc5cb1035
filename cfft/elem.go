package cfft

import (
	"math/big"
)

// Elem is a ring element carried at arbitrary precision, either as
// coefficients or as its N embedding values.
type Elem struct {
	N      int
	Prec   uint
	Domain Domain
	Coeffs []*BigComplex
}

// NewElem allocates a zero Elem in coefficient domain.
func NewElem(n int, prec uint) *Elem {
	coeffs := make([]*BigComplex, n)
	for i := range coeffs {
		coeffs[i] = NewBigComplex(prec)
	}
	return &Elem{N: n, Prec: prec, Coeffs: coeffs}
}

// Copy returns a deep copy of e.
func (e *Elem) Copy() *Elem {
	out := &Elem{N: e.N, Prec: e.Prec, Domain: e.Domain, Coeffs: make([]*BigComplex, e.N)}
	for i, c := range e.Coeffs {
		out.Coeffs[i] = c.Copy()
	}
	return out
}

// Conj conjugates every slot. In Eval domain this is the adjoint
// (x -> x(1/x)) of the embedded ring element.
func (e *Elem) Conj() *Elem {
	out := &Elem{N: e.N, Prec: e.Prec, Domain: e.Domain, Coeffs: make([]*BigComplex, e.N)}
	for i, c := range e.Coeffs {
		out.Coeffs[i] = c.Conj()
	}
	return out
}

// Add returns a + b slot-wise.
func Add(a, b *Elem) *Elem {
	out := &Elem{N: a.N, Prec: a.Prec, Domain: a.Domain, Coeffs: make([]*BigComplex, a.N)}
	for i := range a.Coeffs {
		out.Coeffs[i] = a.Coeffs[i].Add(b.Coeffs[i])
	}
	return out
}

// Sub returns a - b slot-wise.
func Sub(a, b *Elem) *Elem {
	out := &Elem{N: a.N, Prec: a.Prec, Domain: a.Domain, Coeffs: make([]*BigComplex, a.N)}
	for i := range a.Coeffs {
		out.Coeffs[i] = a.Coeffs[i].Sub(b.Coeffs[i])
	}
	return out
}

// Mul returns a * b slot-wise; both operands must be in Eval domain.
func Mul(a, b *Elem) *Elem {
	if a.Domain != Eval || b.Domain != Eval {
		panic("cfft: Mul requires Eval domain")
	}
	out := &Elem{N: a.N, Prec: a.Prec, Domain: Eval, Coeffs: make([]*BigComplex, a.N)}
	for i := range a.Coeffs {
		out.Coeffs[i] = a.Coeffs[i].Mul(b.Coeffs[i])
	}
	return out
}

// psiPowers precomputes psi^j (and inverses) for j in [0,N) with
// psi = exp(-i*pi/N), the twist taking x^N+1 evaluations to a plain DFT.
func psiPowers(n int, prec uint) (pow, inv []*BigComplex) {
	t := 0
	for m := n; m > 1; m >>= 1 {
		t++
	}
	var psi *BigComplex
	if n == 1 {
		psi = NewBigComplex(prec)
		psi.Real.SetInt64(-1)
	} else {
		cos, sin := halfAngleRoot(t, prec)
		psi = NewBigComplex(prec)
		psi.Real.Set(cos)
		psi.Imag.Neg(sin)
	}
	pow = make([]*BigComplex, n)
	inv = make([]*BigComplex, n)
	cur := NewBigComplex(prec)
	cur.Real.SetInt64(1)
	for j := 0; j < n; j++ {
		pow[j] = cur.Copy()
		inv[j] = cur.Conj()
		cur = cur.Mul(psi)
	}
	return pow, inv
}

// ToEval maps a coefficient-domain Elem to its embedding values.
func ToEval(e *Elem, prec uint) *Elem {
	if e.Domain != Coeff {
		panic("cfft: ToEval requires Coeff domain")
	}
	pow, _ := psiPowers(e.N, prec)
	tw := make([]*BigComplex, e.N)
	for j := 0; j < e.N; j++ {
		tw[j] = e.Coeffs[j].Mul(pow[j])
	}
	vals := FFT(tw, prec)
	return &Elem{N: e.N, Prec: prec, Domain: Eval, Coeffs: vals}
}

// ToCoeff maps embedding values back to (complex) coefficients.
func ToCoeff(e *Elem, prec uint) *Elem {
	if e.Domain != Eval {
		panic("cfft: ToCoeff requires Eval domain")
	}
	_, inv := psiPowers(e.N, prec)
	coeffs := IFFT(e.Coeffs, prec)
	for j := 0; j < e.N; j++ {
		coeffs[j] = coeffs[j].Mul(inv[j])
	}
	return &Elem{N: e.N, Prec: prec, Domain: Coeff, Coeffs: coeffs}
}

// ElemFromInt64 loads centered integer coefficients.
func ElemFromInt64(coeffs []int64, prec uint) *Elem {
	e := NewElem(len(coeffs), prec)
	for i, c := range coeffs {
		e.Coeffs[i].Real.SetInt64(c)
	}
	return e
}

// ElemFromBig loads big.Int coefficients, optionally right-shifted by sh
// bits (rounding toward zero) to keep magnitudes inside the working range.
func ElemFromBig(coeffs []*big.Int, sh int, prec uint) *Elem {
	e := NewElem(len(coeffs), prec)
	for i, c := range coeffs {
		t := new(big.Int).Set(c)
		if sh > 0 {
			neg := t.Sign() < 0
			if neg {
				t.Neg(t)
			}
			t.Rsh(t, uint(sh))
			if neg {
				t.Neg(t)
			}
		}
		e.Coeffs[i].Real.SetInt(t)
	}
	return e
}
