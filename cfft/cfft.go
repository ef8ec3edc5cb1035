// Package cfft provides arbitrary-precision complex arithmetic and FFTs
// over the canonical embedding of the power-of-two cyclotomic ring
// R = Z[x]/(x^N+1). Coefficient vectors are twisted by the primitive
// 2N-th root psi = exp(-i*pi/N) so that a plain length-N FFT evaluates a
// polynomial at the odd powers of psi, i.e. the roots of x^N+1.
package cfft

import (
	"math/big"
)

// Domain tags whether an Elem holds coefficients or embedding values.
type Domain int

const (
	Coeff Domain = iota
	Eval
)

// BigComplex is a complex number with big.Float components.
type BigComplex struct {
	Real *big.Float
	Imag *big.Float
}

// NewBigComplex returns a zero BigComplex at the given precision.
func NewBigComplex(prec uint) *BigComplex {
	return &BigComplex{
		Real: new(big.Float).SetPrec(prec),
		Imag: new(big.Float).SetPrec(prec),
	}
}

// NewBigComplexFromFloats copies re and im into a BigComplex.
func NewBigComplexFromFloats(re, im *big.Float) *BigComplex {
	return &BigComplex{
		Real: new(big.Float).Copy(re),
		Imag: new(big.Float).Copy(im),
	}
}

// Add returns z + w.
func (z *BigComplex) Add(w *BigComplex) *BigComplex {
	return &BigComplex{
		Real: new(big.Float).Add(z.Real, w.Real),
		Imag: new(big.Float).Add(z.Imag, w.Imag),
	}
}

// Sub returns z - w.
func (z *BigComplex) Sub(w *BigComplex) *BigComplex {
	return &BigComplex{
		Real: new(big.Float).Sub(z.Real, w.Real),
		Imag: new(big.Float).Sub(z.Imag, w.Imag),
	}
}

// Mul returns z * w.
func (z *BigComplex) Mul(w *BigComplex) *BigComplex {
	ac := new(big.Float).Mul(z.Real, w.Real)
	bd := new(big.Float).Mul(z.Imag, w.Imag)
	ad := new(big.Float).Mul(z.Real, w.Imag)
	bc := new(big.Float).Mul(z.Imag, w.Real)
	return &BigComplex{
		Real: new(big.Float).Sub(ac, bd),
		Imag: new(big.Float).Add(ad, bc),
	}
}

// Conj returns the complex conjugate of z.
func (z *BigComplex) Conj() *BigComplex {
	return &BigComplex{
		Real: new(big.Float).Copy(z.Real),
		Imag: new(big.Float).Neg(z.Imag),
	}
}

// AbsSquared returns |z|^2.
func (z *BigComplex) AbsSquared() *big.Float {
	r2 := new(big.Float).Mul(z.Real, z.Real)
	i2 := new(big.Float).Mul(z.Imag, z.Imag)
	return new(big.Float).Add(r2, i2)
}

// Copy returns a deep copy of z.
func (z *BigComplex) Copy() *BigComplex {
	return &BigComplex{
		Real: new(big.Float).Copy(z.Real),
		Imag: new(big.Float).Copy(z.Imag),
	}
}

// DivByFloat divides both components of z by a real scalar.
func (z *BigComplex) DivByFloat(s *big.Float) *BigComplex {
	return &BigComplex{
		Real: new(big.Float).Quo(z.Real, s),
		Imag: new(big.Float).Quo(z.Imag, s),
	}
}

// Float64 returns the components rounded to float64.
func (z *BigComplex) Float64() (re, im float64) {
	re, _ = z.Real.Float64()
	im, _ = z.Imag.Float64()
	return
}

// halfAngleRoot returns cos and sin of pi/2^t at the given precision,
// derived from cos(pi/2)=0 by the half-angle identities so the twiddle
// seeds carry full big.Float precision rather than float64 accuracy.
func halfAngleRoot(t int, prec uint) (cos, sin *big.Float) {
	if t < 1 {
		panic("cfft: halfAngleRoot needs t >= 1")
	}
	wp := prec + 16
	cos = new(big.Float).SetPrec(wp) // cos(pi/2) = 0
	half := new(big.Float).SetPrec(wp).SetFloat64(0.5)
	one := new(big.Float).SetPrec(wp).SetInt64(1)
	for i := 1; i < t; i++ {
		// cos(a/2) = sqrt((1+cos a)/2)
		c2 := new(big.Float).SetPrec(wp).Add(one, cos)
		c2.Mul(c2, half)
		cos = c2.Sqrt(c2)
	}
	s2 := new(big.Float).SetPrec(wp).Sub(one, new(big.Float).Mul(cos, cos))
	sin = s2.Sqrt(s2)
	cos.SetPrec(prec)
	sin.SetPrec(prec)
	return cos, sin
}

// primitiveRoot returns exp(-2*pi*i/n) for a power-of-two n.
func primitiveRoot(n int, prec uint) *BigComplex {
	switch n {
	case 1:
		w := NewBigComplex(prec)
		w.Real.SetInt64(1)
		return w
	case 2:
		w := NewBigComplex(prec)
		w.Real.SetInt64(-1)
		return w
	}
	// angle 2*pi/n = pi/(n/2)
	t := 0
	for m := n / 2; m > 1; m >>= 1 {
		t++
	}
	cos, sin := halfAngleRoot(t, prec)
	w := NewBigComplex(prec)
	w.Real.Set(cos)
	w.Imag.Neg(sin)
	return w
}

// twiddles returns the first n/2 powers of exp(-2*pi*i/n).
func twiddles(n int, prec uint) []*BigComplex {
	w := primitiveRoot(n, prec)
	out := make([]*BigComplex, n/2)
	cur := NewBigComplex(prec)
	cur.Real.SetInt64(1)
	for k := 0; k < n/2; k++ {
		out[k] = cur.Copy()
		cur = cur.Mul(w)
	}
	return out
}

// FFT computes the forward DFT of a power-of-two length input.
func FFT(a []*BigComplex, prec uint) []*BigComplex {
	n := len(a)
	if n&(n-1) != 0 {
		panic("cfft: FFT length must be a power of two")
	}
	return fftRec(a, twiddles(n, prec), 1)
}

// IFFT computes the inverse DFT of a power-of-two length input.
func IFFT(A []*BigComplex, prec uint) []*BigComplex {
	n := len(A)
	if n&(n-1) != 0 {
		panic("cfft: IFFT length must be a power of two")
	}
	conj := make([]*BigComplex, n)
	for i, z := range A {
		conj[i] = z.Conj()
	}
	out := fftRec(conj, twiddles(n, prec), 1)
	nf := new(big.Float).SetPrec(prec).SetInt64(int64(n))
	for i := range out {
		out[i] = out[i].Conj().DivByFloat(nf)
	}
	return out
}

// fftRec is a radix-2 decimation-in-time recursion. tw holds the n/2
// twiddle powers of the top-level root; stride selects the powers for
// the current level.
func fftRec(a []*BigComplex, tw []*BigComplex, stride int) []*BigComplex {
	n := len(a)
	if n == 1 {
		return []*BigComplex{a[0].Copy()}
	}
	even := make([]*BigComplex, n/2)
	odd := make([]*BigComplex, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = a[2*i]
		odd[i] = a[2*i+1]
	}
	e := fftRec(even, tw, stride*2)
	o := fftRec(odd, tw, stride*2)
	out := make([]*BigComplex, n)
	for k := 0; k < n/2; k++ {
		t := tw[k*stride].Mul(o[k])
		out[k] = e[k].Add(t)
		out[k+n/2] = e[k].Sub(t)
	}
	return out
}
