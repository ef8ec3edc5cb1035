package ntru

import (
	"errors"
	"fmt"
	"math"

	"github.com/tuneinsight/lattigo/v4/ring"
)

// StandardN is the deployment ring degree.
const StandardN = 1024

// StandardQ is the deployment modulus 2^30 + 2^13 + 1, a prime congruent
// to 1 mod 2^13, so the negacyclic NTT exists for every power-of-two
// degree up to 4096 and coefficient products fit in a uint64.
const StandardQ uint64 = 1073750017

// Params defines the cyclotomic degree N, the prime modulus Q and the
// key-generation knobs derived from them.
type Params struct {
	N int
	Q uint64

	// SigmaKey is the Gaussian width for the trapdoor polynomials f, g,
	// 1.17*sqrt(Q/2N), targeting ||(f,g)|| ~ 1.17*sqrt(Q).
	SigmaKey float64

	// BoundNorm is the squared-norm acceptance bound 1.36*Q applied to
	// ||(f,g)||^2 and to the dual squared norm, the slot average
	// (1/N)*sum_i Q^2/(|f_i|^2+|g_i|^2). Together the two checks keep
	// both ends of the trapdoor basis Gram-Schmidt profile below
	// sqrt(1.36*Q).
	BoundNorm float64

	// MaxTrials bounds the candidate search in GenerateBasis.
	MaxTrials int

	// Prec is the big.Float precision used by the NTRU solver.
	Prec uint
}

// NewParams validates N and Q and fills in the derived key-generation
// parameters.
func NewParams(N int, Q uint64) (Params, error) {
	if N <= 0 || N&(N-1) != 0 {
		return Params{}, errors.New("N must be a power of two")
	}
	if Q < 3 || Q >= 1<<31 {
		return Params{}, errors.New("Q must be an odd prime below 2^31")
	}
	if Q%uint64(2*N) != 1 {
		return Params{}, fmt.Errorf("Q must be 1 mod 2N for the NTT (got Q=%d, N=%d)", Q, N)
	}
	return Params{
		N:         N,
		Q:         Q,
		SigmaKey:  1.17 * math.Sqrt(float64(Q)/float64(2*N)),
		BoundNorm: 1.36 * float64(Q),
		MaxTrials: 64,
		Prec:      256,
	}, nil
}

// StandardParams returns the deployment parameter set (N=1024).
func StandardParams() Params {
	par, err := NewParams(StandardN, StandardQ)
	if err != nil {
		panic(err)
	}
	return par
}

// BuildRing constructs the single-modulus lattigo ring for p.
func (p Params) BuildRing() (*ring.Ring, error) {
	return ring.NewRing(p.N, []uint64{p.Q})
}
