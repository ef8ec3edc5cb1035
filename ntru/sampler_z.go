package ntru

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// TailCut is the Gaussian tail bound in standard deviations. Candidates
// outside [c - TailCut*sigma, c + TailCut*sigma] carry total mass below
// 2^-120, so cutting them keeps the sampler statistically indistinguishable
// from the ideal discrete Gaussian.
const TailCut = 13.0

// Source wraps a lattigo PRNG with the word/float/bounded-integer
// primitives the samplers consume. Deterministic for a keyed PRNG.
type Source struct {
	prng utils.PRNG
	buf  [8]byte
}

// NewSource binds a Source to a PRNG.
func NewSource(prng utils.PRNG) *Source {
	return &Source{prng: prng}
}

// Uint64 reads the next word from the PRNG.
func (s *Source) Uint64() uint64 {
	if _, err := io.ReadFull(s.prng, s.buf[:]); err != nil {
		panic("ntru: prng read: " + err.Error())
	}
	return binary.LittleEndian.Uint64(s.buf[:])
}

// Float64 returns a uniform value in [0,1) with 53 bits of precision.
func (s *Source) Float64() float64 {
	return float64(s.Uint64()&0x1FFFFFFFFFFFFF) * 0x1p-53
}

// UniformInt64 returns a uniform integer in [0,n) by threshold rejection.
func (s *Source) UniformInt64(n int64) int64 {
	if n <= 0 {
		panic("ntru: UniformInt64 needs n > 0")
	}
	size := uint64(n)
	threshold := (^uint64(0) / size) * size
	for {
		w := s.Uint64()
		if w < threshold {
			return int64(w % size)
		}
	}
}

// Ternary returns a uniform value in {-1, 0, 1}.
func (s *Source) Ternary() int64 {
	return s.UniformInt64(3) - 1
}

// TernaryVec fills a fresh length-n vector with uniform ternary values.
func (s *Source) TernaryVec(n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = s.Ternary()
	}
	return out
}

// SamplerZ draws from discrete Gaussians D_{Z,sigma,c} with arbitrary
// center and width by tail-cut rejection: a uniform candidate on the
// support window is accepted with probability exp(-(z-c)^2 / 2 sigma^2).
// Exact within the tail cut for every (c, sigma); widths below the
// smoothing parameter of Z are a caller contract violation.
type SamplerZ struct {
	src *Source
}

// NewSamplerZ builds a sampler reading randomness from prng.
func NewSamplerZ(prng utils.PRNG) *SamplerZ {
	return &SamplerZ{src: NewSource(prng)}
}

// Source exposes the underlying uniform source, shared with the
// ternary sampling done at encryption time.
func (s *SamplerZ) Source() *Source {
	return s.src
}

// Sample returns one value of D_{Z,sigma,c}.
func (s *SamplerZ) Sample(c, sigma float64) int64 {
	lo := int64(math.Floor(c - TailCut*sigma))
	span := int64(math.Ceil(2*TailCut*sigma)) + 1
	inv := 1 / (2 * sigma * sigma)
	for {
		z := lo + s.src.UniformInt64(span)
		d := float64(z) - c
		if s.src.Float64() < math.Exp(-d*d*inv) {
			return z
		}
	}
}

// SamplePoly draws n independent centered Gaussian coefficients.
func (s *SamplerZ) SamplePoly(n int, sigma float64) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = s.Sample(0, sigma)
	}
	return out
}
