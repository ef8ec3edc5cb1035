package ibe

import (
	"github.com/tuneinsight/lattigo/v4/ring"

	"github.com/hsaleemsupra/lattice-ibe/ntru"
)

// smoothingScale multiplies the largest Gram-Schmidt norm to obtain the
// extraction width. 1.32 sits above the smoothing parameter of Z^{2N}
// for the dimensions in use.
const smoothingScale = 1.32

// MasterPublicKey is h = g/f mod q. H holds centered coefficients;
// the NTT form is kept alongside for encryption.
type MasterPublicKey struct {
	Par ntru.Params
	H   []int64

	ringQ *ring.Ring
	hNTT  *ring.Poly
}

// MasterSecretKey is the trapdoor basis with its sampling precomputation.
type MasterSecretKey struct {
	Par   ntru.Params
	Basis *ntru.Basis

	// Sigma is the coset sampling width, fixed per master key.
	Sigma float64

	ringQ *ring.Ring
	gs    *ntru.GramSchmidt
}

// GSNorms returns a copy of the Gram-Schmidt norm profile of the basis.
func (sk *MasterSecretKey) GSNorms() []float64 {
	return append([]float64(nil), sk.gs.Norms...)
}

// SecretKeyID is the decryption key for one identity: the short s2 with
// s1 + s2*h = t mod q. s1 is implicit and never needed after extraction.
type SecretKeyID struct {
	Par ntru.Params
	S2  []int64

	ringQ *ring.Ring
	s2NTT *ring.Poly
}

// Ciphertext carries centered coefficient vectors
// C0 = r*h + e1 and C1 = r*t + e2 + floor(q/2)*m.
type Ciphertext struct {
	C0, C1 []int64
}
