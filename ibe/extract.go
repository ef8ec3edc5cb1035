package ibe

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v4/utils"

	"github.com/hsaleemsupra/lattice-ibe/ntru"
)

// Extract derives the decryption key for an identity. The identity is
// reduced mod q and centered; the key is the second half of the short
// pair (s1, s2) with s1 + s2*h = t mod q, obtained by sampling a
// lattice point near (t, 0) and taking the difference.
func (sk *MasterSecretKey) Extract(id []int64, prng utils.PRNG) (*SecretKeyID, error) {
	n := sk.Par.N
	if len(id) != n {
		return nil, fmt.Errorf("ibe: extract: identity has %d coefficients, want %d", len(id), n)
	}
	t := centerIdentity(id, sk.Par.Q)
	c := make([]int64, 2*n)
	copy(c, t)
	v := sk.gs.SampleCoset(c, sk.Sigma, ntru.NewSamplerZ(prng))
	s2 := make([]int64, n)
	for i := 0; i < n; i++ {
		s2[i] = -v[n+i]
	}
	s2NTT := ntru.PolyFromCentered(sk.ringQ, s2)
	ntru.ToNTT(sk.ringQ, s2NTT)
	return &SecretKeyID{
		Par:   sk.Par,
		S2:    s2,
		ringQ: sk.ringQ,
		s2NTT: s2NTT,
	}, nil
}

// centerIdentity maps arbitrary identity coefficients to centered
// representatives in (-q/2, q/2].
func centerIdentity(id []int64, q uint64) []int64 {
	out := make([]int64, len(id))
	for i, x := range id {
		out[i] = ntru.Center(ntru.Canonical(x, q), q)
	}
	return out
}
