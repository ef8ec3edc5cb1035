package ibe

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v4/utils"

	"github.com/hsaleemsupra/lattice-ibe/ntru"
)

// Encrypt encrypts an N-bit message to an identity under the master
// public key. The message carries one bit per coefficient.
func Encrypt(pk *MasterPublicKey, msg, id []int64, prng utils.PRNG) (*Ciphertext, error) {
	n := pk.Par.N
	q := pk.Par.Q
	if len(msg) != n {
		return nil, fmt.Errorf("ibe: encrypt: message has %d coefficients, want %d", len(msg), n)
	}
	if len(id) != n {
		return nil, fmt.Errorf("ibe: encrypt: identity has %d coefficients, want %d", len(id), n)
	}
	for i, b := range msg {
		if b != 0 && b != 1 {
			return nil, fmt.Errorf("ibe: encrypt: message coefficient %d is %d, want a bit", i, b)
		}
	}
	t := centerIdentity(id, q)
	src := ntru.NewSource(prng)
	rv := src.TernaryVec(n)
	e1 := src.TernaryVec(n)
	e2 := src.TernaryVec(n)

	rh := ntru.ConvolveNTT(pk.ringQ, pk.hNTT, rv)
	rt := ntru.Convolve(pk.ringQ, rv, t)
	half := int64(q / 2)
	c0 := make([]int64, n)
	c1 := make([]int64, n)
	for i := 0; i < n; i++ {
		c0[i] = ntru.Center(ntru.Canonical(rh[i]+e1[i], q), q)
		c1[i] = ntru.Center(ntru.Canonical(rt[i]+e2[i]+half*msg[i], q), q)
	}
	return &Ciphertext{C0: c0, C1: c1}, nil
}

// Decrypt recovers the message bits. A key extracted for a different
// identity yields noise bits, not an error.
func (sk *SecretKeyID) Decrypt(ct *Ciphertext) ([]int64, error) {
	n := sk.Par.N
	q := sk.Par.Q
	if len(ct.C0) != n || len(ct.C1) != n {
		return nil, fmt.Errorf("ibe: decrypt: ciphertext has %d/%d coefficients, want %d", len(ct.C0), len(ct.C1), n)
	}
	w := ntru.ConvolveNTT(sk.ringQ, sk.s2NTT, ct.C0)
	half := q / 2
	quarter := q / 4
	msg := make([]int64, n)
	for i := 0; i < n; i++ {
		v := ntru.Canonical(ct.C1[i]-w[i], q)
		msg[i] = int64(((v + quarter) / half) & 1)
	}
	return msg, nil
}
