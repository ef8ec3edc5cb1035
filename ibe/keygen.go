package ibe

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v4/ring"
	"github.com/tuneinsight/lattigo/v4/utils"

	"github.com/hsaleemsupra/lattice-ibe/ntru"
)

// Keygen generates a master keypair for par, drawing all randomness
// from prng. The returned secret key is ready for extraction: the
// Gram-Schmidt data and sampling width are already computed.
func Keygen(par ntru.Params, prng utils.PRNG) (*MasterPublicKey, *MasterSecretKey, error) {
	ringQ, err := par.BuildRing()
	if err != nil {
		return nil, nil, fmt.Errorf("ibe: keygen: %w", err)
	}
	basis, err := ntru.GenerateBasis(par, ringQ, prng)
	if err != nil {
		return nil, nil, fmt.Errorf("ibe: keygen: %w", err)
	}
	mpk, err := CompleteMPK(par, ringQ, basis)
	if err != nil {
		return nil, nil, fmt.Errorf("ibe: keygen: %w", err)
	}
	return mpk, CompleteMSK(par, ringQ, basis), nil
}

// CompleteMPK derives the public key from a basis and precomputes its
// NTT form.
func CompleteMPK(par ntru.Params, ringQ *ring.Ring, b *ntru.Basis) (*MasterPublicKey, error) {
	hNTT, err := ntru.PublicFromBasis(ringQ, b)
	if err != nil {
		return nil, err
	}
	hCoeff := ringQ.NewPoly()
	ring.Copy(hNTT, hCoeff)
	ntru.FromNTT(ringQ, hCoeff)
	return &MasterPublicKey{
		Par:   par,
		H:     ntru.CenteredFromPoly(ringQ, hCoeff),
		ringQ: ringQ,
		hNTT:  hNTT,
	}, nil
}

// CompleteMSK orthogonalizes the basis and fixes the extraction width
// at smoothingScale times the largest Gram-Schmidt norm.
func CompleteMSK(par ntru.Params, ringQ *ring.Ring, b *ntru.Basis) *MasterSecretKey {
	gs := ntru.NewGramSchmidt(b)
	return &MasterSecretKey{
		Par:   par,
		Basis: b,
		Sigma: smoothingScale * gs.MaxGSNorm(),
		ringQ: ringQ,
		gs:    gs,
	}
}
