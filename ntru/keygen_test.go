package ntru

import (
	"testing"

	"github.com/tuneinsight/lattigo/v4/utils"
)

func TestGenerateBasis(t *testing.T) {
	par, err := NewParams(64, StandardQ)
	if err != nil {
		t.Fatalf("params: %v", err)
	}
	r, err := par.BuildRing()
	if err != nil {
		t.Fatalf("ring: %v", err)
	}
	prng, err := utils.NewKeyedPRNG([]byte("keygen-test"))
	if err != nil {
		t.Fatalf("prng: %v", err)
	}
	b, err := GenerateBasis(par, r, prng)
	if err != nil {
		t.Fatalf("GenerateBasis: %v", err)
	}
	if !CheckNTRUIdentity(b.F, b.G, b.BigF, b.BigG, par.Q) {
		t.Fatal("basis identity does not hold")
	}
	if SquaredNorm(b.F)+SquaredNorm(b.G) > par.BoundNorm {
		t.Fatal("accepted pair exceeds the norm bound")
	}
	if !IsUnit(r, b.F) {
		t.Fatal("accepted f is not a unit")
	}
}

// The candidate search must terminate well inside the trial budget at a
// realistic degree; a gate that rejects typical Gaussian pairs would
// exhaust MaxTrials here.
func TestGenerateBasisWithinTrialBudget(t *testing.T) {
	par, err := NewParams(256, StandardQ)
	if err != nil {
		t.Fatalf("params: %v", err)
	}
	r, err := par.BuildRing()
	if err != nil {
		t.Fatalf("ring: %v", err)
	}
	prng, err := utils.NewKeyedPRNG([]byte("keygen-budget"))
	if err != nil {
		t.Fatalf("prng: %v", err)
	}
	b, err := GenerateBasis(par, r, prng)
	if err != nil {
		t.Fatalf("GenerateBasis at N=256: %v", err)
	}
	if !gsQualityOK(b.F, b.G, par) {
		t.Fatal("accepted pair fails the quality gate")
	}
	if !CheckNTRUIdentity(b.F, b.G, b.BigF, b.BigG, par.Q) {
		t.Fatal("basis identity does not hold")
	}
}

func TestPublicFromBasis(t *testing.T) {
	par, err := NewParams(64, StandardQ)
	if err != nil {
		t.Fatalf("params: %v", err)
	}
	r, err := par.BuildRing()
	if err != nil {
		t.Fatalf("ring: %v", err)
	}
	prng, err := utils.NewKeyedPRNG([]byte("public-test"))
	if err != nil {
		t.Fatalf("prng: %v", err)
	}
	b, err := GenerateBasis(par, r, prng)
	if err != nil {
		t.Fatalf("GenerateBasis: %v", err)
	}
	hNTT, err := PublicFromBasis(r, b)
	if err != nil {
		t.Fatalf("PublicFromBasis: %v", err)
	}
	// f*h must reproduce g mod q.
	fh := ConvolveNTT(r, hNTT, b.F)
	for i := range fh {
		if Canonical(fh[i], par.Q) != Canonical(b.G[i], par.Q) {
			t.Fatalf("f*h coeff %d: got %d want %d", i, fh[i], b.G[i])
		}
	}
}

func TestGenerateBasisDeterministic(t *testing.T) {
	par, err := NewParams(32, StandardQ)
	if err != nil {
		t.Fatalf("params: %v", err)
	}
	r, err := par.BuildRing()
	if err != nil {
		t.Fatalf("ring: %v", err)
	}
	gen := func() *Basis {
		prng, err := utils.NewKeyedPRNG([]byte("keygen-repro"))
		if err != nil {
			t.Fatalf("prng: %v", err)
		}
		b, err := GenerateBasis(par, r, prng)
		if err != nil {
			t.Fatalf("GenerateBasis: %v", err)
		}
		return b
	}
	a := gen()
	b := gen()
	for i := range a.F {
		if a.F[i] != b.F[i] || a.G[i] != b.G[i] || a.BigF[i] != b.BigF[i] || a.BigG[i] != b.BigG[i] {
			t.Fatalf("seeded keygen diverged at coeff %d", i)
		}
	}
}
