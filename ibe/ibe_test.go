package ibe

import (
	"testing"

	"github.com/tuneinsight/lattigo/v4/utils"

	"github.com/hsaleemsupra/lattice-ibe/ntru"
)

func testKeypair(t *testing.T, n int, seed string) (*MasterPublicKey, *MasterSecretKey) {
	t.Helper()
	par, err := ntru.NewParams(n, ntru.StandardQ)
	if err != nil {
		t.Fatalf("params: %v", err)
	}
	prng, err := utils.NewKeyedPRNG([]byte(seed))
	if err != nil {
		t.Fatalf("prng: %v", err)
	}
	mpk, msk, err := Keygen(par, prng)
	if err != nil {
		t.Fatalf("Keygen: %v", err)
	}
	return mpk, msk
}

func keyedPRNG(t *testing.T, seed string) utils.PRNG {
	t.Helper()
	prng, err := utils.NewKeyedPRNG([]byte(seed))
	if err != nil {
		t.Fatalf("prng: %v", err)
	}
	return prng
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	mpk, msk := testKeypair(t, 64, "ibe-roundtrip")
	prng := keyedPRNG(t, "ibe-roundtrip-ops")
	id, err := HashIdentity([]byte("alice@example.com"), mpk.Par)
	if err != nil {
		t.Fatalf("HashIdentity: %v", err)
	}
	key, err := msk.Extract(id, prng)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	msg := make([]int64, mpk.Par.N)
	for i := range msg {
		msg[i] = int64(i % 2)
	}
	ct, err := Encrypt(mpk, msg, id, prng)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	dec, err := key.Decrypt(ct)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	for i := range msg {
		if dec[i] != msg[i] {
			t.Fatalf("bit %d: got %d want %d", i, dec[i], msg[i])
		}
	}
}

func TestDecryptWrongIdentity(t *testing.T) {
	mpk, msk := testKeypair(t, 64, "ibe-wrongid")
	prng := keyedPRNG(t, "ibe-wrongid-ops")
	idA, err := HashIdentity([]byte("alice@example.com"), mpk.Par)
	if err != nil {
		t.Fatalf("HashIdentity: %v", err)
	}
	idB, err := HashIdentity([]byte("bob@example.com"), mpk.Par)
	if err != nil {
		t.Fatalf("HashIdentity: %v", err)
	}
	keyB, err := msk.Extract(idB, prng)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	msg := make([]int64, mpk.Par.N)
	for i := range msg {
		msg[i] = int64((i / 3) % 2)
	}
	ct, err := Encrypt(mpk, msg, idA, prng)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	dec, err := keyB.Decrypt(ct)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	diff := 0
	for i := range msg {
		if dec[i] != msg[i] {
			diff++
		}
	}
	if diff == 0 {
		t.Fatal("unrelated identity decrypted the ciphertext")
	}
}

func TestExtractEquation(t *testing.T) {
	mpk, msk := testKeypair(t, 64, "ibe-extract")
	prng := keyedPRNG(t, "ibe-extract-ops")
	id, err := HashIdentity([]byte("carol"), mpk.Par)
	if err != nil {
		t.Fatalf("HashIdentity: %v", err)
	}
	key, err := msk.Extract(id, prng)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	// s1 + s2*h = t mod q holds for s1 := t - s2*h by construction; the
	// substance of extraction is that this s1 comes out short, which
	// only happens when s2 solves the coset sampling problem.
	ringQ, err := mpk.Par.BuildRing()
	if err != nil {
		t.Fatalf("ring: %v", err)
	}
	s2h := ntru.Convolve(ringQ, key.S2, mpk.H)
	q := mpk.Par.Q
	s1 := make([]int64, len(id))
	for i := range id {
		s1[i] = ntru.Center(ntru.Canonical(id[i]-s2h[i], q), q)
	}
	// Both halves sit many orders of magnitude below q.
	bound := int64(q) / 1000
	if norm := ntru.InfNorm(s1); norm > bound {
		t.Fatalf("s1 not short: inf norm %d", norm)
	}
	if norm := ntru.InfNorm(key.S2); norm == 0 || norm > bound {
		t.Fatalf("s2 not short: inf norm %d", norm)
	}
}

func TestSeededOperationsDeterministic(t *testing.T) {
	run := func() ([]int64, *Ciphertext) {
		mpk, msk := testKeypair(t, 32, "ibe-seeded")
		prng := keyedPRNG(t, "ibe-seeded-ops")
		id, err := HashIdentity([]byte("dave"), mpk.Par)
		if err != nil {
			t.Fatalf("HashIdentity: %v", err)
		}
		key, err := msk.Extract(id, prng)
		if err != nil {
			t.Fatalf("Extract: %v", err)
		}
		msg := make([]int64, mpk.Par.N)
		msg[0] = 1
		ct, err := Encrypt(mpk, msg, id, prng)
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}
		return key.S2, ct
	}
	s2a, ctA := run()
	s2b, ctB := run()
	for i := range s2a {
		if s2a[i] != s2b[i] {
			t.Fatalf("extraction diverged at %d", i)
		}
		if ctA.C0[i] != ctB.C0[i] || ctA.C1[i] != ctB.C1[i] {
			t.Fatalf("encryption diverged at %d", i)
		}
	}
}

func TestBoundaryMessages(t *testing.T) {
	mpk, msk := testKeypair(t, 64, "ibe-boundary")
	prng := keyedPRNG(t, "ibe-boundary-ops")
	// All-zero identity is degenerate but valid.
	id := make([]int64, mpk.Par.N)
	key, err := msk.Extract(id, prng)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	for _, bit := range []int64{0, 1} {
		msg := make([]int64, mpk.Par.N)
		for i := range msg {
			msg[i] = bit
		}
		ct, err := Encrypt(mpk, msg, id, prng)
		if err != nil {
			t.Fatalf("Encrypt: %v", err)
		}
		dec, err := key.Decrypt(ct)
		if err != nil {
			t.Fatalf("Decrypt: %v", err)
		}
		for i := range msg {
			if dec[i] != bit {
				t.Fatalf("all-%d message: bit %d decrypted as %d", bit, i, dec[i])
			}
		}
	}
}

func TestInputValidation(t *testing.T) {
	mpk, msk := testKeypair(t, 32, "ibe-validate")
	prng := keyedPRNG(t, "ibe-validate-ops")
	if _, err := msk.Extract(make([]int64, 7), prng); err == nil {
		t.Fatal("Extract accepted wrong identity length")
	}
	id := make([]int64, mpk.Par.N)
	if _, err := Encrypt(mpk, make([]int64, 7), id, prng); err == nil {
		t.Fatal("Encrypt accepted wrong message length")
	}
	bad := make([]int64, mpk.Par.N)
	bad[3] = 2
	if _, err := Encrypt(mpk, bad, id, prng); err == nil {
		t.Fatal("Encrypt accepted non-bit message coefficient")
	}
	key, err := msk.Extract(id, prng)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if _, err := key.Decrypt(&Ciphertext{C0: make([]int64, 7), C1: make([]int64, 7)}); err == nil {
		t.Fatal("Decrypt accepted wrong ciphertext length")
	}
}

// Full-size deployment scenario.
func TestStandardScenario(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping N=1024 scenario in short mode")
	}
	par := ntru.StandardParams()
	prng := keyedPRNG(t, "ibe-standard")
	mpk, msk, err := Keygen(par, prng)
	if err != nil {
		t.Fatalf("Keygen: %v", err)
	}
	id := make([]int64, par.N)
	id[0] = 1
	key, err := msk.Extract(id, prng)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	msg := make([]int64, par.N)
	msg[0] = 1
	msg[1] = 1
	ct, err := Encrypt(mpk, msg, id, prng)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	dec, err := key.Decrypt(ct)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	for i := range msg {
		if dec[i] != msg[i] {
			t.Fatalf("bit %d: got %d want %d", i, dec[i], msg[i])
		}
	}
}
