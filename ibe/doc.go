// Package ibe implements identity-based encryption over NTRU lattices.
//
// A master authority generates a trapdoor basis for the lattice behind
// a public key h, extracts a short decryption key for any identity by
// Gaussian coset sampling, and anyone holding h encrypts to an identity
// directly. Extraction is the only operation that touches the trapdoor.
//
// All randomized operations read from a caller-supplied lattigo PRNG,
// so keyed PRNGs reproduce keys and ciphertexts exactly.
package ibe
