// Package ntru implements the NTRU trapdoor machinery backing the
// lattice IBE scheme: ring arithmetic over a lattigo NTT ring, trapdoor
// basis generation (f, g, F, G with f*G - g*F = q), a big-integer tower
// solver for the NTRU equation, Gram-Schmidt precomputation of the
// anticirculant trapdoor basis, and the discrete Gaussian samplers used
// for both key generation and coset sampling.
//
// Everything is parametric in the ring degree N (a power of two) and
// the NTT-friendly prime modulus q. The package has no global state;
// randomness always comes from a caller-supplied PRNG so that every
// randomized procedure is reproducible from a seed.
package ntru
