package ibe

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"

	"github.com/hsaleemsupra/lattice-ibe/ntru"
)

// HashIdentity maps arbitrary identity bytes to N uniform coefficients
// mod q via a BLAKE2b XOF with rejection sampling, so distinct byte
// strings give unrelated ring elements.
func HashIdentity(data []byte, par ntru.Params) ([]int64, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, nil)
	if err != nil {
		return nil, fmt.Errorf("ibe: hash identity: %w", err)
	}
	if _, err := xof.Write(data); err != nil {
		return nil, fmt.Errorf("ibe: hash identity: %w", err)
	}
	q := par.Q
	threshold := (^uint64(0) / q) * q
	var buf [8]byte
	out := make([]int64, par.N)
	for i := range out {
		for {
			if _, err := io.ReadFull(xof, buf[:]); err != nil {
				return nil, fmt.Errorf("ibe: hash identity: %w", err)
			}
			w := binary.LittleEndian.Uint64(buf[:])
			if w < threshold {
				out[i] = int64(w % q)
				break
			}
		}
	}
	return out, nil
}

// BytesToMessage spreads bytes over n bit coefficients, LSB first
// within each byte. Unused high coefficients stay zero.
func BytesToMessage(data []byte, n int) ([]int64, error) {
	if 8*len(data) > n {
		return nil, fmt.Errorf("ibe: %d bytes do not fit in %d message bits", len(data), n)
	}
	msg := make([]int64, n)
	for i, b := range data {
		for bit := 0; bit < 8; bit++ {
			msg[8*i+bit] = int64((b >> bit) & 1)
		}
	}
	return msg, nil
}

// MessageToBytes packs the first 8*nbytes bit coefficients back into
// bytes, the inverse of BytesToMessage.
func MessageToBytes(msg []int64, nbytes int) ([]byte, error) {
	if 8*nbytes > len(msg) {
		return nil, fmt.Errorf("ibe: message has %d bits, want %d", len(msg), 8*nbytes)
	}
	out := make([]byte, nbytes)
	for i := range out {
		for bit := 0; bit < 8; bit++ {
			out[i] |= byte(msg[8*i+bit]&1) << bit
		}
	}
	return out, nil
}
