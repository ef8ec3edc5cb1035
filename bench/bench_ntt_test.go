package bench

import (
	"testing"

	"github.com/hsaleemsupra/lattice-ibe/ntru"
)

func BenchmarkNTTForwardInverse(b *testing.B) {
	p, _ := ntru.NewParams(1024, ntru.StandardQ)
	r, _ := p.BuildRing()
	poly := r.NewPoly()
	for i := 0; i < p.N; i++ {
		poly.Coeffs[0][i] = uint64(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ntru.ToNTT(r, poly)
		ntru.FromNTT(r, poly)
	}
}

func BenchmarkConvolve(b *testing.B) {
	p, _ := ntru.NewParams(1024, ntru.StandardQ)
	r, _ := p.BuildRing()
	x := make([]int64, p.N)
	y := make([]int64, p.N)
	for i := 0; i < p.N; i++ {
		x[i] = int64(i) - 512
		y[i] = int64(p.N-i) - 512
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ntru.Convolve(r, x, y)
	}
}
