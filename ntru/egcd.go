package ntru

import "math/big"

// extGCDMinV returns (u, v, g) with a*u + b*v = g = gcd(a,b), choosing the
// representative with minimal |v| along the solution lattice (u + k*b,
// v - k*a). The tower base case sets F0 = v*Q, so a zero v is degenerate
// there; when the minimizer lands on v = 0 we step once to the smallest
// non-zero v instead.
func extGCDMinV(a, b *big.Int) (u, v, g *big.Int) {
	u0 := new(big.Int)
	v0 := new(big.Int)
	g = new(big.Int).GCD(u0, v0, a, b)

	if a.Sign() == 0 {
		u = new(big.Int)
		v = big.NewInt(1)
		if b.Sign() < 0 {
			v.Neg(v)
		}
		g = new(big.Int).Abs(b)
		return
	}
	if b.Sign() == 0 {
		u = big.NewInt(1)
		if a.Sign() < 0 {
			u.Neg(u)
		}
		v = new(big.Int)
		g = new(big.Int).Abs(a)
		return
	}

	// k = round(v0 / a), as floor((v0 + sign(a)*floor(|a|/2)) / a).
	half := new(big.Int).Abs(a)
	half.Rsh(half, 1)
	num := new(big.Int).Set(v0)
	if a.Sign() > 0 {
		num.Add(num, half)
	} else {
		num.Sub(num, half)
	}
	k := new(big.Int).Quo(num, a)

	shift := func(k *big.Int) (*big.Int, *big.Int) {
		uu := new(big.Int).Add(u0, new(big.Int).Mul(k, b))
		vv := new(big.Int).Sub(v0, new(big.Int).Mul(k, a))
		return uu, vv
	}
	u, v = shift(k)

	// Rounding above is approximate for truncated division; check both
	// neighbours and keep the strictly smaller |v| if one exists.
	for _, d := range []int64{1, -1} {
		kd := new(big.Int).Add(k, big.NewInt(d))
		_, vd := shift(kd)
		if vd.CmpAbs(v) < 0 {
			k = kd
			u, v = shift(k)
		}
	}

	if v.Sign() == 0 {
		step := big.NewInt(1)
		if a.Sign() < 0 {
			step.Neg(step)
		}
		k.Add(k, step)
		u, v = shift(k)
	}
	return
}
