package curve

import (
	"math/big"
)

// baseMultFunc computes k·G for 0 < k < N with an external implementation.
type baseMultFunc func(k *big.Int) (x, y *big.Int)

// jacobian is a point (X/Z², Y/Z³) with big.Int coordinates; Z = 0 is the
// identity.
type jacobian struct {
	x, y, z *big.Int
}

// ScalarBaseMultVartime returns k·G like ScalarBaseMult, but in time that
// depends on k. Only use it for public scalars, such as candidate keys that
// are checked against a known public point.
func (c *Curve) ScalarBaseMultVartime(k *big.Int) Point {
	if k.Sign() < 0 {
		panic("curve: negative scalar")
	}

	kr := new(big.Int).Mod(k, c.params.N)
	if kr.Sign() == 0 {
		return c.Identity()
	}
	if c.baseMult != nil {
		x, y := c.baseMult(kr)
		return c.affine(x, y)
	}
	return c.vartimeMult(kr, c.params.Gx, c.params.Gy)
}

// ScalarMultVartime returns k·p in time that depends on k and p. p must be
// on the curve, otherwise ErrInvalidPoint is returned.
func (c *Curve) ScalarMultVartime(k *big.Int, p Point) (Point, error) {
	if !c.IsOnCurve(p) {
		return Point{}, makeError(ErrInvalidPoint, "cannot multiply a point that is not on the curve")
	}
	if k.Sign() < 0 {
		panic("curve: negative scalar")
	}
	if p.IsIdentity() || k.Sign() == 0 {
		return c.Identity(), nil
	}
	return c.vartimeMult(k, p.X(), p.Y()), nil
}

// affine wraps coordinates known to be on the curve.
func (c *Curve) affine(x, y *big.Int) Point {
	return Point{x: c.f.NewElement(x), y: c.f.NewElement(y), finite: 1}
}

// vartimeMult is left-to-right double-and-add in Jacobian coordinates.
func (c *Curve) vartimeMult(k, x, y *big.Int) Point {
	base := jacobian{new(big.Int).Set(x), new(big.Int).Set(y), big.NewInt(1)}
	acc := jacobian{new(big.Int), new(big.Int), new(big.Int)}

	for i := k.BitLen() - 1; i >= 0; i-- {
		acc = c.jacobianDouble(acc)
		if k.Bit(i) == 1 {
			acc = c.jacobianAdd(acc, base)
		}
	}
	return c.fromJacobian(acc)
}

func (c *Curve) mod(v *big.Int) *big.Int {
	return v.Mod(v, c.params.P)
}

// jacobianDouble uses the dbl-2007-bl formulas for general a.
func (c *Curve) jacobianDouble(p jacobian) jacobian {
	if p.z.Sign() == 0 || p.y.Sign() == 0 {
		return jacobian{new(big.Int), new(big.Int), new(big.Int)}
	}

	xx := c.mod(new(big.Int).Mul(p.x, p.x))
	yy := c.mod(new(big.Int).Mul(p.y, p.y))
	yyyy := c.mod(new(big.Int).Mul(yy, yy))
	zz := c.mod(new(big.Int).Mul(p.z, p.z))

	// S = 4·X·YY, M = 3·XX + a·ZZ²
	s := c.mod(new(big.Int).Lsh(new(big.Int).Mul(p.x, yy), 2))
	m := new(big.Int).Mul(xx, big.NewInt(3))
	m.Add(m, new(big.Int).Mul(c.params.A, new(big.Int).Mul(zz, zz)))
	c.mod(m)

	x3 := new(big.Int).Mul(m, m)
	x3.Sub(x3, new(big.Int).Lsh(s, 1))
	c.mod(x3)

	y3 := new(big.Int).Mul(m, new(big.Int).Sub(s, x3))
	y3.Sub(y3, new(big.Int).Lsh(yyyy, 3))
	c.mod(y3)

	z3 := c.mod(new(big.Int).Lsh(new(big.Int).Mul(p.y, p.z), 1))
	return jacobian{x3, y3, z3}
}

// jacobianAdd uses the add-2007-bl formulas, falling back to doubling when
// both inputs are the same point.
func (c *Curve) jacobianAdd(p, q jacobian) jacobian {
	if p.z.Sign() == 0 {
		return q
	}
	if q.z.Sign() == 0 {
		return p
	}

	z1z1 := c.mod(new(big.Int).Mul(p.z, p.z))
	z2z2 := c.mod(new(big.Int).Mul(q.z, q.z))
	u1 := c.mod(new(big.Int).Mul(p.x, z2z2))
	u2 := c.mod(new(big.Int).Mul(q.x, z1z1))
	s1 := c.mod(new(big.Int).Mul(p.y, new(big.Int).Mul(q.z, z2z2)))
	s2 := c.mod(new(big.Int).Mul(q.y, new(big.Int).Mul(p.z, z1z1)))

	if u1.Cmp(u2) == 0 {
		if s1.Cmp(s2) == 0 {
			return c.jacobianDouble(p)
		}
		return jacobian{new(big.Int), new(big.Int), new(big.Int)}
	}

	h := c.mod(new(big.Int).Sub(u2, u1))
	r := c.mod(new(big.Int).Sub(s2, s1))
	hh := c.mod(new(big.Int).Mul(h, h))
	hhh := c.mod(new(big.Int).Mul(h, hh))
	v := c.mod(new(big.Int).Mul(u1, hh))

	x3 := new(big.Int).Mul(r, r)
	x3.Sub(x3, hhh)
	x3.Sub(x3, new(big.Int).Lsh(v, 1))
	c.mod(x3)

	y3 := new(big.Int).Mul(r, new(big.Int).Sub(v, x3))
	y3.Sub(y3, new(big.Int).Mul(s1, hhh))
	c.mod(y3)

	z3 := c.mod(new(big.Int).Mul(new(big.Int).Mul(p.z, q.z), h))
	return jacobian{x3, y3, z3}
}

func (c *Curve) fromJacobian(p jacobian) Point {
	if p.z.Sign() == 0 {
		return c.Identity()
	}
	zInv := new(big.Int).ModInverse(p.z, c.params.P)
	zInv2 := c.mod(new(big.Int).Mul(zInv, zInv))
	x := c.mod(new(big.Int).Mul(p.x, zInv2))
	y := c.mod(new(big.Int).Mul(p.y, c.mod(new(big.Int).Mul(zInv2, zInv))))
	return c.affine(x, y)
}
