package curve

import (
	"math/big"

	"github.com/mahdiidarabi/ecdsa-weierstrass/pkg/field"
)

// ScalarMult returns k·p, the k-fold sum p + p + ... + p. k = 0 yields the
// identity. p must be on the curve, otherwise ErrInvalidPoint is returned.
//
// k must not be negative; callers reduce scalars mod N first. A negative k
// panics.
func (c *Curve) ScalarMult(k *big.Int, p Point) (Point, error) {
	if !c.IsOnCurve(p) {
		return Point{}, makeError(ErrInvalidPoint, "cannot multiply a point that is not on the curve")
	}
	return c.scalarMult(k, p), nil
}

// ScalarBaseMult returns k·G. k must not be negative.
func (c *Curve) ScalarBaseMult(k *big.Int) Point {
	return c.scalarMult(k, c.g)
}

// scalarMult is double-and-add-always from the most significant bit. Every
// iteration doubles and adds; the sum is kept or discarded with a
// constant-time select. The iteration count depends only on the bit length
// of N, unless k is wider than N.
func (c *Curve) scalarMult(k *big.Int, p Point) Point {
	if k.Sign() < 0 {
		panic("curve: negative scalar")
	}

	bits := c.params.N.BitLen()
	if kb := k.BitLen(); kb > bits {
		bits = kb
	}

	p = c.normalize(p)
	acc := c.Identity()
	for i := bits - 1; i >= 0; i-- {
		acc = c.add(acc, acc)
		sum := c.add(acc, p)
		acc = c.selectPoint(field.Choice(k.Bit(i)), sum, acc)
	}
	return acc
}
