package curve

import (
	"fmt"
	"math/big"

	"github.com/mahdiidarabi/ecdsa-weierstrass/pkg/field"
)

// Point is an affine point on a curve or the identity (the point at
// infinity). Points are values: operations never modify their inputs.
//
// The zero Point is the identity.
type Point struct {
	x, y   field.Element
	finite field.Choice
}

// Identity returns the neutral element of the group.
func (c *Curve) Identity() Point {
	return Point{x: c.f.Zero(), y: c.f.Zero()}
}

// NewPoint returns the affine point (x, y). Coordinates must lie in [0, p)
// and satisfy the curve equation, otherwise ErrInvalidPoint is returned.
func (c *Curve) NewPoint(x, y *big.Int) (Point, error) {
	p := c.params.P
	if x == nil || y == nil || x.Sign() < 0 || y.Sign() < 0 || x.Cmp(p) >= 0 || y.Cmp(p) >= 0 {
		str := fmt.Sprintf("coordinates (%v, %v) are outside the field", x, y)
		return Point{}, makeError(ErrInvalidPoint, str)
	}

	pt := Point{x: c.f.NewElement(x), y: c.f.NewElement(y), finite: 1}
	if !c.IsOnCurve(pt) {
		str := fmt.Sprintf("point (%v, %v) is not on the curve", x, y)
		return Point{}, makeError(ErrInvalidPoint, str)
	}
	return pt, nil
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return p.finite == 0
}

// X returns the affine x-coordinate, or nil for the identity.
func (p Point) X() *big.Int {
	if p.IsIdentity() {
		return nil
	}
	return p.x.Big()
}

// Y returns the affine y-coordinate, or nil for the identity.
func (p Point) Y() *big.Int {
	if p.IsIdentity() {
		return nil
	}
	return p.y.Big()
}

// Equal reports whether p and q are the same group element.
func (p Point) Equal(q Point) bool {
	if p.IsIdentity() || q.IsIdentity() {
		return p.IsIdentity() == q.IsIdentity()
	}
	return p.x.Eq(q.x)&p.y.Eq(q.y) == 1
}

func (p Point) String() string {
	if p.IsIdentity() {
		return "identity"
	}
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}

// IsOnCurve reports whether p satisfies y² = x³ + ax + b. The identity is
// always on the curve.
func (c *Curve) IsOnCurve(p Point) bool {
	if p.IsIdentity() {
		return true
	}
	if !c.inField(p.x) || !c.inField(p.y) {
		return false
	}
	return c.f.Equal(c.f.Square(p.y), c.polynomial(p.x))
}

// inField reports whether e is a reduced residue of this curve's field.
// Elements from a different field may hold values at or above p.
func (c *Curve) inField(e field.Element) bool {
	return e.Big().Cmp(c.params.P) < 0
}

// Add returns p + q. Both points must be on the curve, otherwise
// ErrInvalidPoint is returned.
func (c *Curve) Add(p, q Point) (Point, error) {
	if !c.IsOnCurve(p) || !c.IsOnCurve(q) {
		return Point{}, makeError(ErrInvalidPoint, "cannot add points that are not on the curve")
	}
	return c.add(p, q), nil
}

// Double returns 2p. The identity doubles to itself.
func (c *Curve) Double(p Point) (Point, error) {
	if !c.IsOnCurve(p) {
		return Point{}, makeError(ErrInvalidPoint, "cannot double a point that is not on the curve")
	}
	return c.add(p, p), nil
}

// Neg returns -p, the point (x, -y). The identity is its own inverse.
func (c *Curve) Neg(p Point) Point {
	p = c.normalize(p)
	return Point{x: p.x, y: c.f.Neg(p.y), finite: p.finite}
}

// normalize gives the zero Point concrete coordinates.
func (c *Curve) normalize(p Point) Point {
	if p.IsIdentity() {
		return c.Identity()
	}
	return p
}

// add is the unified group law. The same sequence of field operations runs
// for every input combination; the doubling, chord, cancellation and identity
// cases are picked out with constant-time selects.
func (c *Curve) add(p, q Point) Point {
	f := c.f
	p, q = c.normalize(p), c.normalize(q)

	dx := f.Sub(q.x, p.x)
	dy := f.Sub(q.y, p.y)
	doubling := dx.EqZero() & dy.EqZero()

	// Tangent slope (3x₁² + a) / 2y₁ when doubling, chord slope dy/dx
	// otherwise.
	x1sq := f.Square(p.x)
	tanNum := f.Add(f.Add(f.Add(x1sq, x1sq), x1sq), c.a)
	tanDen := f.Add(p.y, p.y)
	num := f.Select(doubling, tanNum, dy)
	den := f.Select(doubling, tanDen, dx)

	// A zero denominator means q = -p, including doubling a point of
	// order two.
	vertical := den.EqZero()
	lambda := f.Mul(num, f.InverseOrOne(den))

	x3 := f.Sub(f.Sub(f.Square(lambda), p.x), q.x)
	y3 := f.Sub(f.Mul(lambda, f.Sub(p.x, x3)), p.y)

	zero := f.Zero()
	r := Point{
		x:      f.Select(vertical, zero, x3),
		y:      f.Select(vertical, zero, y3),
		finite: 1 ^ vertical,
	}

	r = c.selectPoint(1^q.finite, p, r)
	r = c.selectPoint(1^p.finite, q, r)
	return r
}

// selectPoint returns a when choice is 1 and b when it is 0.
func (c *Curve) selectPoint(choice field.Choice, a, b Point) Point {
	return Point{
		x:      c.f.Select(choice, a.x, b.x),
		y:      c.f.Select(choice, a.y, b.y),
		finite: (choice & a.finite) | ((1 ^ choice) & b.finite),
	}
}
