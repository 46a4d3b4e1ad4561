package curve

import (
	"fmt"
	"math/big"

	"github.com/mahdiidarabi/ecdsa-weierstrass/pkg/field"
)

// Params is the configuration of a curve y² = x³ + ax + b over the prime
// field of order P, with base point G = (Gx, Gy) of order N.
type Params struct {
	Name   string
	P      *big.Int // field modulus
	A, B   *big.Int // curve coefficients
	Gx, Gy *big.Int // base point
	N      *big.Int // order of the base point
}

// Curve is a validated curve configuration. It is immutable and safe for
// concurrent use.
type Curve struct {
	params Params
	f      *field.Field
	a, b   field.Element
	g      Point

	// baseMult is an optional faster k·G for public scalars.
	baseMult baseMultFunc
}

// New validates params and returns the curve they describe. The field modulus
// must be an odd prime, the curve must be non-singular (4a³ + 27b² ≠ 0 mod p),
// and G must be a point on the curve with N·G equal to the identity. N is not
// required to be prime.
func New(params Params) (*Curve, error) {
	params = params.clone()
	if params.P == nil || params.A == nil || params.B == nil ||
		params.Gx == nil || params.Gy == nil || params.N == nil {

		return nil, makeError(ErrInvalidCurveParameters, "curve parameters are incomplete")
	}

	f, err := field.New(params.P)
	if err != nil {
		str := fmt.Sprintf("invalid field modulus: %v", err)
		return nil, makeError(ErrInvalidCurveParameters, str)
	}

	c := &Curve{
		params: params,
		f:      f,
		a:      f.NewElement(params.A),
		b:      f.NewElement(params.B),
	}

	// 4a³ + 27b²
	a3 := f.Mul(f.Square(c.a), c.a)
	disc := f.Add(
		f.Mul(f.NewElementUint64(4), a3),
		f.Mul(f.NewElementUint64(27), f.Square(c.b)),
	)
	if disc.IsZero() {
		return nil, makeError(ErrInvalidCurveParameters, "curve is singular: 4a³ + 27b² = 0 mod p")
	}

	g, err := c.NewPoint(params.Gx, params.Gy)
	if err != nil {
		str := fmt.Sprintf("base point (%v, %v) is not on the curve", params.Gx, params.Gy)
		return nil, makeError(ErrInvalidCurveParameters, str)
	}
	c.g = g

	if params.N.Cmp(big.NewInt(1)) <= 0 {
		str := fmt.Sprintf("base point order %v must be greater than one", params.N)
		return nil, makeError(ErrInvalidCurveParameters, str)
	}
	if !c.scalarMult(params.N, g).IsIdentity() {
		str := fmt.Sprintf("base point does not have order %v", params.N)
		return nil, makeError(ErrInvalidCurveParameters, str)
	}

	return c, nil
}

func (p Params) clone() Params {
	cp := func(v *big.Int) *big.Int {
		if v == nil {
			return nil
		}
		return new(big.Int).Set(v)
	}
	return Params{
		Name: p.Name,
		P:    cp(p.P),
		A:    cp(p.A),
		B:    cp(p.B),
		Gx:   cp(p.Gx),
		Gy:   cp(p.Gy),
		N:    cp(p.N),
	}
}

// Params returns a copy of the curve configuration.
func (c *Curve) Params() Params {
	return c.params.clone()
}

// Name returns the configured curve name.
func (c *Curve) Name() string {
	return c.params.Name
}

// Field returns the coordinate field.
func (c *Curve) Field() *field.Field {
	return c.f
}

// Generator returns the base point G.
func (c *Curve) Generator() Point {
	return c.g
}

// Order returns a copy of N, the order of G.
func (c *Curve) Order() *big.Int {
	return new(big.Int).Set(c.params.N)
}

// polynomial returns x³ + ax + b.
func (c *Curve) polynomial(x field.Element) field.Element {
	f := c.f
	x3 := f.Mul(f.Square(x), x)
	return f.Add(f.Add(x3, f.Mul(c.a, x)), c.b)
}
