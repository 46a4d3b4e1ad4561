package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/mahdiidarabi/ecdsa-weierstrass/pkg/curve"
)

// PublicKey is the public half B = d·G of a key pair. It may be shared
// freely.
type PublicKey struct {
	curve *curve.Curve
	point curve.Point
}

// NewPublicKey returns the public key (x, y) on c. The point must be on the
// curve, otherwise ErrInvalidPublicKey is returned.
func NewPublicKey(c *curve.Curve, x, y *big.Int) (*PublicKey, error) {
	p, err := c.NewPoint(x, y)
	if err != nil {
		str := fmt.Sprintf("invalid public key: %v", err)
		return nil, makeError(ErrInvalidPublicKey, str)
	}
	return &PublicKey{curve: c, point: p}, nil
}

// Curve returns the curve the key belongs to.
func (k *PublicKey) Curve() *curve.Curve {
	return k.curve
}

// Point returns B.
func (k *PublicKey) Point() curve.Point {
	return k.point
}

// X returns the x-coordinate of B.
func (k *PublicKey) X() *big.Int {
	return k.point.X()
}

// Y returns the y-coordinate of B.
func (k *PublicKey) Y() *big.Int {
	return k.point.Y()
}

// IsEqual reports whether both keys hold the same point.
func (k *PublicKey) IsEqual(other *PublicKey) bool {
	return other != nil && k.point.Equal(other.point)
}

func (k *PublicKey) String() string {
	return fmt.Sprintf("ecdsa.PublicKey{%s %v}", k.curve.Name(), k.point)
}

// PrivateKey is a key pair: the private scalar d in (0, N) and the public
// point d·G. The scalar is never included in formatted output.
type PrivateKey struct {
	pub PublicKey
	d   *big.Int
}

// NewPrivateKey returns the key pair for scalar d on c. d must lie in (0, N).
func NewPrivateKey(c *curve.Curve, d *big.Int) (*PrivateKey, error) {
	if !inOpenRange(d, c.Order()) {
		return nil, makeError(ErrInvalidPrivateKey, "private scalar is not in (0, N)")
	}

	d = new(big.Int).Set(d)
	return &PrivateKey{
		pub: PublicKey{curve: c, point: c.ScalarBaseMult(d)},
		d:   d,
	}, nil
}

// Public returns the public half of the key pair.
func (k *PrivateKey) Public() *PublicKey {
	pub := k.pub
	return &pub
}

// Curve returns the curve the key belongs to.
func (k *PrivateKey) Curve() *curve.Curve {
	return k.pub.curve
}

// D returns a copy of the private scalar. Callers take over responsibility
// for keeping it secret.
func (k *PrivateKey) D() *big.Int {
	return new(big.Int).Set(k.d)
}

func (k *PrivateKey) String() string {
	return fmt.Sprintf("ecdsa.PrivateKey{%s public=%v}", k.pub.curve.Name(), k.pub.point)
}

// GoString keeps %#v from printing d.
func (k *PrivateKey) GoString() string {
	return k.String()
}
