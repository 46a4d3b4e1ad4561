// Package curve implements the group of points on a short Weierstrass curve
// y² = x³ + ax + b over a prime field, together with scalar multiplication.
//
// # Quick Start
//
//	c, err := curve.New(curve.Params{
//	    Name: "toy23",
//	    P:    big.NewInt(23),
//	    A:    big.NewInt(1),
//	    B:    big.NewInt(1),
//	    Gx:   big.NewInt(3),
//	    Gy:   big.NewInt(10),
//	    N:    big.NewInt(28),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	p := c.ScalarBaseMult(big.NewInt(5)) // (9, 16)
//
// Named curves are available through [Secp256k1], [BN254], [Toy23], [Toy17]
// and [Preset].
//
// # Side channels
//
// Point addition uses a single unified affine formula: the tangent and chord
// slopes are both computed and the right one is selected without branching,
// and the identity and cancellation cases are resolved the same way. Scalar
// multiplication performs one doubling and one addition for every bit of a
// fixed-width scalar and selects the result with a constant-time move. Field
// arithmetic is provided by safenum.
package curve
