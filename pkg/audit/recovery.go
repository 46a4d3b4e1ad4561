package audit

import (
	"math/big"

	"github.com/mahdiidarabi/ecdsa-weierstrass/pkg/curve"
	"github.com/mahdiidarabi/ecdsa-weierstrass/pkg/ecdsa"
)

// RecoverPrivateKey returns the private key behind two signatures whose
// nonces satisfy k₂ = a·k₁ + b, working mod the group order n:
//
//	d = (a·s₂·z₁ − s₁·z₂ + b·s₁·s₂) / (r₂·s₁ − a·r₁·s₂)
//
// The result is only a candidate; confirm it with KeyMatches.
func RecoverPrivateKey(rec1, rec2 Record, a, b, n *big.Int) (*big.Int, error) {
	for _, v := range []*big.Int{rec1.Z, rec1.R, rec1.S, rec2.Z, rec2.R, rec2.S} {
		if v == nil {
			return nil, makeError(ErrIncompleteRecord, "record is missing z, r or s")
		}
	}

	as2z1 := new(big.Int).Mul(a, rec2.S)
	as2z1.Mul(as2z1, rec1.Z)

	s1z2 := new(big.Int).Mul(rec1.S, rec2.Z)

	bs1s2 := new(big.Int).Mul(b, rec1.S)
	bs1s2.Mul(bs1s2, rec2.S)

	numerator := new(big.Int).Sub(as2z1, s1z2)
	numerator.Add(numerator, bs1s2)
	numerator.Mod(numerator, n)

	r2s1 := new(big.Int).Mul(rec2.R, rec1.S)

	ar1s2 := new(big.Int).Mul(a, rec1.R)
	ar1s2.Mul(ar1s2, rec2.S)

	denominator := new(big.Int).Sub(r2s1, ar1s2)
	denominator.Mod(denominator, n)

	if denominator.Sign() == 0 {
		return nil, makeError(ErrUnrecoverable, "denominator is zero: pair does not determine the key")
	}

	// Public values only, so math/big's variable-time inverse is fine here.
	denominatorInv := new(big.Int).ModInverse(denominator, n)
	if denominatorInv == nil {
		return nil, makeError(ErrUnrecoverable, "denominator is not invertible mod the group order")
	}

	priv := new(big.Int).Mul(denominatorInv, numerator)
	return priv.Mod(priv, n), nil
}

// KeyMatches reports whether d is a valid private scalar on c whose public
// point equals pub. Candidates are public, so the check uses the
// variable-time multiplication.
func KeyMatches(c *curve.Curve, d *big.Int, pub *ecdsa.PublicKey) bool {
	if pub == nil || d == nil || d.Sign() <= 0 || d.Cmp(c.Order()) >= 0 {
		return false
	}
	return c.ScalarBaseMultVartime(d).Equal(pub.Point())
}

// RecordConfirms reports whether d explains rec: the nonce implied by d,
// k = (z + r·d)·s⁻¹ mod N, must satisfy (k·G).x mod N = r. A wrong d passes
// with negligible probability on curves of cryptographic size.
func RecordConfirms(c *curve.Curve, d *big.Int, rec Record) bool {
	n := c.Order()
	if d == nil || rec.Z == nil || rec.R == nil || rec.S == nil || rec.R.Sign() <= 0 || rec.R.Cmp(n) >= 0 {
		return false
	}
	sInv := new(big.Int).ModInverse(new(big.Int).Mod(rec.S, n), n)
	if sInv == nil {
		return false
	}

	k := new(big.Int).Mul(rec.R, d)
	k.Add(k, rec.Z)
	k.Mul(k, sInv)
	k.Mod(k, n)

	R := c.ScalarBaseMultVartime(k)
	if R.IsIdentity() {
		return false
	}
	return new(big.Int).Mod(R.X(), n).Cmp(rec.R) == 0
}
