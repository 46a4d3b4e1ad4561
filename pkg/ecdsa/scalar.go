package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/cronokirby/safenum"

	"github.com/mahdiidarabi/ecdsa-weierstrass/pkg/field"
)

var one = big.NewInt(1)

// invertScalar returns k⁻¹ mod n. For odd n the inverse is computed in
// constant time with safenum; even orders only occur on toy curves and fall
// back to math/big. The result is checked, so a k sharing a factor with n
// reports field.ErrNotInvertible.
func invertScalar(k, n *big.Int) (*big.Int, error) {
	kr := new(big.Int).Mod(k, n)
	if kr.Sign() == 0 {
		return nil, Error{Err: field.ErrNotInvertible, Description: "zero has no inverse mod the group order"}
	}

	var inv *big.Int
	if n.Bit(0) == 1 {
		m := safenum.ModulusFromNat(new(safenum.Nat).SetBig(n, n.BitLen()))
		kn := new(safenum.Nat).SetBig(kr, n.BitLen())
		invNat := new(safenum.Nat).ModInverse(kn, m)
		if new(safenum.Nat).ModMul(kn, invNat, m).Big().Cmp(one) == 0 {
			inv = invNat.Big()
		}
	} else {
		inv = new(big.Int).ModInverse(kr, n)
	}

	if inv == nil {
		str := fmt.Sprintf("scalar shares a factor with the group order %v", n)
		return nil, Error{Err: field.ErrNotInvertible, Description: str}
	}
	return inv, nil
}

// inOpenRange reports whether 0 < v < n.
func inOpenRange(v, n *big.Int) bool {
	return v != nil && v.Sign() > 0 && v.Cmp(n) < 0
}
