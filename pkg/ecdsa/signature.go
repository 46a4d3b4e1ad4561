package ecdsa

import (
	"fmt"
	"math/big"
)

// Signature is an ECDSA signature (r, s), both in (0, N) when produced by
// Sign. Signatures handed to Verify are treated as untrusted.
type Signature struct {
	R *big.Int
	S *big.Int
}

// IsEqual reports whether both signatures hold the same (r, s).
func (sig *Signature) IsEqual(other *Signature) bool {
	if sig == nil || other == nil || sig.R == nil || sig.S == nil || other.R == nil || other.S == nil {
		return false
	}
	return sig.R.Cmp(other.R) == 0 && sig.S.Cmp(other.S) == 0
}

func (sig *Signature) String() string {
	return fmt.Sprintf("(%v, %v)", sig.R, sig.S)
}
