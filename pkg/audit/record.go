package audit

import (
	"math/big"

	"github.com/mahdiidarabi/ecdsa-weierstrass/pkg/ecdsa"
)

// Record is a signature together with the digest scalar it was made over.
type Record struct {
	Z *big.Int // hash(message) reduced mod N
	R *big.Int
	S *big.Int
}

// RecordFromSignature builds a Record using the scheme's digest reduction.
func RecordFromSignature(scheme *ecdsa.Scheme, msg []byte, sig *ecdsa.Signature) Record {
	return Record{
		Z: scheme.HashToScalar(msg),
		R: new(big.Int).Set(sig.R),
		S: new(big.Int).Set(sig.S),
	}
}

// Relationship is the nonce relation k₂ = A·k₁ + B.
type Relationship struct {
	A *big.Int
	B *big.Int
}

// Result describes a recovered private key.
type Result struct {
	PrivateKey   *big.Int
	Relationship Relationship
	RecordPair   [2]int // indices into the searched records
	Verified     bool   // d·G matched the supplied public key; otherwise d was confirmed against the pair
	Pattern      string
}
