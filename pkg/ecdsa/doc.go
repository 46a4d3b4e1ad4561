// Package ecdsa implements the Elliptic Curve Digital Signature Algorithm on
// top of the curve package: key generation, signing and verification over any
// validated short Weierstrass curve.
//
// # Quick Start
//
//	scheme := ecdsa.NewScheme(curve.Secp256k1())
//
//	key, err := scheme.GenerateKey()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sig, err := scheme.Sign([]byte("abc"), key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok := scheme.Verify([]byte("abc"), sig, key.Public())
//
// # Collaborators
//
// The hash function and the randomness source are injected:
//
//	scheme := ecdsa.NewScheme(c).
//	    WithHasher(ecdsa.SHA3_256()).
//	    WithRandom(ecdsa.Locked(mySource)).
//	    WithMaxAttempts(16)
//
// Digests are converted to scalars by keeping their leftmost bitlen(N) bits
// and reducing mod N, as in FIPS 186-4 and SEC 1. With SHA-256 on secp256k1
// this makes signatures interoperable with other implementations.
//
// A Scheme holds no mutable state and may be shared between goroutines as
// long as its RandomSource is safe for concurrent use. CryptoRandom is; wrap
// other sources with Locked.
package ecdsa
