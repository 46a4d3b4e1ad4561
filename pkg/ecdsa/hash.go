package ecdsa

import (
	"crypto/sha256"
	"hash"
	"math/big"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Hasher is the message digest collaborator.
type Hasher interface {
	// Name returns a short identifier such as "sha256".
	Name() string

	// Size returns the digest length in bytes.
	Size() int

	// Sum returns the digest of msg.
	Sum(msg []byte) []byte
}

type funcHasher struct {
	name string
	size int
	sum  func(msg []byte) []byte
}

func (h funcHasher) Name() string          { return h.name }
func (h funcHasher) Size() int             { return h.size }
func (h funcHasher) Sum(msg []byte) []byte { return h.sum(msg) }

// NewHasher adapts a plain digest function. sum must always return size bytes.
func NewHasher(name string, size int, sum func(msg []byte) []byte) Hasher {
	return funcHasher{name: name, size: size, sum: sum}
}

func fromHash(name string, newHash func() hash.Hash) Hasher {
	return funcHasher{
		name: name,
		size: newHash().Size(),
		sum: func(msg []byte) []byte {
			h := newHash()
			h.Write(msg)
			return h.Sum(nil)
		},
	}
}

// SHA256 returns the SHA-256 hasher.
func SHA256() Hasher {
	return fromHash("sha256", sha256.New)
}

// SHA3_256 returns the SHA3-256 hasher.
func SHA3_256() Hasher {
	return fromHash("sha3-256", sha3.New256)
}

// BLAKE2b256 returns the unkeyed BLAKE2b-256 hasher.
func BLAKE2b256() Hasher {
	return fromHash("blake2b-256", func() hash.Hash {
		// New256 only fails for keys longer than 64 bytes.
		h, _ := blake2b.New256(nil)
		return h
	})
}

// HasherByName returns the built-in hasher with the given name.
func HasherByName(name string) (Hasher, bool) {
	switch name {
	case "sha256":
		return SHA256(), true
	case "sha3-256":
		return SHA3_256(), true
	case "blake2b-256":
		return BLAKE2b256(), true
	}
	return nil, false
}

// HasherNames lists the names accepted by HasherByName.
func HasherNames() []string {
	return []string{"sha256", "sha3-256", "blake2b-256"}
}

// DigestToScalar converts a digest to an integer mod n: the leftmost
// bitlen(n) bits of the digest are kept and the result is reduced mod n.
func DigestToScalar(digest []byte, n *big.Int) *big.Int {
	z := new(big.Int).SetBytes(digest)
	if excess := len(digest)*8 - n.BitLen(); excess > 0 {
		z.Rsh(z, uint(excess))
	}
	return z.Mod(z, n)
}
