package ecdsa

import (
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/ecdsa-weierstrass/pkg/curve"
)

func TestHashers(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"sha256", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
		{"sha3-256", "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{"blake2b-256", "bddd813c634239723171ef3fee98579b94964e3bb1cb3e427262c8c068d52319"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, ok := HasherByName(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.name, h.Name())
			assert.Equal(t, 32, h.Size())
			assert.Equal(t, tt.want, hex.EncodeToString(h.Sum([]byte("abc"))))
		})
	}

	_, ok := HasherByName("md5")
	assert.False(t, ok)
}

func TestNewHasher(t *testing.T) {
	h := NewHasher("double-sha256", 32, func(msg []byte) []byte {
		first := sha256.Sum256(msg)
		second := sha256.Sum256(first[:])
		return second[:]
	})
	assert.Equal(t, "double-sha256", h.Name())
	assert.Len(t, h.Sum(nil), h.Size())
}

func TestDigestToScalar(t *testing.T) {
	secpN := curve.Secp256k1().Order()

	tests := []struct {
		name   string
		digest string
		n      *big.Int
		want   string
	}{
		// Leftmost five bits of 0xba are 10111, 0x17.
		{"truncate to order width", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", big.NewInt(28), "17"},
		{"same width reduces", "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff", secpN, "14551231950b75fc4402da1732fc9bebe"},
		{"short digest", "0102", secpN, "102"},
		{"wider digest keeps left half",
			"ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff" +
				"0000000000000000000000000000000000000000000000000000000000000000",
			secpN, "14551231950b75fc4402da1732fc9bebe"},
		{"empty digest", "", secpN, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest, err := hex.DecodeString(tt.digest)
			require.NoError(t, err)
			assert.Equal(t, tt.want, DigestToScalar(digest, tt.n).Text(16))
		})
	}
}
