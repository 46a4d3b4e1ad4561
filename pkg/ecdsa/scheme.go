package ecdsa

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/mahdiidarabi/ecdsa-weierstrass/pkg/curve"
)

// DefaultMaxAttempts caps the number of ephemeral scalars Sign draws before
// giving up with ErrEphemeralGenerationExhausted.
const DefaultMaxAttempts = 10

// Scheme binds ECDSA to a curve, a hash function and a randomness source.
type Scheme struct {
	curve       *curve.Curve
	hasher      Hasher
	random      RandomSource
	maxAttempts int
}

// NewScheme returns a scheme over c using SHA-256, crypto/rand and
// DefaultMaxAttempts.
func NewScheme(c *curve.Curve) *Scheme {
	return &Scheme{
		curve:       c,
		hasher:      SHA256(),
		random:      CryptoRandom(nil),
		maxAttempts: DefaultMaxAttempts,
	}
}

// WithHasher sets the message digest.
func (s *Scheme) WithHasher(h Hasher) *Scheme {
	s.hasher = h
	return s
}

// WithRandom sets the randomness source used by GenerateKey and Sign.
func (s *Scheme) WithRandom(r RandomSource) *Scheme {
	s.random = r
	return s
}

// WithMaxAttempts sets the attempt cap for Sign. Values below 1 are raised
// to 1.
func (s *Scheme) WithMaxAttempts(n int) *Scheme {
	if n < 1 {
		n = 1
	}
	s.maxAttempts = n
	return s
}

// Curve returns the curve the scheme operates on.
func (s *Scheme) Curve() *curve.Curve {
	return s.curve
}

// Hasher returns the configured hash function.
func (s *Scheme) Hasher() Hasher {
	return s.hasher
}

// HashToScalar returns h = hash(msg) reduced to an integer mod N.
func (s *Scheme) HashToScalar(msg []byte) *big.Int {
	return DigestToScalar(s.hasher.Sum(msg), s.curve.Order())
}

// randomScalar draws from [1, N) and checks the source kept to that range.
func (s *Scheme) randomScalar() (*big.Int, error) {
	n := s.curve.Order()
	v, err := s.random.RandomScalar(one, n)
	if err != nil {
		str := fmt.Sprintf("randomness source failed: %v", err)
		return nil, Error{Err: ErrRandomnessUnavailable, Description: str}
	}
	if !inOpenRange(v, n) {
		str := fmt.Sprintf("randomness source returned %v outside [1, %v)", v, n)
		return nil, makeError(ErrRandomnessUnavailable, str)
	}
	return v, nil
}

// GenerateKey draws a private scalar d from (0, N) and returns the key pair
// (d, d·G).
func (s *Scheme) GenerateKey() (*PrivateKey, error) {
	d, err := s.randomScalar()
	if err != nil {
		return nil, err
	}
	return NewPrivateKey(s.curve, d)
}

// Sign returns a signature over msg. A fresh ephemeral scalar is drawn until
// one yields r ≠ 0 and an invertible s ≠ 0; after the attempt cap Sign fails
// with ErrEphemeralGenerationExhausted.
func (s *Scheme) Sign(msg []byte, priv *PrivateKey) (*Signature, error) {
	if priv == nil || priv.Curve() != s.curve {
		return nil, makeError(ErrInvalidPrivateKey, "private key does not belong to this curve")
	}

	h := s.HashToScalar(msg)
	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		k, err := s.randomScalar()
		if err != nil {
			return nil, err
		}

		sig, err := s.signWithNonce(h, priv.d, k)
		if errors.Is(err, errDegenerateNonce) {
			continue
		}
		return sig, err
	}

	str := fmt.Sprintf("no usable ephemeral scalar after %d attempts", s.maxAttempts)
	return nil, makeError(ErrEphemeralGenerationExhausted, str)
}

var errDegenerateNonce = errors.New("degenerate ephemeral scalar")

// signWithNonce computes (r, s) for digest scalar h, private scalar d and
// ephemeral scalar k. errDegenerateNonce asks the caller to draw another k.
func (s *Scheme) signWithNonce(h, d, k *big.Int) (*Signature, error) {
	n := s.curve.Order()

	kInv, err := invertScalar(k, n)
	if err != nil {
		return nil, errDegenerateNonce
	}

	R := s.curve.ScalarBaseMult(k)
	if R.IsIdentity() {
		return nil, errDegenerateNonce
	}

	r := new(big.Int).Mod(R.X(), n)
	if r.Sign() == 0 {
		return nil, errDegenerateNonce
	}

	sv := new(big.Int).Mul(d, r)
	sv.Add(sv, h)
	sv.Mul(sv, kInv)
	sv.Mod(sv, n)
	if sv.Sign() == 0 {
		return nil, errDegenerateNonce
	}

	// On composite orders an s sharing a factor with N would never verify.
	if _, err := invertScalar(sv, n); err != nil {
		return nil, errDegenerateNonce
	}

	return &Signature{R: r, S: sv}, nil
}

// CheckSignature returns nil when sig is a valid signature of msg under pub
// and an ErrInvalidSignature describing the first failed check otherwise.
// Every input is treated as untrusted.
func (s *Scheme) CheckSignature(msg []byte, sig *Signature, pub *PublicKey) error {
	n := s.curve.Order()

	if sig == nil {
		return signatureError("missing signature")
	}
	if !inOpenRange(sig.R, n) {
		return signatureError("signature r is not in (0, N)")
	}
	if !inOpenRange(sig.S, n) {
		return signatureError("signature s is not in (0, N)")
	}
	if pub == nil || pub.point.IsIdentity() || !s.curve.IsOnCurve(pub.point) {
		return signatureError("public key is not a point on this curve")
	}

	w, err := invertScalar(sig.S, n)
	if err != nil {
		return signatureError("signature s is not invertible mod N")
	}

	h := s.HashToScalar(msg)
	u1 := new(big.Int).Mul(h, w)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(sig.R, w)
	u2.Mod(u2, n)

	p1 := s.curve.ScalarBaseMult(u1)
	p2, err := s.curve.ScalarMult(u2, pub.point)
	if err != nil {
		return signatureError("public key is not a point on this curve")
	}
	P, err := s.curve.Add(p1, p2)
	if err != nil {
		return signatureError("public key is not a point on this curve")
	}
	if P.IsIdentity() {
		return signatureError("u1·G + u2·B is the identity")
	}

	v := new(big.Int).Mod(P.X(), n)
	if v.Cmp(sig.R) != 0 {
		return signatureError("signature does not match message and public key")
	}
	return nil
}

// Verify reports whether sig is a valid signature of msg under pub.
func (s *Scheme) Verify(msg []byte, sig *Signature, pub *PublicKey) bool {
	return s.CheckSignature(msg, sig, pub) == nil
}
