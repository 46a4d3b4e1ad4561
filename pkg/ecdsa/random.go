package ecdsa

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"sync"
)

// RandomSource is the randomness collaborator. RandomScalar returns an
// integer uniformly distributed in [lower, upper). Production sources must be
// cryptographically secure.
type RandomSource interface {
	RandomScalar(lower, upper *big.Int) (*big.Int, error)
}

type cryptoRandom struct {
	r io.Reader
}

// CryptoRandom returns a RandomSource reading from r. A nil r selects
// crypto/rand.Reader. The source is safe for concurrent use if r is.
func CryptoRandom(r io.Reader) RandomSource {
	if r == nil {
		r = rand.Reader
	}
	return cryptoRandom{r: r}
}

func (c cryptoRandom) RandomScalar(lower, upper *big.Int) (*big.Int, error) {
	span := new(big.Int).Sub(upper, lower)
	if span.Sign() <= 0 {
		return nil, fmt.Errorf("empty range [%v, %v)", lower, upper)
	}

	v, err := rand.Int(c.r, span)
	if err != nil {
		return nil, err
	}
	return v.Add(v, lower), nil
}

type lockedSource struct {
	mu  sync.Mutex
	src RandomSource
}

// Locked serialises access to src so that a single non-thread-safe generator
// can back a Scheme shared between goroutines.
func Locked(src RandomSource) RandomSource {
	return &lockedSource{src: src}
}

func (l *lockedSource) RandomScalar(lower, upper *big.Int) (*big.Int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.RandomScalar(lower, upper)
}
