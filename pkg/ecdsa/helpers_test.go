package ecdsa

import (
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/ecdsa-weierstrass/pkg/curve"
)

// sequenceSource replays a fixed list of scalars, cycling when it runs out.
// It ignores the requested range so tests can feed out-of-range values.
type sequenceSource struct {
	mu     sync.Mutex
	values []int64
	calls  int
}

func newSequence(values ...int64) *sequenceSource {
	return &sequenceSource{values: values}
}

func (s *sequenceSource) RandomScalar(_, _ *big.Int) (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.values[s.calls%len(s.values)]
	s.calls++
	return big.NewInt(v), nil
}

func (s *sequenceSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type failingSource struct{}

func (failingSource) RandomScalar(_, _ *big.Int) (*big.Int, error) {
	return nil, errors.New("entropy pool drained")
}

func mustPrivateKey(t *testing.T, c *curve.Curve, d int64) *PrivateKey {
	t.Helper()
	priv, err := NewPrivateKey(c, big.NewInt(d))
	require.NoError(t, err)
	return priv
}

func mustHex(t *testing.T, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 16)
	require.True(t, ok, "bad hex %q", s)
	return v
}
