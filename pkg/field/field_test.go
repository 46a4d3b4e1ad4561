package field

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustField(t *testing.T, p int64) *Field {
	t.Helper()
	f, err := New(big.NewInt(p))
	require.NoError(t, err)
	return f
}

func TestNewRejectsBadModulus(t *testing.T) {
	tests := []struct {
		name string
		p    *big.Int
	}{
		{"nil", nil},
		{"two", big.NewInt(2)},
		{"one", big.NewInt(1)},
		{"negative", big.NewInt(-7)},
		{"composite", big.NewInt(21)},
		{"even", big.NewInt(28)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := New(test.p)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidModulus))
		})
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		p    int64
		op   func(f *Field, a, b Element) Element
		a, b int64
		want int64
	}{
		{"add wraps", 11, (*Field).Add, 4, 10, 3},
		{"add no wrap", 11, (*Field).Add, 4, 5, 9},
		{"sub wraps", 31, (*Field).Sub, 4, 10, 25},
		{"sub to zero", 31, (*Field).Sub, 4, 4, 0},
		{"mul", 31, (*Field).Mul, 4, 10, 9},
		{"mul by zero", 31, (*Field).Mul, 4, 0, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := mustField(t, test.p)
			got := test.op(f, f.NewElement(big.NewInt(test.a)), f.NewElement(big.NewInt(test.b)))
			assert.Equal(t, big.NewInt(test.want).String(), got.String())
		})
	}
}

func TestNegation(t *testing.T) {
	f := mustField(t, 31)
	a := f.NewElementUint64(4)
	neg := f.Neg(a)

	assert.Equal(t, "27", neg.String())
	assert.True(t, f.Add(a, neg).IsZero())
	assert.True(t, f.Neg(f.Zero()).IsZero())
}

func TestNewElementReduces(t *testing.T) {
	f := mustField(t, 23)

	assert.Equal(t, "2", f.NewElement(big.NewInt(25)).String())
	assert.Equal(t, "20", f.NewElement(big.NewInt(-3)).String())
	assert.True(t, f.Equal(f.NewElement(big.NewInt(46)), f.Zero()))
}

func TestInverse(t *testing.T) {
	for _, p := range []int64{3, 17, 23, 31, 8191} {
		f := mustField(t, p)
		for a := int64(1); a < p && a < 600; a++ {
			elem := f.NewElement(big.NewInt(a))
			inv, err := f.Inverse(elem)
			require.NoError(t, err)
			require.True(t, f.Equal(f.Mul(elem, inv), f.One()), "p=%d a=%d", p, a)
		}
	}
}

func TestInverseOfZero(t *testing.T) {
	f := mustField(t, 23)

	_, err := f.Inverse(f.Zero())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotInvertible))

	_, err = f.Inverse(f.NewElement(big.NewInt(23)))
	assert.True(t, errors.Is(err, ErrNotInvertible))
}

func TestInverseOrOne(t *testing.T) {
	f := mustField(t, 23)

	assert.True(t, f.Equal(f.InverseOrOne(f.Zero()), f.One()))
	assert.Equal(t, "12", f.InverseOrOne(f.NewElementUint64(2)).String())
}

func TestSelect(t *testing.T) {
	f := mustField(t, 23)
	a := f.NewElementUint64(5)
	b := f.NewElementUint64(9)

	assert.True(t, f.Equal(f.Select(1, a, b), a))
	assert.True(t, f.Equal(f.Select(0, a, b), b))
	// Inputs are left untouched.
	assert.Equal(t, "5", a.String())
	assert.Equal(t, "9", b.String())
}

func TestLargeField(t *testing.T) {
	p, ok := new(big.Int).SetString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F", 16)
	require.True(t, ok)
	f, err := New(p)
	require.NoError(t, err)

	a := f.NewElement(new(big.Int).Sub(p, big.NewInt(1)))
	assert.True(t, f.Add(a, f.One()).IsZero())
	assert.True(t, f.Equal(f.Mul(a, a), f.One()))

	inv, err := f.Inverse(a)
	require.NoError(t, err)
	assert.True(t, f.Equal(inv, a))
	assert.Equal(t, 256, f.BitLen())
}
