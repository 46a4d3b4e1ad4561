package ecdsa

import (
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/ecdsa-weierstrass/pkg/curve"
)

func TestNewPrivateKeyRange(t *testing.T) {
	c := curve.Toy17()
	for _, d := range []*big.Int{nil, big.NewInt(0), big.NewInt(-1), big.NewInt(19), big.NewInt(40)} {
		_, err := NewPrivateKey(c, d)
		assert.ErrorIs(t, err, ErrInvalidPrivateKey, "d=%v", d)
	}

	priv, err := NewPrivateKey(c, big.NewInt(18))
	require.NoError(t, err)
	assert.True(t, priv.Public().Point().Equal(c.Neg(c.Generator())))
}

func TestPrivateKeyCopies(t *testing.T) {
	d := big.NewInt(5)
	priv, err := NewPrivateKey(curve.Toy23(), d)
	require.NoError(t, err)

	d.SetInt64(6)
	got := priv.D()
	assert.Equal(t, "5", got.String())

	got.SetInt64(7)
	assert.Equal(t, "5", priv.D().String())
}

func TestPrivateKeyFormattingHidesScalar(t *testing.T) {
	c := curve.Secp256k1()
	d := mustHex(t, "5eedc0de5eedc0de5eedc0de5eedc0de5eedc0de5eedc0de5eedc0de5eedc0de")
	priv, err := NewPrivateKey(c, d)
	require.NoError(t, err)

	for _, out := range []string{
		priv.String(),
		fmt.Sprint(priv),
		fmt.Sprintf("%v", priv),
		fmt.Sprintf("%+v", priv),
		fmt.Sprintf("%#v", priv),
	} {
		assert.False(t, strings.Contains(out, d.String()), out)
		assert.False(t, strings.Contains(out, d.Text(16)), out)
	}
}

func TestNewPublicKey(t *testing.T) {
	c := curve.Toy23()
	pub, err := NewPublicKey(c, big.NewInt(9), big.NewInt(16))
	require.NoError(t, err)
	assert.True(t, pub.IsEqual(mustPrivateKey(t, c, 5).Public()))
	assert.False(t, pub.IsEqual(mustPrivateKey(t, c, 6).Public()))
	assert.False(t, pub.IsEqual(nil))
	assert.Same(t, c, pub.Curve())
	assert.Equal(t, "ecdsa.PublicKey{toy23 (9, 16)}", pub.String())

	_, err = NewPublicKey(c, big.NewInt(9), big.NewInt(15))
	assert.ErrorIs(t, err, ErrInvalidPublicKey)

	_, err = NewPublicKey(c, big.NewInt(32), big.NewInt(16))
	assert.ErrorIs(t, err, ErrInvalidPublicKey)
}
