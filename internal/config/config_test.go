package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahdiidarabi/ecdsa-weierstrass/pkg/curve"
	"github.com/mahdiidarabi/ecdsa-weierstrass/pkg/ecdsa"
)

func TestParseInt(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"23", "23"},
		{" 42 ", "42"},
		{"0x17", "23"},
		{"0X1F", "31"},
		{"ff", "255"},
		{"-5", "-5"},
		{"-0x10", "-16"},
		{"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
			"115792089237316195423570985008687907852837564279074904382605163141518161494337"},
	}
	for _, tt := range tests {
		got, err := ParseInt(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got.String(), tt.in)
	}

	for _, bad := range []string{"", "0x", "-", "12g", "1.5", "0xzz"} {
		_, err := ParseInt(bad)
		assert.Error(t, err, bad)
	}
}

const toyCurves = `
curves:
  - name: mytoy23
    p: 23
    a: 1
    b: 1
    gx: 3
    gy: 10
    n: 28
  - name: hex17
    p: 0x11
    a: 0x2
    b: 0x2
    gx: 0x5
    gy: 0x1
    n: 0x13
`

func TestParseCurves(t *testing.T) {
	set, err := ParseCurves([]byte(toyCurves))
	require.NoError(t, err)
	assert.Equal(t, []string{"hex17", "mytoy23"}, set.Names())

	c, err := set.Lookup("mytoy23")
	require.NoError(t, err)
	assert.Equal(t, "28", c.Order().String())
	assert.True(t, c.ScalarBaseMult(c.Order()).IsIdentity())

	c, err = set.Lookup("hex17")
	require.NoError(t, err)
	assert.Equal(t, "17", c.Field().Modulus().String())

	c, err = set.Lookup("secp256k1")
	require.NoError(t, err)
	assert.Same(t, curve.Secp256k1(), c)

	_, err = set.Lookup("p521")
	assert.ErrorIs(t, err, ErrUnknownCurve)
}

func TestParseCurvesErrors(t *testing.T) {
	tests := []struct {
		name  string
		yaml  string
		curve bool // error wraps curve.ErrInvalidCurveParameters
	}{
		{"syntax", "curves: [", false},
		{"bad integer", "curves:\n  - name: x\n    p: twelve\n", false},
		{"mapping as integer", "curves:\n  - name: x\n    p: {a: 1}\n", false},
		{"missing name", "curves:\n  - p: 23\n", false},
		{"duplicate", "curves:\n  - {name: x, p: 23, a: 1, b: 1, gx: 3, gy: 10, n: 28}\n  - {name: x, p: 23, a: 1, b: 1, gx: 3, gy: 10, n: 28}\n", false},
		{"missing field", "curves:\n  - {name: x, p: 23, a: 1, b: 1, gx: 3, gy: 10}\n", true},
		{"singular", "curves:\n  - {name: x, p: 23, a: 0, b: 0, gx: 1, gy: 1, n: 2}\n", true},
		{"generator off curve", "curves:\n  - {name: x, p: 23, a: 1, b: 1, gx: 3, gy: 11, n: 28}\n", true},
		{"wrong order", "curves:\n  - {name: x, p: 23, a: 1, b: 1, gx: 3, gy: 10, n: 27}\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCurves([]byte(tt.yaml))
			require.Error(t, err)
			if tt.curve {
				assert.ErrorIs(t, err, curve.ErrInvalidCurveParameters)
			}
		})
	}
}

func TestLoadCurves(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curves.yaml")
	require.NoError(t, os.WriteFile(path, []byte(toyCurves), 0o600))

	set, err := LoadCurves(path)
	require.NoError(t, err)
	assert.Len(t, set.Names(), 2)

	_, err = LoadCurves(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNilCurveSet(t *testing.T) {
	var set *CurveSet
	c, err := set.Lookup("toy17")
	require.NoError(t, err)
	assert.Same(t, curve.Toy17(), c)
	assert.Empty(t, set.Names())
}

func TestParseRecords(t *testing.T) {
	scheme := ecdsa.NewScheme(curve.Toy23())
	doc := `
records:
  - message: abc
    r: 18
    s: 23
  - z: 0x5
    r: 0x12
    s: 5
`
	records, err := ParseRecords([]byte(doc), scheme)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "23", records[0].Z.String())
	assert.Equal(t, "18", records[0].R.String())
	assert.Equal(t, "5", records[1].Z.String())
	assert.Equal(t, "18", records[1].R.String())

	_, err = ParseRecords([]byte("records:\n  - message: abc\n    r: 1\n"), scheme)
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "records.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	records, err = LoadRecords(path, scheme)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestParseRecordsNeedsDigestSource(t *testing.T) {
	scheme := ecdsa.NewScheme(curve.Toy23())

	_, err := ParseRecords([]byte("records:\n  - {message: abc, r: 18, s: 23}\n  - {r: 18, s: 5}\n"), scheme)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")

	records, err := ParseRecords([]byte("records:\n  - {message: \"\", r: 18, s: 23}\n"), scheme)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Zero(t, records[0].Z.Cmp(scheme.HashToScalar(nil)))
}
