package curve

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPoint(t *testing.T, c *Curve, x, y int64) Point {
	t.Helper()
	p, err := c.NewPoint(big.NewInt(x), big.NewInt(y))
	require.NoError(t, err)
	return p
}

// allPoints enumerates every point of a small curve, identity first.
func allPoints(t *testing.T, c *Curve) []Point {
	t.Helper()
	p := c.Params().P.Int64()
	points := []Point{c.Identity()}
	for x := int64(0); x < p; x++ {
		for y := int64(0); y < p; y++ {
			if pt, err := c.NewPoint(big.NewInt(x), big.NewInt(y)); err == nil {
				points = append(points, pt)
			}
		}
	}
	return points
}

func mustAdd(t *testing.T, c *Curve, p, q Point) Point {
	t.Helper()
	r, err := c.Add(p, q)
	require.NoError(t, err)
	return r
}

func TestAddKnownValues(t *testing.T) {
	c := Toy17()

	got := mustAdd(t, c, mustPoint(t, c, 6, 3), mustPoint(t, c, 5, 1))
	assert.True(t, got.Equal(mustPoint(t, c, 10, 6)), "got %v", got)

	got = mustAdd(t, c, mustPoint(t, c, 5, 16), mustPoint(t, c, 5, 1))
	assert.True(t, got.IsIdentity(), "got %v", got)

	got, err := c.Double(mustPoint(t, c, 5, 1))
	require.NoError(t, err)
	assert.True(t, got.Equal(mustPoint(t, c, 6, 3)), "got %v", got)
}

func TestNewPointRejectsInvalidCoordinates(t *testing.T) {
	c := Toy23()
	tests := []struct {
		name string
		x, y *big.Int
	}{
		{"off curve", big.NewInt(3), big.NewInt(11)},
		{"x out of range", big.NewInt(26), big.NewInt(10)},
		{"y out of range", big.NewInt(3), big.NewInt(33)},
		{"negative", big.NewInt(-20), big.NewInt(10)},
		{"nil", nil, big.NewInt(10)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := c.NewPoint(test.x, test.y)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidPoint))
		})
	}
}

func TestPointOnOtherCurveIsRejected(t *testing.T) {
	toy23 := Toy23()
	foreign := Toy17().Generator()

	assert.False(t, toy23.IsOnCurve(foreign))

	_, err := toy23.Add(toy23.Generator(), foreign)
	assert.True(t, errors.Is(err, ErrInvalidPoint))

	_, err = toy23.Double(foreign)
	assert.True(t, errors.Is(err, ErrInvalidPoint))

	_, err = toy23.ScalarMult(big.NewInt(3), foreign)
	assert.True(t, errors.Is(err, ErrInvalidPoint))

	_, err = toy23.Add(toy23.Generator(), Secp256k1().Generator())
	assert.True(t, errors.Is(err, ErrInvalidPoint))
}

func TestGroupAxioms(t *testing.T) {
	for _, c := range []*Curve{Toy23(), Toy17()} {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			points := allPoints(t, c)
			require.Len(t, points, int(c.Order().Int64()))
			identity := c.Identity()

			for _, p := range points {
				require.True(t, c.IsOnCurve(p))
				require.True(t, mustAdd(t, c, p, identity).Equal(p), "P + O != P for %v", p)
				require.True(t, mustAdd(t, c, identity, p).Equal(p), "O + P != P for %v", p)
				require.True(t, mustAdd(t, c, p, c.Neg(p)).IsIdentity(), "P + (-P) != O for %v", p)

				dbl, err := c.Double(p)
				require.NoError(t, err)
				require.True(t, dbl.Equal(mustAdd(t, c, p, p)))

				for _, q := range points {
					pq := mustAdd(t, c, p, q)
					require.True(t, c.IsOnCurve(pq), "%v + %v left the curve", p, q)
					require.True(t, pq.Equal(mustAdd(t, c, q, p)), "%v + %v not commutative", p, q)
				}
			}
		})
	}
}

func TestAssociativity(t *testing.T) {
	c := Toy23()
	points := allPoints(t, c)

	for _, p := range points {
		for _, q := range points {
			pq := mustAdd(t, c, p, q)
			for _, r := range points {
				left := mustAdd(t, c, pq, r)
				right := mustAdd(t, c, p, mustAdd(t, c, q, r))
				if !left.Equal(right) {
					t.Fatalf("(%v + %v) + %v = %v, want %v", p, q, r, left, right)
				}
			}
		}
	}
}

func TestDoubleSpecialCases(t *testing.T) {
	c := Toy23()

	dbl, err := c.Double(c.Identity())
	require.NoError(t, err)
	assert.True(t, dbl.IsIdentity())

	dbl, err = c.Double(Point{})
	require.NoError(t, err)
	assert.True(t, dbl.IsIdentity())

	// (4, 0) has order two: its tangent is vertical.
	dbl, err = c.Double(mustPoint(t, c, 4, 0))
	require.NoError(t, err)
	assert.True(t, dbl.IsIdentity())
}

func TestNeg(t *testing.T) {
	c := Toy23()

	neg := c.Neg(mustPoint(t, c, 3, 10))
	assert.True(t, neg.Equal(mustPoint(t, c, 3, 13)))
	assert.True(t, c.Neg(c.Identity()).IsIdentity())
	assert.True(t, c.Neg(mustPoint(t, c, 4, 0)).Equal(mustPoint(t, c, 4, 0)))
}

func TestPointAccessors(t *testing.T) {
	c := Toy23()
	p := mustPoint(t, c, 9, 16)

	assert.Equal(t, "9", p.X().String())
	assert.Equal(t, "16", p.Y().String())
	assert.Equal(t, "(9, 16)", p.String())

	assert.Nil(t, c.Identity().X())
	assert.Nil(t, c.Identity().Y())
	assert.Equal(t, "identity", c.Identity().String())
	assert.True(t, Point{}.IsIdentity())
	assert.True(t, Point{}.Equal(c.Identity()))
	assert.False(t, p.Equal(c.Identity()))
}
