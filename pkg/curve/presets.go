package curve

import (
	"fmt"
	"math/big"
	"sort"
	"sync"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// mustNew is used for the built-in presets, whose parameters are known to
// be valid.
func mustNew(params Params) *Curve {
	c, err := New(params)
	if err != nil {
		panic(fmt.Sprintf("curve: invalid preset %s: %v", params.Name, err))
	}
	return c
}

var (
	secp256k1Once  sync.Once
	secp256k1Curve *Curve

	bn254Once  sync.Once
	bn254Curve *Curve

	toy23Once  sync.Once
	toy23Curve *Curve

	toy17Once  sync.Once
	toy17Curve *Curve
)

// Secp256k1 returns the SEC 2 curve secp256k1 (y² = x³ + 7), with parameters
// taken from the decred secp256k1 package.
func Secp256k1() *Curve {
	secp256k1Once.Do(func() {
		params := secp256k1.S256().Params()
		secp256k1Curve = mustNew(Params{
			Name: "secp256k1",
			P:    params.P,
			A:    new(big.Int),
			B:    params.B,
			Gx:   params.Gx,
			Gy:   params.Gy,
			N:    params.N,
		})
		secp256k1Curve.baseMult = func(k *big.Int) (*big.Int, *big.Int) {
			pub := secp256k1.PrivKeyFromBytes(k.Bytes()).PubKey()
			return pub.X(), pub.Y()
		}
	})
	return secp256k1Curve
}

// BN254 returns the G1 group of the BN254 pairing curve (y² = x³ + 3), with
// parameters taken from gnark-crypto.
func BN254() *Curve {
	bn254Once.Do(func() {
		_, _, g1, _ := bn254.Generators()
		bn254Curve = mustNew(Params{
			Name: "bn254",
			P:    fp.Modulus(),
			A:    new(big.Int),
			B:    big.NewInt(3),
			Gx:   g1.X.BigInt(new(big.Int)),
			Gy:   g1.Y.BigInt(new(big.Int)),
			N:    fr.Modulus(),
		})
		bn254Curve.baseMult = func(k *big.Int) (*big.Int, *big.Int) {
			var r bn254.G1Affine
			r.ScalarMultiplication(&g1, k)
			return r.X.BigInt(new(big.Int)), r.Y.BigInt(new(big.Int))
		}
	})
	return bn254Curve
}

// Toy23 returns y² = x³ + x + 1 over F₂₃ with G = (3, 10). G generates the
// whole group of 28 points. The curve is only suitable for tests and
// demonstrations.
func Toy23() *Curve {
	toy23Once.Do(func() {
		toy23Curve = mustNew(Params{
			Name: "toy23",
			P:    big.NewInt(23),
			A:    big.NewInt(1),
			B:    big.NewInt(1),
			Gx:   big.NewInt(3),
			Gy:   big.NewInt(10),
			N:    big.NewInt(28),
		})
	})
	return toy23Curve
}

// Toy17 returns y² = x³ + 2x + 2 over F₁₇ with G = (5, 1) of prime order 19.
// The curve is only suitable for tests and demonstrations.
func Toy17() *Curve {
	toy17Once.Do(func() {
		toy17Curve = mustNew(Params{
			Name: "toy17",
			P:    big.NewInt(17),
			A:    big.NewInt(2),
			B:    big.NewInt(2),
			Gx:   big.NewInt(5),
			Gy:   big.NewInt(1),
			N:    big.NewInt(19),
		})
	})
	return toy17Curve
}

var presets = map[string]func() *Curve{
	"secp256k1": Secp256k1,
	"bn254":     BN254,
	"toy23":     Toy23,
	"toy17":     Toy17,
}

// Preset returns the named built-in curve.
func Preset(name string) (*Curve, bool) {
	fn, ok := presets[name]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// PresetNames returns the names accepted by Preset, sorted.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
