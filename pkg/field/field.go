// Package field implements arithmetic in the prime field Z/pZ.
//
// Elements are immutable: every operation allocates and returns a new value,
// so an Element may be shared freely between goroutines. The arithmetic is
// backed by safenum, whose operations run in time that depends only on the
// size of the modulus and not on the values involved.
package field

import (
	"fmt"
	"math/big"

	"github.com/cronokirby/safenum"
)

// Choice is a constant-time boolean: 1 for true, 0 for false.
type Choice = safenum.Choice

// Field is the prime field of integers modulo p.
type Field struct {
	p    *safenum.Modulus
	pBig *big.Int
	bits int
}

// Element is a member of a Field, always held in the range [0, p).
// The zero Element is not usable; obtain elements from a Field.
type Element struct {
	n *safenum.Nat
}

// New returns the field of integers modulo p. The modulus must be an odd
// prime.
func New(p *big.Int) (*Field, error) {
	if p == nil || p.Cmp(big.NewInt(2)) <= 0 || p.Bit(0) == 0 || !p.ProbablyPrime(32) {
		return nil, makeError(ErrInvalidModulus, fmt.Sprintf("modulus %v is not an odd prime", p))
	}

	pCopy := new(big.Int).Set(p)
	return &Field{
		p:    safenum.ModulusFromNat(new(safenum.Nat).SetBig(pCopy, pCopy.BitLen())),
		pBig: pCopy,
		bits: pCopy.BitLen(),
	}, nil
}

// Modulus returns a copy of p.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.pBig)
}

// BitLen returns the bit length of p.
func (f *Field) BitLen() int {
	return f.bits
}

// NewElement returns v mod p. Negative values wrap around using p.
func (f *Field) NewElement(v *big.Int) Element {
	r := new(big.Int).Mod(v, f.pBig)
	return Element{n: new(safenum.Nat).SetBig(r, f.bits)}
}

// NewElementUint64 returns v mod p.
func (f *Field) NewElementUint64(v uint64) Element {
	return f.NewElement(new(big.Int).SetUint64(v))
}

// Zero returns the additive identity.
func (f *Field) Zero() Element {
	return Element{n: new(safenum.Nat).SetBig(new(big.Int), f.bits)}
}

// One returns the multiplicative identity.
func (f *Field) One() Element {
	return f.NewElementUint64(1)
}

// Add returns a + b mod p.
func (f *Field) Add(a, b Element) Element {
	return Element{n: new(safenum.Nat).ModAdd(a.n, b.n, f.p)}
}

// Sub returns a - b mod p. The result is never negative.
func (f *Field) Sub(a, b Element) Element {
	return Element{n: new(safenum.Nat).ModSub(a.n, b.n, f.p)}
}

// Neg returns -a mod p.
func (f *Field) Neg(a Element) Element {
	return f.Sub(f.Zero(), a)
}

// Mul returns a * b mod p.
func (f *Field) Mul(a, b Element) Element {
	return Element{n: new(safenum.Nat).ModMul(a.n, b.n, f.p)}
}

// Square returns a² mod p.
func (f *Field) Square(a Element) Element {
	return f.Mul(a, a)
}

// Inverse returns a⁻¹ mod p. Zero has no inverse and yields ErrNotInvertible.
func (f *Field) Inverse(a Element) (Element, error) {
	if a.n.EqZero() == 1 {
		return Element{}, makeError(ErrNotInvertible, "zero has no multiplicative inverse")
	}
	return f.inverse(a), nil
}

// inverse is Inverse without the zero check. The result for zero is
// meaningless; callers mask it out.
func (f *Field) inverse(a Element) Element {
	return Element{n: new(safenum.Nat).ModInverse(a.n, f.p)}
}

// InverseOrOne returns a⁻¹ mod p, or one when a is zero. It does not branch
// on the value of a.
func (f *Field) InverseOrOne(a Element) Element {
	safe := f.Select(a.EqZero(), f.One(), a)
	return f.inverse(safe)
}

// Equal reports whether a and b hold the same residue.
func (f *Field) Equal(a, b Element) bool {
	return f.Eq(a, b) == 1
}

// Eq is the constant-time form of Equal.
func (f *Field) Eq(a, b Element) Choice {
	return a.Eq(b)
}

// Select returns a when c is 1 and b when c is 0, without branching on c.
func (f *Field) Select(c Choice, a, b Element) Element {
	out := new(safenum.Nat).SetNat(b.n)
	out.CondAssign(c, a.n)
	return Element{n: out}
}

// EqZero returns 1 when e is zero and 0 otherwise.
func (e Element) EqZero() Choice {
	return e.n.EqZero()
}

// Eq returns 1 when e and o hold the same residue and 0 otherwise.
func (e Element) Eq(o Element) Choice {
	return e.n.Eq(o.n)
}

// IsZero reports whether e is zero.
func (e Element) IsZero() bool {
	return e.EqZero() == 1
}

// Big returns e as a new big.Int.
func (e Element) Big() *big.Int {
	return e.n.Big()
}

// String returns the decimal form of e.
func (e Element) String() string {
	if e.n == nil {
		return "<nil>"
	}
	return e.Big().String()
}
