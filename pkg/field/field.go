// Package field implements prime-field arithmetic over an arbitrary-precision
// modulus. It is the innermost layer of the secret sharing scheme: every
// arithmetic package (polynomial, interpolate) does its modular arithmetic
// through a Field value rather than touching *big.Int directly. codec only
// converts bytes to and from *big.Int and does not use Field.
package field

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrNotPrime is returned by New when the supplied modulus fails a
// probabilistic primality test.
var ErrNotPrime = errors.New("field: modulus is not prime")

// ErrNoModularInverse is returned by Inv (and therefore Div) when asked to
// invert an element congruent to zero modulo p. This should never happen in
// the secret sharing pipeline, since x-coordinates are always non-zero and p
// is prime, but callers that misuse Field directly can still hit it.
var ErrNoModularInverse = errors.New("field: no modular inverse for zero element")

// Field is a value type representing GF(p) for a prime p. The zero value is
// not usable; construct one with New.
type Field struct {
	p *big.Int
}

// New constructs a Field over the given prime modulus p. p is not retained by
// reference from the caller's perspective; New copies it.
func New(p *big.Int) (Field, error) {
	if p == nil || p.Sign() <= 0 {
		return Field{}, errors.New("field: modulus must be a positive integer")
	}
	if !p.ProbablyPrime(30) {
		return Field{}, ErrNotPrime
	}
	return Field{p: new(big.Int).Set(p)}, nil
}

// Prime returns a copy of the field's modulus.
func (f Field) Prime() *big.Int {
	return new(big.Int).Set(f.p)
}

// BitLen returns the bit length of the field's prime.
func (f Field) BitLen() int {
	return f.p.BitLen()
}

// Reduce normalizes any integer (including negative ones) into [0, p-1].
func (f Field) Reduce(a *big.Int) *big.Int {
	r := new(big.Int).Mod(a, f.p)
	return r
}

// Add returns (a + b) mod p.
func (f Field) Add(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, f.p)
}

// Sub returns (a - b) mod p, normalized into [0, p-1].
func (f Field) Sub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, f.p)
}

// Mul returns (a * b) mod p.
func (f Field) Mul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, f.p)
}

// Inv returns the unique a^-1 such that a * a^-1 = 1 (mod p), computed via the
// extended Euclidean algorithm (big.Int.ModInverse). Fails with
// ErrNoModularInverse when a is congruent to zero modulo p.
func (f Field) Inv(a *big.Int) (*big.Int, error) {
	aMod := new(big.Int).Mod(a, f.p)
	if aMod.Sign() == 0 {
		return nil, ErrNoModularInverse
	}
	inv := new(big.Int).ModInverse(aMod, f.p)
	if inv == nil {
		return nil, ErrNoModularInverse
	}
	return inv, nil
}

// Div returns a * b^-1 (mod p).
func (f Field) Div(a, b *big.Int) (*big.Int, error) {
	bInv, err := f.Inv(b)
	if err != nil {
		return nil, errors.Wrap(err, "divide")
	}
	return f.Mul(a, bInv), nil
}

// Neg returns -a mod p, i.e. Sub(0, a).
func (f Field) Neg(a *big.Int) *big.Int {
	return f.Sub(big.NewInt(0), a)
}

// Equal reports whether the field's modulus matches another field's.
func (f Field) Equal(other Field) bool {
	if f.p == nil || other.p == nil {
		return f.p == other.p
	}
	return f.p.Cmp(other.p) == 0
}
