// Package polynomial represents polynomials over a prime field and
// implements the two operations the secret sharing scheme needs: random
// construction with a fixed constant term, and Horner evaluation.
package polynomial

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/faustbrian/shamir/pkg/field"
)

// ErrRngUnavailable is returned by Random when the platform CSPRNG cannot
// produce the requested bytes.
var ErrRngUnavailable = errors.New("polynomial: rng unavailable")

// ErrInvalidDegree is returned when a degree < 0 is requested.
var ErrInvalidDegree = errors.New("polynomial: degree must be non-negative")

// Polynomial is an ordered sequence of coefficients [a0, a1, ..., ad] over a
// Field, stored in increasing power of x: p(x) = a0 + a1*x + ... + ad*x^d. a0
// is the constant term -- the secret chunk, for polynomials built by Random.
type Polynomial struct {
	field        field.Field
	coefficients []*big.Int
}

// New wraps an existing coefficient slice as a Polynomial over f. The slice
// is retained by reference; callers that need an independent copy should
// clone it first.
func New(f field.Field, coefficients []*big.Int) Polynomial {
	return Polynomial{field: f, coefficients: coefficients}
}

// Degree returns len(coefficients)-1, the highest power of x the polynomial
// carries a (possibly zero) coefficient for.
func (p Polynomial) Degree() int {
	return len(p.coefficients) - 1
}

// ConstantTerm returns a0, the coefficient of x^0.
func (p Polynomial) ConstantTerm() *big.Int {
	return p.coefficients[0]
}

// Coefficients returns a defensive copy of the coefficient slice, in
// increasing power of x.
func (p Polynomial) Coefficients() []*big.Int {
	out := make([]*big.Int, len(p.coefficients))
	for i, c := range p.coefficients {
		out[i] = new(big.Int).Set(c)
	}
	return out
}

// Random builds a degree-d polynomial over f with constant term a0 and
// random non-constant coefficients from the platform CSPRNG.
//
// Fields of at least 128 bits draw 16 random bytes per coefficient,
// interpreted as a big-endian integer and reduced modulo p. Each coefficient
// therefore lies in [0, 2^128): for p > 2^128 the reduction changes nothing
// and coefficients do not cover the whole of [0, p). Smaller fields draw
// ceil(bitlen(p)/8)+8 bytes and reduce modulo p, so the extra 64 bits keep
// the modular bias negligible.
func Random(f field.Field, degree int, a0 *big.Int) (Polynomial, error) {
	if degree < 0 {
		return Polynomial{}, ErrInvalidDegree
	}

	coefficients := make([]*big.Int, degree+1)
	coefficients[0] = new(big.Int).Set(a0)

	numBytes := 16
	if f.BitLen() < 128 {
		numBytes = (f.BitLen()+7)/8 + 8
	}

	buf := make([]byte, numBytes)
	for i := 1; i <= degree; i++ {
		if _, err := io.ReadFull(rand.Reader, buf); err != nil {
			return Polynomial{}, errors.Wrap(ErrRngUnavailable, err.Error())
		}
		coefficients[i] = f.Reduce(new(big.Int).SetBytes(buf))
	}

	return Polynomial{field: f, coefficients: coefficients}, nil
}

// Evaluate computes p(x) mod the polynomial's field prime, via Horner's
// method: evaluating from the highest-degree coefficient down avoids ever
// computing x^k directly.
func (p Polynomial) Evaluate(x *big.Int) *big.Int {
	result := big.NewInt(0)
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		result = p.field.Mul(result, x)
		result = p.field.Add(result, p.coefficients[i])
	}
	return result
}

// ZeroizeNonConstant overwrites every non-constant coefficient in place with
// zero, leaving the constant term (the secret chunk) untouched. Callers that
// are done evaluating a share polynomial should call this before letting it
// go out of scope.
func (p Polynomial) ZeroizeNonConstant() {
	for i := 1; i < len(p.coefficients); i++ {
		p.coefficients[i].SetInt64(0)
	}
}
