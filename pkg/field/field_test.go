package field_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faustbrian/shamir/pkg/field"
)

func testField(t *testing.T) field.Field {
	t.Helper()
	p, _ := new(big.Int).SetString("340282366920938463463374607431768211297", 10) // 2^128-159
	f, err := field.New(p)
	require.NoError(t, err)
	return f
}

func TestNewRejectsNonPrime(t *testing.T) {
	_, err := field.New(big.NewInt(100))
	assert.ErrorIs(t, err, field.ErrNotPrime)
}

func TestNewRejectsNil(t *testing.T) {
	_, err := field.New(nil)
	assert.Error(t, err)
}

func TestAddSubMul(t *testing.T) {
	f := testField(t)
	a := big.NewInt(12345)
	b := big.NewInt(67890)

	sum := f.Add(a, b)
	assert.Equal(t, big.NewInt(80235), sum)

	diff := f.Sub(sum, b)
	assert.Equal(t, a, diff)

	prod := f.Mul(a, b)
	assert.Equal(t, new(big.Int).Mul(a, b), prod) // small enough to not wrap
}

func TestSubNegativeWrapsIntoRange(t *testing.T) {
	f := testField(t)
	diff := f.Sub(big.NewInt(1), big.NewInt(2))
	assert.True(t, diff.Sign() >= 0)
	assert.Equal(t, f.Sub(big.NewInt(0), big.NewInt(1)), diff)
}

func TestSubEqualsAddNeg(t *testing.T) {
	f := testField(t)
	a := big.NewInt(555)
	b := big.NewInt(9001)
	assert.Equal(t, f.Sub(a, b), f.Add(a, f.Neg(b)))
}

func TestMulInvIsOne(t *testing.T) {
	f := testField(t)
	for _, v := range []int64{1, 2, 3, 1000, 99999} {
		a := big.NewInt(v)
		inv, err := f.Inv(a)
		require.NoError(t, err)
		assert.Equal(t, big.NewInt(1), f.Mul(a, inv))
	}
}

func TestInvZeroFails(t *testing.T) {
	f := testField(t)
	_, err := f.Inv(big.NewInt(0))
	assert.ErrorIs(t, err, field.ErrNoModularInverse)

	// a value congruent to zero mod p (i.e. p itself) must also fail.
	_, err = f.Inv(f.Prime())
	assert.ErrorIs(t, err, field.ErrNoModularInverse)
}

func TestDiv(t *testing.T) {
	f := testField(t)
	a := big.NewInt(42)
	b := big.NewInt(7)
	q, err := f.Div(a, b)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(6), q)

	_, err = f.Div(a, big.NewInt(0))
	assert.ErrorIs(t, err, field.ErrNoModularInverse)
}

func TestCommutativity(t *testing.T) {
	f := testField(t)
	a := big.NewInt(123456789)
	b := big.NewInt(987654321)
	assert.Equal(t, f.Add(a, b), f.Add(b, a))
	assert.Equal(t, f.Mul(a, b), f.Mul(b, a))
}

func TestAssociativity(t *testing.T) {
	f := testField(t)
	a, b, c := big.NewInt(11), big.NewInt(22), big.NewInt(33)
	assert.Equal(t, f.Add(f.Add(a, b), c), f.Add(a, f.Add(b, c)))
	assert.Equal(t, f.Mul(f.Mul(a, b), c), f.Mul(a, f.Mul(b, c)))
}
