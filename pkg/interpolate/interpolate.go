// Package interpolate implements Lagrange interpolation over a prime field,
// used to reconstruct a shared secret (or, with Full, the entire
// sharing polynomial) from a set of (x, y) points.
package interpolate

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/faustbrian/shamir/pkg/field"
	"github.com/faustbrian/shamir/pkg/polynomial"
)

var (
	// ErrInvalidDegree is returned if asked to interpolate a polynomial of
	// degree <= 0.
	ErrInvalidDegree = errors.New("interpolate: degree must be at least one")

	// ErrTooFewPoints is returned if fewer than degree+1 points were given.
	ErrTooFewPoints = errors.New("interpolate: too few points for the requested degree")

	// ErrInconsistentPoints is returned when two points share an x-coordinate
	// but disagree on y.
	ErrInconsistentPoints = errors.New("interpolate: inconsistent points")
)

// Point is an (x, y) pair on the sharing polynomial.
type Point struct {
	X, Y *big.Int
}

// uniquePoints returns the subset of points with distinct X values, and
// reports whether any duplicate X carried a conflicting Y.
func uniquePoints(points []Point) (unique []Point, inconsistent bool) {
	seen := map[string]int{}
	for idx, p := range points {
		key := p.X.String()
		if oldIdx, ok := seen[key]; !ok {
			unique = append(unique, p)
			seen[key] = idx
		} else if points[oldIdx].Y.Cmp(p.Y) != 0 {
			inconsistent = true
		}
	}
	return unique, inconsistent
}

// Const reconstructs only L(0), the constant term of the degree-k polynomial
// passing through the given points, without computing the rest of the
// polynomial. This is the operation Combine uses: it is far cheaper than a
// Full when only the secret itself is needed.
//
//	L(0) = sum_{j=0}^{k} f(x_j) * prod_{m != j} x_m / (x_m - x_j)
func Const(f field.Field, degree int, points ...Point) (*big.Int, error) {
	if degree < 1 {
		return nil, ErrInvalidDegree
	}

	points, inconsistent := uniquePoints(points)
	if inconsistent {
		return nil, ErrInconsistentPoints
	}
	k := degree + 1
	if len(points) < k {
		return nil, ErrTooFewPoints
	}
	points = points[:k]

	l0 := big.NewInt(0)
	for j := range points {
		prod := big.NewInt(1)
		for m := 0; m < k; m++ {
			if m == j {
				continue
			}
			xmxj := f.Sub(points[m].X, points[j].X)
			frac, err := f.Div(points[m].X, xmxj)
			if err != nil {
				return nil, errors.Wrap(err, "compute lagrange basis term")
			}
			prod = f.Mul(prod, frac)
		}
		term := f.Mul(points[j].Y, prod)
		l0 = f.Add(l0, term)
	}
	return l0, nil
}

// copyIntSlice makes a deep copy of a given []int.
func copyIntSlice(s []int) []int { return append([]int{}, s...) }

// combinations computes the set of in-original-order r-length combinations
// of {0, ..., n-1}, without replacement. Matches the semantics of Python's
// itertools.combinations(range(n), r).
func combinations(n, r int) [][]int {
	switch {
	case n < 0, r < 0, r > n:
		return nil
	case r == 0:
		return [][]int{{}}
	}

	idxs := make([]int, r)
	for i := range idxs {
		idxs[i] = i
	}
	combs := [][]int{copyIntSlice(idxs)}
	for {
		var i int
		for i = r - 1; i >= 0; i-- {
			if idxs[i] != i+n-r {
				break
			}
		}
		if i < 0 {
			break
		}
		idxs[i]++
		for j := i + 1; j < r; j++ {
			idxs[j] = idxs[j-1] + 1
		}
		combs = append(combs, copyIntSlice(idxs))
	}
	return combs
}

// Full reconstructs the entire degree-k polynomial passing through the given
// points, not just its constant term. This is what Extend uses: having the
// whole polynomial lets the caller evaluate it at fresh x-coordinates to
// mint shares compatible with the original split.
//
// The classical Lagrange form
//
//	L(x) = sum_j f(x_j) * l_j(x),   l_j(x) = prod_{m!=j} (x - x_m)/(x_j - x_m)
//
// is re-arranged so the numerator's polynomial expansion in x can be read
// off via the combinatorial identity
//
//	(x+a_1)...(x+a_n) = sum_i COMB(a, n-i) x^i
//
// where COMB(a, r) sums the products of every length-r combination of the
// a_*, without replacement.
func Full(f field.Field, degree int, points ...Point) (polynomial.Polynomial, error) {
	if degree < 1 {
		return polynomial.Polynomial{}, ErrInvalidDegree
	}

	points, inconsistent := uniquePoints(points)
	if inconsistent {
		return polynomial.Polynomial{}, ErrInconsistentPoints
	}
	k := degree + 1
	if len(points) < k {
		return polynomial.Polynomial{}, ErrTooFewPoints
	}
	points = points[:k]

	sum := make([]*big.Int, k)
	for i := range sum {
		sum[i] = big.NewInt(0)
	}

	for j := range points {
		prodXjXm := big.NewInt(1)
		for m := 0; m < k; m++ {
			if m == j {
				continue
			}
			xjxm := f.Sub(points[j].X, points[m].X)
			prodXjXm = f.Mul(prodXjXm, xjxm)
		}
		prodXjXmInv, err := f.Inv(prodXjXm)
		if err != nil {
			return polynomial.Polynomial{}, errors.Wrap(err, "compute lagrange denominator")
		}
		scaleFactor := f.Mul(points[j].Y, prodXjXmInv)

		var negXms []*big.Int
		for m := 0; m < k; m++ {
			if m == j {
				continue
			}
			negXms = append(negXms, f.Neg(points[m].X))
		}

		for power := 0; power < k; power++ {
			coeff := big.NewInt(0)
			for _, set := range combinations(len(negXms), (k-1)-power) {
				part := big.NewInt(1)
				for _, idx := range set {
					part = f.Mul(part, negXms[idx])
				}
				coeff = f.Add(coeff, part)
			}
			coeff = f.Mul(coeff, scaleFactor)
			sum[power] = f.Add(sum[power], coeff)
		}
	}

	return polynomial.New(f, sum), nil
}
