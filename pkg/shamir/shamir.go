// Package shamir implements Shamir Secret Sharing for arbitrary blobs of
// data. It uses modular arithmetic over a configurable prime field; the
// prime and the chosen text encoding live in a Config, held by a Manager.
// Each chunk of the secret uses its own polynomial. The secret's length is
// not kept secret (the number of chunks is visible in every share's
// payload); callers that need to hide it should pad the secret before
// calling Split.
package shamir

import (
	"crypto/rand"
	"crypto/subtle"
	"math/big"

	"github.com/pkg/errors"

	"github.com/faustbrian/shamir/pkg/codec"
	"github.com/faustbrian/shamir/pkg/config"
	"github.com/faustbrian/shamir/pkg/field"
	"github.com/faustbrian/shamir/pkg/interpolate"
	"github.com/faustbrian/shamir/pkg/polynomial"
	"github.com/faustbrian/shamir/pkg/share"
)

// Split constructs a (k, n) threshold scheme over secret under cfg, and
// produces n Shares of which any k reconstruct secret exactly.
func Split(cfg config.Config, secret []byte, k, n int) ([]share.Share, error) {
	if k < 2 {
		return nil, ErrThresholdTooLow
	}
	if k > n {
		return nil, ErrThresholdExceedsShares
	}

	f, err := field.New(cfg.Prime())
	if err != nil {
		return nil, errors.Wrap(err, "construct field")
	}

	chunks := codec.ChunkSecret(secret, cfg.ChunkSize())

	// Each chunk gets its own random polynomial, with the chunk's field
	// value as the constant term.
	polys := make([]polynomial.Polynomial, len(chunks))
	for i, chunk := range chunks {
		a0 := codec.ChunkToField(chunk)
		poly, err := polynomial.Random(f, k-1, a0)
		if err != nil {
			return nil, errors.Wrapf(err, "generate polynomial for chunk %d", i)
		}
		polys[i] = poly
	}
	defer func() {
		for _, poly := range polys {
			poly.ZeroizeNonConstant()
		}
	}()

	shares := make([]share.Share, n)
	for i := 1; i <= n; i++ {
		x := big.NewInt(int64(i))
		ys := make([]*big.Int, len(polys))
		for c, poly := range polys {
			ys[c] = poly.Evaluate(x)
		}

		payload, err := serializePayload(len(secret), ys)
		if err != nil {
			return nil, errors.Wrapf(err, "serialize share %d payload", i)
		}
		value := cfg.Encoder().Encode(payload)
		shares[i-1] = share.New(i, value, k)
	}
	return shares, nil
}

// normalizeShares converts a mixed slice of share.Share and string elements
// into a uniform []share.Share, rejecting any other element type.
func normalizeShares(items []interface{}) ([]share.Share, error) {
	out := make([]share.Share, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case share.Share:
			out[i] = v
		case string:
			s, err := share.FromString(v)
			if err != nil {
				return nil, err
			}
			out[i] = s
		default:
			return nil, ErrInvalidShareType
		}
	}
	return out, nil
}

// validateShares runs the Combiner's precondition checks: non-empty,
// checksums hold, and every share agrees on threshold.
func validateShares(shares []share.Share) error {
	if len(shares) == 0 {
		return ErrNoSharesProvided
	}
	threshold := shares[0].Threshold()
	for _, s := range shares {
		want := share.Checksum(s.Value())
		if subtle.ConstantTimeCompare([]byte(want), []byte(s.Checksum())) != 1 {
			return ErrShareChecksumMismatch
		}
		if s.Threshold() != threshold {
			return ErrSharesDifferentThresholds
		}
	}
	return nil
}

// decodeChunkedPoints decodes every share's payload, checks they all agree
// on the original secret's size and chunk count, and groups the per-chunk
// y-values into one []interpolate.Point slice per chunk index, ready for
// interpolation.
func decodeChunkedPoints(cfg config.Config, shares []share.Share) (int, [][]interpolate.Point, error) {
	decoded := make([][]*big.Int, len(shares))
	sizes := make([]int, len(shares))
	for i, s := range shares {
		raw, err := cfg.Encoder().Decode(s.Value())
		if err != nil {
			return 0, nil, errors.Wrapf(err, "decode share %d value", s.Index())
		}
		size, ys, err := deserializePayload(raw)
		if err != nil {
			return 0, nil, err
		}
		decoded[i] = ys
		sizes[i] = size
	}

	secretSize := sizes[0]
	m := len(decoded[0])
	for i, ys := range decoded {
		if len(ys) != m {
			return 0, nil, ErrMismatchedChunkCounts
		}
		if sizes[i] != secretSize {
			return 0, nil, ErrMismatchedSecretSize
		}
	}

	chunkedPoints := make([][]interpolate.Point, m)
	for c := range chunkedPoints {
		points := make([]interpolate.Point, len(shares))
		for i, s := range shares {
			points[i] = interpolate.Point{X: big.NewInt(int64(s.Index())), Y: decoded[i][c]}
		}
		chunkedPoints[c] = points
	}
	return secretSize, chunkedPoints, nil
}

// chunkLength returns the original byte length of chunk index c out of m
// total chunks reconstructing a secretSize-byte secret: chunkSize for every
// chunk but the last, and the remainder for the last.
func chunkLength(secretSize, chunkSize, m, c int) int {
	if c < m-1 {
		return chunkSize
	}
	return secretSize - (m-1)*chunkSize
}

// Combine reconstructs the secret from the given items, each of which must
// be a share.Share or its canonical string form. Combine accepts more than
// the minimum threshold of shares: every share is checksum-verified and
// decoded, but only the first k shares with distinct indices enter the
// interpolation; the remaining shares do not affect the result. The result
// is the same regardless of which >= k correct shares from the same split
// are given.
func Combine(cfg config.Config, items ...interface{}) ([]byte, error) {
	shares, err := normalizeShares(items)
	if err != nil {
		return nil, err
	}
	if err := validateShares(shares); err != nil {
		return nil, err
	}

	k := shares[0].Threshold()
	if len(shares) < k {
		return nil, InsufficientShares{Provided: len(shares), Required: k}
	}

	f, err := field.New(cfg.Prime())
	if err != nil {
		return nil, errors.Wrap(err, "construct field")
	}

	secretSize, chunkedPoints, err := decodeChunkedPoints(cfg, shares)
	if err != nil {
		return nil, err
	}
	m := len(chunkedPoints)

	secret := make([]byte, 0, secretSize)
	for c, points := range chunkedPoints {
		y, err := interpolate.Const(f, k-1, points...)
		if err != nil {
			return nil, errors.Wrapf(err, "interpolate chunk %d", c)
		}
		length := chunkLength(secretSize, cfg.ChunkSize(), m, c)
		if length < 0 {
			return nil, ErrInvalidSecretSize
		}
		secret = append(secret, codec.FieldToChunk(y, length)...)
	}
	return secret, nil
}

// Extend reconstructs the full per-chunk polynomials from the given shares
// and evaluates them at `additional` fresh random x-coordinates, minting new
// shares compatible with the original split without exposing the secret
// itself to the caller. additional new shares are returned; the x-values
// used are not limited by, or related to, the original split's n.
func Extend(cfg config.Config, additional int, items ...interface{}) ([]share.Share, error) {
	shares, err := normalizeShares(items)
	if err != nil {
		return nil, err
	}
	if err := validateShares(shares); err != nil {
		return nil, err
	}

	k := shares[0].Threshold()
	if len(shares) < k {
		return nil, InsufficientShares{Provided: len(shares), Required: k}
	}

	f, err := field.New(cfg.Prime())
	if err != nil {
		return nil, errors.Wrap(err, "construct field")
	}

	secretSize, chunkedPoints, err := decodeChunkedPoints(cfg, shares)
	if err != nil {
		return nil, err
	}

	polys := make([]polynomial.Polynomial, len(chunkedPoints))
	for c, points := range chunkedPoints {
		poly, err := interpolate.Full(f, k-1, points...)
		if err != nil {
			return nil, errors.Wrapf(err, "reconstruct polynomial for chunk %d", c)
		}
		polys[c] = poly
	}

	existing := map[int64]bool{}
	for _, s := range shares {
		existing[int64(s.Index())] = true
	}

	// Share.Index is a plain int (the x-coordinate), so fresh x-coordinates
	// must fit in one even though the field prime can be arbitrarily large.
	// Sample from [1, bound) where bound is the smaller of the field prime
	// and 2^62, leaving collisions with Split's small 1..n indices about as
	// likely as any other pair of draws from the same bounded range.
	bound := new(big.Int).Lsh(big.NewInt(1), 62)
	if cfg.Prime().Cmp(bound) < 0 {
		bound = cfg.Prime()
	}

	span := new(big.Int).Sub(bound, big.NewInt(1))

	newShares := make([]share.Share, 0, additional)
	for len(newShares) < additional {
		x, err := rand.Int(rand.Reader, span)
		if err != nil {
			return nil, errors.Wrap(err, "generate fresh x-coordinate")
		}
		x.Add(x, big.NewInt(1)) // shift [0, bound-1) to [1, bound)
		if existing[x.Int64()] {
			continue
		}
		existing[x.Int64()] = true

		ys := make([]*big.Int, len(polys))
		for c, poly := range polys {
			ys[c] = poly.Evaluate(x)
		}
		payload, err := serializePayload(secretSize, ys)
		if err != nil {
			return nil, errors.Wrap(err, "serialize extended share payload")
		}
		value := cfg.Encoder().Encode(payload)
		newShares = append(newShares, share.New(int(x.Int64()), value, k))
	}
	return newShares, nil
}
