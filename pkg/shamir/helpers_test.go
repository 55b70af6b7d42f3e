package shamir_test

import (
	"fmt"
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/faustbrian/shamir/pkg/config"
	"github.com/faustbrian/shamir/pkg/share"
	"github.com/faustbrian/shamir/pkg/shamir"
)

// rng is the global random number generator used for all non-important RNG
// operations in our tests.
var rng = rand.New(rand.NewSource(time.Now().UnixNano()))

// mustRandomBytes returns a slice of random bytes of the given size.
func mustRandomBytes(size int) []byte {
	b := make([]byte, size)
	if _, err := io.ReadFull(rng, b); err != nil {
		panic(err)
	}
	return b
}

// shuffleShares scrambles a slice of shares in place.
func shuffleShares(shares []share.Share) {
	for i := 0; i < len(shares); i++ {
		j := rng.Intn(i + 1)
		shares[i], shares[j] = shares[j], shares[i]
	}
}

// copyShares makes a shallow copy of a share slice, so a test can mutate one
// copy without disturbing the other.
func copyShares(shares []share.Share) []share.Share {
	out := make([]share.Share, len(shares))
	copy(out, shares)
	return out
}

func extendBytes(slices ...[]byte) []byte {
	var out []byte
	for _, s := range slices {
		out = append(out, s...)
	}
	return out
}

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg, err := config.NewConfig(config.PRIME_128, "base64")
	if err != nil {
		t.Fatalf("failed to build test config: %v", err)
	}
	return cfg
}

// secretVectors is the set of vectors used to exercise a variety of
// edge-cases: ordinary strings, a leading zero byte, a zero byte on a chunk
// boundary, a zero in the final chunk, and several random-length blobs.
func secretVectors(t *testing.T, chunkSize int) [][]byte {
	t.Helper()
	return [][]byte{
		[]byte("Hello, world!"),
		[]byte("A slightly longer test string, which spans multiple parts."),
		[]byte("The quick brown fox jumps over the lazy dog."),
		extendBytes([]byte{0x00}, mustRandomBytes(chunkSize)),
		extendBytes(mustRandomBytes(chunkSize), []byte{0x00}, mustRandomBytes(chunkSize)),
		extendBytes(mustRandomBytes(chunkSize), []byte{0x00, 0x01}),
		{},
		mustRandomBytes(chunkSize / 2),
		mustRandomBytes(chunkSize - 1),
		mustRandomBytes(chunkSize*2 + 1),
		mustRandomBytes(chunkSize*8 - 2),
	}
}

// testSplitCombineHelper iterates a range of (k, n) pairs and every vector
// in secretVectors, handing each split's shares to fn.
func testSplitCombineHelper(t *testing.T, cfg config.Config, fn func(t *testing.T, secret []byte, shares []share.Share)) {
	t.Helper()
	const maxK = 6
	for k := 2; k < maxK; k++ {
		for n := k; n < 2*k+1; n++ {
			name := fmt.Sprintf("k=%d_n=%d", k, n)
			t.Run(name, func(t *testing.T) {
				for _, secret := range secretVectors(t, cfg.ChunkSize()) {
					shares, err := shamir.Split(cfg, secret, k, n)
					if err != nil {
						t.Fatalf("split(k=%d, n=%d) failed: %v", k, n, err)
					}
					fn(t, secret, shares)
				}
			})
		}
	}
}

func asItems(shares []share.Share) []interface{} {
	items := make([]interface{}, len(shares))
	for i, s := range shares {
		items[i] = s
	}
	return items
}
