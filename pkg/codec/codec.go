// Package codec converts between a secret's raw bytes and the sequence of
// field elements the sharing scheme operates on: chunking the secret into
// chunk_size-sized pieces, and mapping each piece to and from a big-endian
// integer.
package codec

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrChunkSizeTooLarge is returned by ChunkSize when the prime is too small
// to safely carry even a one-byte chunk.
var ErrChunkSizeTooLarge = errors.New("codec: prime too small for a usable chunk size")

// ChunkSize returns the largest chunk length (in bytes) such that every
// possible chunk value is guaranteed to be strictly less than p. This is
// floor((bitlen(p)-1)/8): one bit of margin below the prime's own bit
// length, so an all-0xff chunk still reduces to something less than p.
//
// For PRIME_256 (the secp256k1 field prime) this evaluates to 31, but the
// reference implementation this package is modeled on hard-codes 30 to leave
// extra margin. Config.ChunkSize uses this same formula, so shares produced
// under PRIME_256 use 31-byte chunks; no 30-byte setting is provided.
func ChunkSize(p *big.Int) (int, error) {
	size := (p.BitLen() - 1) / 8
	if size < 1 {
		return 0, ErrChunkSizeTooLarge
	}
	return size, nil
}

// ChunkSecret splits secret into consecutive chunkSize-byte slices, the last
// of which may be shorter. An empty secret produces a single empty chunk, so
// that reconstruction of an empty secret still has one chunk's worth of
// machinery to round-trip through.
func ChunkSecret(secret []byte, chunkSize int) [][]byte {
	if len(secret) == 0 {
		return [][]byte{{}}
	}

	var chunks [][]byte
	for i := 0; i < len(secret); i += chunkSize {
		end := i + chunkSize
		if end > len(secret) {
			end = len(secret)
		}
		chunks = append(chunks, secret[i:end])
	}
	return chunks
}

// ChunkToField interprets a chunk's bytes as an unsigned big-endian integer.
// An empty chunk maps to zero.
func ChunkToField(chunk []byte) *big.Int {
	return new(big.Int).SetBytes(chunk)
}

// FieldToChunk converts a reconstructed field element back into a chunk of
// exactly length bytes, left-padding v's big-endian encoding with zeros as
// needed. v=0 with length=0 correctly yields an empty chunk.
//
// A field element alone cannot reveal how many leading zero bytes its
// original chunk had (v=0 is indistinguishable from an empty chunk, and a
// leading 0x00 byte is indistinguishable from no leading byte at all), so
// callers must supply the original chunk length from elsewhere. Combine gets
// it from the secret-length marker Split embeds alongside the chunk values
// (see DESIGN.md's chunk-padding discussion for why: this is the "safe
// reimplementation" policy spec.md's Open Questions describe, traded against
// binary compatibility with the unpadded reference wire format).
func FieldToChunk(v *big.Int, length int) []byte {
	b := v.Bytes()
	if len(b) >= length {
		return b[len(b)-length:]
	}
	padded := make([]byte, length)
	copy(padded[length-len(b):], b)
	return padded
}
