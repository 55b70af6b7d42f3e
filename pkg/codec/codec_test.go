package codec_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faustbrian/shamir/pkg/codec"
)

func TestChunkSizeMatchesBitLength(t *testing.T) {
	p, _ := new(big.Int).SetString("340282366920938463463374607431768211297", 10) // 2^128-159
	size, err := codec.ChunkSize(p)
	require.NoError(t, err)
	assert.Equal(t, 15, size)
}

func TestChunkSizeRejectsTinyPrime(t *testing.T) {
	_, err := codec.ChunkSize(big.NewInt(2))
	assert.ErrorIs(t, err, codec.ErrChunkSizeTooLarge)
}

func TestChunkSecretEmpty(t *testing.T) {
	chunks := codec.ChunkSecret(nil, 30)
	require.Len(t, chunks, 1)
	assert.Empty(t, chunks[0])
}

func TestChunkSecretSplitsEvenly(t *testing.T) {
	secret := make([]byte, 90)
	chunks := codec.ChunkSecret(secret, 30)
	assert.Len(t, chunks, 3)
	for _, c := range chunks {
		assert.Len(t, c, 30)
	}
}

func TestChunkSecretShortLastChunk(t *testing.T) {
	secret := make([]byte, 65)
	chunks := codec.ChunkSecret(secret, 30)
	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 30)
	assert.Len(t, chunks[1], 30)
	assert.Len(t, chunks[2], 5)
}

func TestChunkToFieldBigEndian(t *testing.T) {
	chunk := []byte{0x01, 0x02, 0x03}
	v := codec.ChunkToField(chunk)
	assert.Equal(t, big.NewInt(0x010203), v)
}

func TestChunkToFieldEmptyIsZero(t *testing.T) {
	assert.Equal(t, big.NewInt(0), codec.ChunkToField(nil))
}

func TestFieldToChunkPadsToLength(t *testing.T) {
	v := big.NewInt(0x0001)
	got := codec.FieldToChunk(v, 4)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x01}, got)
}

func TestFieldToChunkZeroLengthIsEmpty(t *testing.T) {
	got := codec.FieldToChunk(big.NewInt(0), 0)
	assert.Empty(t, got)
}

func TestFieldToChunkZeroPadsToLength(t *testing.T) {
	got := codec.FieldToChunk(big.NewInt(0), 3)
	assert.Equal(t, []byte{0x00, 0x00, 0x00}, got)
}

func TestChunkRoundTripWithLeadingZero(t *testing.T) {
	original := []byte{0x00, 0x2a, 0xff}
	v := codec.ChunkToField(original)
	got := codec.FieldToChunk(v, len(original))
	assert.Equal(t, original, got)
}
