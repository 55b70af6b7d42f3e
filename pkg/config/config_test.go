package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faustbrian/shamir/pkg/config"
)

func TestNewConfigWithRecognizedPrimes(t *testing.T) {
	cfg, err := config.NewConfig(config.PRIME_128, "hex")
	require.NoError(t, err)
	assert.Equal(t, config.PRIME_128, cfg.Prime())
	assert.Equal(t, "hex", cfg.Encoding())
	assert.True(t, cfg.ChunkSize() > 0)
}

func TestNewConfigRejectsNilPrime(t *testing.T) {
	_, err := config.NewConfig(nil, "base64")
	assert.ErrorIs(t, err, config.ErrInvalidPrime)
}

func TestNewConfigRejectsUnknownEncoding(t *testing.T) {
	_, err := config.NewConfig(config.PRIME_256, "rot13")
	assert.ErrorIs(t, err, config.ErrUnknownEncoding)
}

func TestNewConfigAcceptsMnemonic(t *testing.T) {
	cfg, err := config.NewConfig(config.PRIME_128, "mnemonic")
	require.NoError(t, err)
	assert.Equal(t, "mnemonic", cfg.Encoder().Name())
}

func TestDefaultIsUsable(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "base64", cfg.Encoding())
}

func TestLoadConfigFromYAML(t *testing.T) {
	doc := "prime: \"340282366920938463463374607431768211297\"\nencoding: hex\n"
	cfg, err := config.LoadConfig(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, config.PRIME_128, cfg.Prime())
	assert.Equal(t, "hex", cfg.Encoding())
}

func TestLoadConfigRejectsBadPrime(t *testing.T) {
	doc := "prime: \"not-a-number\"\nencoding: hex\n"
	_, err := config.LoadConfig(strings.NewReader(doc))
	assert.ErrorIs(t, err, config.ErrInvalidPrime)
}
