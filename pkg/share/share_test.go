package share_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/faustbrian/shamir/pkg/share"
)

func TestNewComputesChecksum(t *testing.T) {
	s := share.New(1, "payload", 3)
	assert.Equal(t, share.Checksum("payload"), s.Checksum())
	assert.True(t, s.VerifyChecksum())
}

func TestStringRoundTrip(t *testing.T) {
	s := share.New(7, "abc:def", 4)
	got, err := share.FromString(s.String())
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestStringPreservesColonsInValue(t *testing.T) {
	s := share.New(2, "has:colons:inside", 2)
	encoded := s.String()
	got, err := share.FromString(encoded)
	require.NoError(t, err)
	assert.Equal(t, "has:colons:inside", got.Value())
}

func TestFromStringRejectsWrongFieldCount(t *testing.T) {
	_, err := share.FromString("1:2:3")
	var invalid share.ErrInvalidShareFormat
	assert.ErrorAs(t, err, &invalid)
}

func TestFromStringRejectsNonIntegerIndex(t *testing.T) {
	_, err := share.FromString("x:2:deadbeef:value")
	var invalid share.ErrInvalidShareFormat
	assert.ErrorAs(t, err, &invalid)
}

func TestJSONRoundTrip(t *testing.T) {
	s := share.New(5, "payload-value", 3)
	encoded, err := json.Marshal(s)
	require.NoError(t, err)

	var got share.Share
	require.NoError(t, json.Unmarshal(encoded, &got))
	assert.Equal(t, s, got)
}

func TestJSONMissingFieldFails(t *testing.T) {
	var got share.Share
	err := json.Unmarshal([]byte(`{"index":1,"value":"v"}`), &got)
	assert.ErrorIs(t, err, share.ErrShareMissingRequiredFields)
}

func TestTamperedValueFailsChecksum(t *testing.T) {
	s := share.New(1, "original", 2)
	encoded := s.String()
	tampered := encoded[:len(encoded)-1] + "X" // flip the last byte of value
	got, err := share.FromString(tampered)
	require.NoError(t, err)
	assert.False(t, got.VerifyChecksum())
}
