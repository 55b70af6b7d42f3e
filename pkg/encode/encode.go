// Package encode provides the bidirectional binary<->text encoders used for
// a share's payload. An Encoder must satisfy decode(encode(b)) = b for all b,
// and must reject any input outside its alphabet rather than silently
// tolerating it.
package encode

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// ErrBase64DecodeFailed is returned by Base64.Decode on malformed input.
var ErrBase64DecodeFailed = errors.New("encode: base64 decode failed")

// ErrHexDecodeFailed is returned by Hex.Decode on malformed input.
var ErrHexDecodeFailed = errors.New("encode: hex decode failed")

// Encoder converts between raw bytes and an opaque text representation
// suitable for embedding in a Share's value field.
type Encoder interface {
	// Name identifies the encoder, used when a Config needs to record which
	// variant produced a given share.
	Name() string
	Encode(data []byte) string
	Decode(s string) ([]byte, error)
}

// base64Encoder implements Encoder using standard (padded) base64.
type base64Encoder struct{}

// Base64 is the standard padded base64 Encoder.
var Base64 Encoder = base64Encoder{}

func (base64Encoder) Name() string { return "base64" }

func (base64Encoder) Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

func (base64Encoder) Decode(s string) ([]byte, error) {
	// The stdlib decoder silently skips '\r' and '\n'; they are not part of
	// the base64 alphabet, so reject them here.
	if strings.ContainsAny(s, "\r\n") {
		return nil, errors.Wrap(ErrBase64DecodeFailed, "newline in input")
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(ErrBase64DecodeFailed, err.Error())
	}
	return b, nil
}

// hexEncoder implements Encoder using lowercase hexadecimal.
type hexEncoder struct{}

// Hex is the lowercase-hex Encoder.
var Hex Encoder = hexEncoder{}

func (hexEncoder) Name() string { return "hex" }

func (hexEncoder) Encode(data []byte) string {
	return hex.EncodeToString(data)
}

func (hexEncoder) Decode(s string) ([]byte, error) {
	// The stdlib decoder also accepts uppercase digits; this encoder's
	// alphabet is lowercase only.
	if strings.ContainsAny(s, "ABCDEF") {
		return nil, errors.Wrap(ErrHexDecodeFailed, "uppercase hex digit in input")
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(ErrHexDecodeFailed, err.Error())
	}
	return b, nil
}

// ByName resolves a recognized encoder name ("base64" or "hex") to its
// Encoder value. Mnemonic is intentionally excluded: it lives in this
// package's mnemonic.go as its own package-level value, since it additionally
// needs the word list and a spell-correction dependency.
func ByName(name string) (Encoder, error) {
	switch name {
	case "base64":
		return Base64, nil
	case "hex":
		return Hex, nil
	default:
		return nil, errors.Errorf("encode: unrecognized encoder %q", name)
	}
}
