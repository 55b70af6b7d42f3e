// Package share implements the Share value record: the unit a split
// produces and a combine consumes, along with its canonical string and
// structured (JSON) serializations.
package share

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Sentinel and parameterized errors for share construction and parsing.
var (
	// ErrShareMissingRequiredFields is returned when a structured (map or
	// JSON) share is missing one of index, value, threshold, checksum, or
	// has a field of the wrong type.
	ErrShareMissingRequiredFields = errors.New("share: missing required fields")

	// ErrInvalidShareType is returned by a caller-side normalize step when an
	// input is neither a Share nor a string.
	ErrInvalidShareType = errors.New("share: input is neither a Share nor a string")
)

// ErrInvalidShareFormat is returned by FromString when encoded does not
// parse as a well-formed share string.
type ErrInvalidShareFormat struct {
	Encoded string
}

func (e ErrInvalidShareFormat) Error() string {
	return "share: invalid share format: " + strconv.Quote(e.Encoded)
}

// Share is an immutable record produced by a split and consumed by a
// combine: an index identifying which evaluation point it came from, an
// opaque encoded value payload, the threshold the originating split used,
// and a checksum of value for accidental-corruption detection. There are no
// mutators; every exported constructor returns a fully-formed Share.
type Share struct {
	index     int
	value     string
	threshold int
	checksum  string
}

// New constructs a Share, computing its checksum from value. index must be
// >= 1 and threshold must be >= 2; New does not enforce those invariants
// itself (the Splitter does, before any Share exists). FromString does not
// go through New: it keeps the checksum found in the string and does not
// check index or threshold ranges either.
func New(index int, value string, threshold int) Share {
	return Share{
		index:     index,
		value:     value,
		threshold: threshold,
		checksum:  Checksum(value),
	}
}

// Checksum returns the lowercase-hex SHA-256 digest of value, the same
// computation a Share's checksum field holds.
func Checksum(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}

// Index returns the share's evaluation-point index (x-coordinate).
func (s Share) Index() int { return s.index }

// Value returns the share's opaque encoded payload.
func (s Share) Value() string { return s.value }

// Threshold returns the threshold k of the split that produced this share.
func (s Share) Threshold() int { return s.threshold }

// Checksum returns the share's recorded checksum of its value.
func (s Share) Checksum() string { return s.checksum }

// VerifyChecksum reports whether the share's recorded checksum matches a
// fresh computation over its value, compared in constant time.
func (s Share) VerifyChecksum() bool {
	want := Checksum(s.value)
	return subtle.ConstantTimeCompare([]byte(want), []byte(s.checksum)) == 1
}

// String renders the canonical share string form:
// "<index>:<threshold>:<checksum>:<value>". Since value may itself contain
// colons, this is only ever split back apart with a max-split of 3 from the
// left in FromString.
func (s Share) String() string {
	return strconv.Itoa(s.index) + ":" + strconv.Itoa(s.threshold) + ":" + s.checksum + ":" + s.value
}

// FromString parses the canonical share string form produced by String.
// Exactly four colon-separated fields are required (index, threshold,
// checksum, value), split at most three times from the left so a value
// containing colons is preserved intact. The checksum embedded in the string
// is taken as given -- callers that need to detect tampering call
// VerifyChecksum afterward, matching the Combiner's two-step validate then
// check-compatibility flow.
func FromString(encoded string) (Share, error) {
	parts := strings.SplitN(encoded, ":", 4)
	if len(parts) != 4 {
		return Share{}, ErrInvalidShareFormat{Encoded: encoded}
	}
	index, err := strconv.Atoi(parts[0])
	if err != nil {
		return Share{}, ErrInvalidShareFormat{Encoded: encoded}
	}
	threshold, err := strconv.Atoi(parts[1])
	if err != nil {
		return Share{}, ErrInvalidShareFormat{Encoded: encoded}
	}
	return Share{
		index:     index,
		threshold: threshold,
		checksum:  parts[2],
		value:     parts[3],
	}, nil
}

// wireShare is the JSON object shape: {index, value, threshold, checksum}.
// Extra keys are ignored by encoding/json's default decode behavior.
type wireShare struct {
	Index     *int    `json:"index"`
	Value     *string `json:"value"`
	Threshold *int    `json:"threshold"`
	Checksum  *string `json:"checksum"`
}

// MarshalJSON renders the structured (object) form of a share.
func (s Share) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireShare{
		Index:     &s.index,
		Value:     &s.value,
		Threshold: &s.threshold,
		Checksum:  &s.checksum,
	})
}

// UnmarshalJSON parses the structured (object) form of a share. A missing or
// wrongly-typed field is reported as ErrShareMissingRequiredFields.
func (s *Share) UnmarshalJSON(data []byte) error {
	var ws wireShare
	if err := json.Unmarshal(data, &ws); err != nil {
		return errors.Wrap(ErrShareMissingRequiredFields, err.Error())
	}
	if ws.Index == nil || ws.Value == nil || ws.Threshold == nil || ws.Checksum == nil {
		return ErrShareMissingRequiredFields
	}
	s.index = *ws.Index
	s.value = *ws.Value
	s.threshold = *ws.Threshold
	s.checksum = *ws.Checksum
	return nil
}
