package shamir

import (
	"strconv"

	"github.com/pkg/errors"
)

// Configuration/precondition errors.
var (
	// ErrThresholdTooLow is returned when k < 2.
	ErrThresholdTooLow = errors.New("shamir: threshold must be at least 2")

	// ErrThresholdExceedsShares is returned when k > n.
	ErrThresholdExceedsShares = errors.New("shamir: threshold exceeds number of shares")

	// ErrNoSharesProvided is returned when Combine is given an empty set.
	ErrNoSharesProvided = errors.New("shamir: no shares provided")

	// ErrInvalidShareType is returned by a normalize step when an input
	// element is neither a Share nor its string form.
	ErrInvalidShareType = errors.New("shamir: input is neither a Share nor a string")
)

// Integrity/compatibility errors.
var (
	// ErrShareChecksumMismatch is returned when a share's checksum doesn't
	// match a fresh computation over its value.
	ErrShareChecksumMismatch = errors.New("shamir: share checksum mismatch")

	// ErrSharesDifferentThresholds is returned when combined shares don't
	// all carry the same threshold.
	ErrSharesDifferentThresholds = errors.New("shamir: shares have different thresholds")

	// ErrSharesDifferentChecksums is reserved: the reference algorithm never
	// compares one share's checksum against another's, only each share's
	// checksum against its own value. It exists so a stricter caller-side
	// policy has a typed error to raise, per spec.md's explicit allowance.
	ErrSharesDifferentChecksums = errors.New("shamir: shares have different checksums")
)

// InsufficientShares is returned when fewer than the required threshold of
// shares are available to combine.
type InsufficientShares struct {
	Provided int
	Required int
}

func (e InsufficientShares) Error() string {
	return "shamir: insufficient shares: provided " + strconv.Itoa(e.Provided) + ", required " + strconv.Itoa(e.Required)
}

// Format/serialization errors.
var (
	// ErrInvalidShareDataFormat is returned when a decoded share's payload
	// isn't a JSON array.
	ErrInvalidShareDataFormat = errors.New("shamir: decoded share payload is not a JSON array")

	// ErrInvalidChunkDataType is returned when an array element of a
	// decoded share payload isn't a decimal-integer string.
	ErrInvalidChunkDataType = errors.New("shamir: chunk array element is not a decimal string")

	// ErrMismatchedChunkCounts is returned when two shares in the same
	// combine decode to payloads with different chunk counts.
	ErrMismatchedChunkCounts = errors.New("shamir: shares decode to different chunk counts")

	// ErrMismatchedSecretSize is returned when two shares in the same combine
	// carry different secret-size markers.
	ErrMismatchedSecretSize = errors.New("shamir: shares decode to different secret sizes")

	// ErrInvalidSecretSize is returned when a share's secret-size marker is
	// inconsistent with its chunk count (e.g. too small to account for the
	// non-final chunks alone).
	ErrInvalidSecretSize = errors.New("shamir: secret-size marker is inconsistent with chunk count")
)

// Mathematical errors (should not occur with valid inputs).
var (
	// ErrSecretTooLarge is reserved: present in the taxonomy but never
	// raised by this pipeline, since chunking removes any upper bound on
	// secret size.
	ErrSecretTooLarge = errors.New("shamir: secret too large")
)
