package share

import (
	"strconv"

	"github.com/pkg/errors"
)

// ErrNotFound is returned by Set.Find when no share in the set carries the
// requested index.
type ErrNotFound struct {
	Index int
}

func (e ErrNotFound) Error() string {
	return "share: share not found for index " + strconv.Itoa(e.Index)
}

// ErrDuplicateIndex is returned by NewSet when two shares carry the same
// index; a Set's members must be distinct by definition.
type ErrDuplicateIndex struct {
	Index int
}

func (e ErrDuplicateIndex) Error() string {
	return "share: duplicate share index " + strconv.Itoa(e.Index)
}

// ErrMixedThresholds is returned by NewSet when its members don't all carry
// the same threshold; a Set is only ever compatible shares from one split
// (or a split plus compatible Extend output).
var ErrMixedThresholds = errors.New("share: set members have different thresholds")

// Set is an unordered collection of distinct-index shares, all carrying the
// same threshold. Unlike a plain []Share, constructing a Set checks those
// two invariants once so later lookups don't have to. A Set does not verify
// that its members decode to equal-length payloads -- that check needs the
// Config used to produce them and is done by the combine/extend pipeline
// instead.
type Set struct {
	byIndex map[int]Share
}

// NewSet builds a Set from shares, rejecting duplicate indices or mixed
// thresholds.
func NewSet(shares []Share) (Set, error) {
	byIndex := make(map[int]Share, len(shares))
	var threshold int
	for i, s := range shares {
		if _, exists := byIndex[s.Index()]; exists {
			return Set{}, ErrDuplicateIndex{Index: s.Index()}
		}
		if i == 0 {
			threshold = s.Threshold()
		} else if s.Threshold() != threshold {
			return Set{}, ErrMixedThresholds
		}
		byIndex[s.Index()] = s
	}
	return Set{byIndex: byIndex}, nil
}

// Len returns the number of shares in the set.
func (s Set) Len() int { return len(s.byIndex) }

// Find returns the share with the given index, or ErrNotFound if none is
// present.
func (s Set) Find(index int) (Share, error) {
	share, ok := s.byIndex[index]
	if !ok {
		return Share{}, ErrNotFound{Index: index}
	}
	return share, nil
}

// Slice returns the set's members as a plain slice, in no particular order.
func (s Set) Slice() []Share {
	out := make([]Share, 0, len(s.byIndex))
	for _, share := range s.byIndex {
		out = append(out, share)
	}
	return out
}

// ForDistribution returns the set's members as a map keyed by index. Go's
// map iteration order is randomized per-iteration by the runtime, which is
// exactly the "implementation-defined random permutation, preserving share
// identity" a caller handing shares out to different holders wants: the same
// underlying data, without favoring any fixed index-1-first ordering.
func (s Set) ForDistribution() map[int]Share {
	out := make(map[int]Share, len(s.byIndex))
	for index, share := range s.byIndex {
		out[index] = share
	}
	return out
}
