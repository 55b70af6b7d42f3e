package encode

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/faustbrian/shamir/internal/wordlist"
)

// ErrMnemonicUnknownWord is returned by Mnemonic.Decode when a word in the
// input is not part of the fixed 256-word alphabet. Suggestion holds the
// closest known word by Levenshtein distance, to help a caller transcribing
// a paper backup spot their own typo.
type ErrMnemonicUnknownWord struct {
	Word       string
	Suggestion string
}

func (e ErrMnemonicUnknownWord) Error() string {
	return fmt.Sprintf("encode: unknown mnemonic word %q, did you mean %q?", e.Word, e.Suggestion)
}

type mnemonicEncoder struct{}

// Mnemonic encodes each byte of the payload as one word from a fixed
// 256-word alphabet, space-separated. See internal/wordlist for why this is
// not the canonical BIP-39 word list.
var Mnemonic Encoder = mnemonicEncoder{}

func (mnemonicEncoder) Name() string { return "mnemonic" }

func (mnemonicEncoder) Encode(data []byte) string {
	words := make([]string, len(data))
	for i, b := range data {
		words[i] = wordlist.Words[b]
	}
	return strings.Join(words, " ")
}

func (mnemonicEncoder) Decode(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	words := strings.Fields(s)
	out := make([]byte, len(words))
	for i, w := range words {
		b, ok := wordlist.Index[w]
		if !ok {
			return nil, ErrMnemonicUnknownWord{Word: w, Suggestion: closestWord(w)}
		}
		out[i] = b
	}
	return out, nil
}

// closestWord finds the wordlist entry with the smallest Levenshtein
// distance to w, used to produce a typo-correction suggestion.
func closestWord(w string) string {
	best := wordlist.Words[0]
	bestDist := levenshtein.ComputeDistance(w, best)
	for _, candidate := range wordlist.Words[1:] {
		d := levenshtein.ComputeDistance(w, candidate)
		if d < bestDist {
			bestDist = d
			best = candidate
		}
	}
	return best
}
