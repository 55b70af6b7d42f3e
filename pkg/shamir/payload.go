package shamir

import (
	"encoding/json"
	"math/big"
	"strconv"

	"github.com/pkg/errors"
)

// serializePayload renders a share's per-chunk y-values as the canonical
// wire payload: a JSON array of decimal-integer strings, in chunk order,
// with the original secret's byte length prepended as the first element.
// Carrying the length lets Combine pad the final chunk back to its exact
// original size on reconstruction (the "safe reimplementation" policy from
// the chunk-padding discussion in DESIGN.md), at the cost of one extra
// array element versus a bare per-chunk payload.
func serializePayload(secretSize int, ys []*big.Int) ([]byte, error) {
	strs := make([]string, len(ys)+1)
	strs[0] = strconv.Itoa(secretSize)
	for i, y := range ys {
		strs[i+1] = y.String()
	}
	data, err := json.Marshal(strs)
	if err != nil {
		return nil, errors.Wrap(err, "marshal share payload")
	}
	return data, nil
}

// deserializePayload parses a share's decoded value back into the original
// secret's byte length and its per-chunk y-values. A payload that isn't a
// JSON array, or has fewer than one element, is ErrInvalidShareDataFormat;
// an element that isn't a decimal-integer string is ErrInvalidChunkDataType.
func deserializePayload(data []byte) (int, []*big.Int, error) {
	var strs []json.RawMessage
	if err := json.Unmarshal(data, &strs); err != nil {
		return 0, nil, errors.Wrap(ErrInvalidShareDataFormat, err.Error())
	}
	if len(strs) < 1 {
		return 0, nil, errors.Wrap(ErrInvalidShareDataFormat, "payload is missing the secret-size marker")
	}

	values := make([]string, len(strs))
	for i, raw := range strs {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, nil, errors.Wrapf(ErrInvalidChunkDataType, "element %d: %s", i, err.Error())
		}
		values[i] = s
	}

	size, err := strconv.Atoi(values[0])
	if err != nil {
		return 0, nil, errors.Wrapf(ErrInvalidChunkDataType, "secret-size marker %q is not an integer", values[0])
	}

	ys := make([]*big.Int, len(values)-1)
	for i, s := range values[1:] {
		y, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return 0, nil, errors.Wrapf(ErrInvalidChunkDataType, "element %d: %q is not decimal", i+1, s)
		}
		ys[i] = y
	}
	return size, ys, nil
}
