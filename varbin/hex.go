package varbin

import (
	"encoding/hex"
	"errors"
	"fmt"
)

const hexDigits = "0123456789ABCDEF"

// ToHex encodes b as uppercase hexadecimal, two digits per byte with the
// most significant nibble first and no separators.
func ToHex(b []byte) string {
	out := make([]byte, len(b)*2)
	for i, v := range b {
		out[2*i] = hexDigits[v>>4]
		out[2*i+1] = hexDigits[v&0x0f]
	}
	return string(out)
}

// FromHex decodes hexadecimal text. Upper and lower case digits are both
// accepted. Odd-length input and characters outside [0-9a-fA-F] are
// rejected with KindMalformedInput.
func FromHex(text []byte) ([]byte, error) {
	if len(text)%2 != 0 {
		return nil, malformed(RuleHexOddLength, "invalid input length "+itoa(len(text)), hex.ErrLength)
	}
	out := make([]byte, len(text)/2)
	if _, err := hex.Decode(out, text); err != nil {
		var bad hex.InvalidByteError
		if errors.As(err, &bad) {
			return nil, malformed(RuleHexInvalidChar, fmt.Sprintf("invalid hex character: %q", string([]byte{byte(bad)})), err)
		}
		return nil, malformed(RuleHexInvalidChar, "malformed hex input: "+err.Error(), err)
	}
	return out, nil
}
