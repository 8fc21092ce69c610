package varbin

import (
	"bytes"
	"encoding/base64"
)

// ToBase64 encodes b with the standard alphabet and '=' padding.
func ToBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// ToBase64URL encodes b with the URL-safe alphabet and '=' padding.
func ToBase64URL(b []byte) string {
	return base64.URLEncoding.EncodeToString(b)
}

// FromBase64 decodes standard Base64.
//
// A final quantum without padding is accepted as if padded. Characters from
// the URL-safe alphabet, line breaks, misplaced padding and non-zero trailing
// bits are rejected.
func FromBase64(text []byte) ([]byte, error) {
	return decodeBase64(base64.StdEncoding, base64.RawStdEncoding, RuleBase64Std, text)
}

// FromBase64URL decodes URL-safe Base64 under the same rules as FromBase64.
// Characters from the standard alphabet ('+', '/') are rejected.
func FromBase64URL(text []byte) ([]byte, error) {
	return decodeBase64(base64.URLEncoding, base64.RawURLEncoding, RuleBase64URL, text)
}

func decodeBase64(padded, raw *base64.Encoding, ruleID string, text []byte) ([]byte, error) {
	// encoding/base64 silently skips CR and LF.
	if i := bytes.IndexAny(text, "\r\n"); i >= 0 {
		return nil, malformed(ruleID, "illegal base64 line break at input byte "+itoa(i), nil)
	}
	enc := padded.Strict()
	if len(text)%4 != 0 && bytes.IndexByte(text, '=') < 0 {
		enc = raw.Strict()
	}
	out := make([]byte, enc.DecodedLen(len(text)))
	n, err := enc.Decode(out, text)
	if err != nil {
		return nil, malformed(ruleID, "malformed base64 input: "+err.Error(), err)
	}
	return out[:n], nil
}
