package varbin

import (
	"errors"

	"xdao.co/varbin/cidutil"
)

// ToCID returns the CIDv1 (raw codec, sha2-256 multihash, base32) of b.
func ToCID(b []byte) string {
	return cidutil.CIDv1RawSHA256(b)
}

// FromCID parses a CID and returns the sha2-256 digest it carries.
// FromCID(ToCID(b)) equals SHA256(b).
func FromCID(text []byte) ([]byte, error) {
	d, err := cidutil.SHA256Digest(string(text))
	if err != nil {
		if errors.Is(err, cidutil.ErrUnsupportedHash) {
			return nil, malformed(RuleCIDHash, "cid does not carry a sha2-256 multihash", err)
		}
		return nil, malformed(RuleCIDSyntax, "malformed cid: "+err.Error(), err)
	}
	return d, nil
}
