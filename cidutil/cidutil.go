package cidutil

import (
	"crypto/sha256"
	"errors"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// ErrUnsupportedHash is returned when a CID's multihash is not a full-length
// sha2-256 digest.
var ErrUnsupportedHash = errors.New("cidutil: multihash is not sha2-256")

// CIDv1RawSHA256 returns a CIDv1 string using the "raw" multicodec
// and a sha2-256 multihash.
//
// It returns "" only if CIDv1RawSHA256CID fails, which multihash.Sum does
// not do for SHA2_256 with the default length.
func CIDv1RawSHA256(data []byte) string {
	id, err := CIDv1RawSHA256CID(data)
	if err != nil {
		return ""
	}
	return id.String()
}

// CIDv1RawSHA256CID returns a CIDv1 (raw + sha2-256) derived from data.
func CIDv1RawSHA256CID(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// SHA256Digest decodes a CID string (v0 or v1, any codec) and returns the
// 32-byte sha2-256 digest from its multihash.
func SHA256Digest(s string) ([]byte, error) {
	id, err := cid.Decode(s)
	if err != nil {
		return nil, err
	}
	dec, err := multihash.Decode(id.Hash())
	if err != nil {
		return nil, err
	}
	if dec.Code != multihash.SHA2_256 || len(dec.Digest) != sha256.Size {
		return nil, ErrUnsupportedHash
	}
	return append([]byte(nil), dec.Digest...), nil
}
