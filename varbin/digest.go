package varbin

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-farm"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// MD5 returns the 16-byte MD5 digest of b.
func MD5(b []byte) []byte {
	s := md5.Sum(b)
	return s[:]
}

// SHA1 returns the 20-byte SHA-1 digest of b.
func SHA1(b []byte) []byte {
	s := sha1.Sum(b)
	return s[:]
}

// SHA256 returns the 32-byte SHA-256 digest of b.
func SHA256(b []byte) []byte {
	s := sha256.Sum256(b)
	return s[:]
}

// SHA512 returns the 64-byte SHA-512 digest of b.
func SHA512(b []byte) []byte {
	s := sha512.Sum512(b)
	return s[:]
}

// XxHash64 returns the XXH64 hash of b with seed 0, as 8 big-endian bytes.
func XxHash64(b []byte) []byte {
	out := make([]byte, 8)
	binary.BigEndian.PutUint64(out, xxhash.Sum64(b))
	return out
}

// SHA3256 returns the 32-byte SHA3-256 digest of b.
func SHA3256(b []byte) []byte {
	s := sha3.Sum256(b)
	return s[:]
}

// BLAKE2b256 returns the 32-byte unkeyed BLAKE2b-256 digest of b.
func BLAKE2b256(b []byte) []byte {
	s := blake2b.Sum256(b)
	return s[:]
}

// BLAKE3 returns the 32-byte BLAKE3 digest of b.
func BLAKE3(b []byte) []byte {
	s := blake3.Sum256(b)
	return s[:]
}

// Murmur3x64128 returns the MurmurHash3 x64 128-bit hash of b with seed 0:
// h1 followed by h2, each big-endian.
func Murmur3x64128(b []byte) []byte {
	h1, h2 := murmur3.Sum128(b)
	out := make([]byte, 16)
	binary.BigEndian.PutUint64(out[:8], h1)
	binary.BigEndian.PutUint64(out[8:], h2)
	return out
}

// FarmFingerprint returns the 64-bit FarmHash fingerprint of b as 8
// big-endian bytes.
func FarmFingerprint(b []byte) []byte {
	out := make([]byte, 8)
	binary.BigEndian.PutUint64(out, farm.Fingerprint64(b))
	return out
}

// Algorithm describes one digest function.
type Algorithm struct {
	Name string
	// Size is the digest length in bytes.
	Size int

	sum func([]byte) []byte
}

// Sum returns the digest of b.
func (a Algorithm) Sum(b []byte) []byte { return a.sum(b) }

var algorithms = []Algorithm{
	{Name: "md5", Size: md5.Size, sum: MD5},
	{Name: "sha1", Size: sha1.Size, sum: SHA1},
	{Name: "sha256", Size: sha256.Size, sum: SHA256},
	{Name: "sha512", Size: sha512.Size, sum: SHA512},
	{Name: "xxhash64", Size: 8, sum: XxHash64},
	{Name: "sha3_256", Size: 32, sum: SHA3256},
	{Name: "blake2b_256", Size: blake2b.Size256, sum: BLAKE2b256},
	{Name: "blake3", Size: 32, sum: BLAKE3},
	{Name: "murmur3_x64_128", Size: 16, sum: Murmur3x64128},
	{Name: "farm_fingerprint", Size: 8, sum: FarmFingerprint},
}

// Algorithms returns the supported digest algorithms in a fixed order.
func Algorithms() []Algorithm {
	return append([]Algorithm(nil), algorithms...)
}

// LookupAlgorithm returns the algorithm registered under name.
func LookupAlgorithm(name string) (Algorithm, bool) {
	for _, a := range algorithms {
		if a.Name == name {
			return a, true
		}
	}
	return Algorithm{}, false
}

// Digest computes the named digest of b.
func Digest(name string, b []byte) ([]byte, error) {
	a, ok := LookupAlgorithm(name)
	if !ok {
		return nil, fmt.Errorf("varbin: unsupported digest algorithm %q", name)
	}
	return a.Sum(b), nil
}
