package cidutil

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

func TestCIDv1RawSHA256_KnownVectors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "bafkreihdwdcefgh4dqkjv67uzcmw7ojee6xedzdetojuzjevtenxquvyku"},
		{"abc", "bafkreif2pall7dybz7vecqka3zo24irdwabwdi4wc55jznaq75q7eaavvu"},
	}
	for _, tc := range cases {
		if got := CIDv1RawSHA256([]byte(tc.in)); got != tc.want {
			t.Fatalf("CIDv1RawSHA256(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestCIDv1RawSHA256_MatchesCID(t *testing.T) {
	data := []byte("hello world")
	id, err := CIDv1RawSHA256CID(data)
	if err != nil {
		t.Fatalf("CIDv1RawSHA256CID: %v", err)
	}
	if got := CIDv1RawSHA256(data); got != id.String() {
		t.Fatalf("CIDv1RawSHA256 = %s, CID = %s", got, id)
	}
}

func TestSHA256Digest_RoundTrip(t *testing.T) {
	data := []byte("hello world")
	id, err := CIDv1RawSHA256CID(data)
	if err != nil {
		t.Fatalf("CIDv1RawSHA256CID: %v", err)
	}
	got, err := SHA256Digest(id.String())
	if err != nil {
		t.Fatalf("SHA256Digest: %v", err)
	}
	want := sha256.Sum256(data)
	if !bytes.Equal(got, want[:]) {
		t.Fatalf("digest mismatch: got %x want %x", got, want)
	}
}

func TestSHA256Digest_RejectsOtherHashes(t *testing.T) {
	sum, err := multihash.Sum([]byte("abc"), multihash.SHA2_512, -1)
	if err != nil {
		t.Fatalf("multihash.Sum: %v", err)
	}
	id := cid.NewCidV1(cid.Raw, sum)
	if _, err := SHA256Digest(id.String()); !errors.Is(err, ErrUnsupportedHash) {
		t.Fatalf("expected ErrUnsupportedHash, got %v", err)
	}
}

func TestSHA256Digest_RejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "x", "bafy-not-a-cid", "zzzz"} {
		if _, err := SHA256Digest(s); err == nil {
			t.Fatalf("expected error for %q", s)
		}
	}
}
