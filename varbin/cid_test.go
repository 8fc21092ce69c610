package varbin

import (
	"bytes"
	"testing"
)

func TestCID_RoundTripToSHA256(t *testing.T) {
	for _, in := range [][]byte{{}, []byte("abc"), allBytes()} {
		got, err := FromCID([]byte(ToCID(in)))
		if err != nil {
			t.Fatalf("FromCID: %v", err)
		}
		if !bytes.Equal(got, SHA256(in)) {
			t.Fatalf("FromCID(ToCID(x)) != SHA256(x)")
		}
	}
}

func TestCID_KnownValue(t *testing.T) {
	if got := ToCID(nil); got != "bafkreihdwdcefgh4dqkjv67uzcmw7ojee6xedzdetojuzjevtenxquvyku" {
		t.Fatalf("ToCID(empty) = %s", got)
	}
}

func TestCID_Malformed(t *testing.T) {
	_, err := FromCID([]byte("not-a-cid"))
	if !IsKind(err, KindMalformedInput) || RuleID(err) != RuleCIDSyntax {
		t.Fatalf("expected MalformedInput/%s, got %v", RuleCIDSyntax, err)
	}
}
