// Package functest provides a conformance suite for anything that evaluates
// the builtin scalar catalog, in process or over a transport.
package functest

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"xdao.co/varbin/function"
	"xdao.co/varbin/model"
	"xdao.co/varbin/varbin"
)

// Invoker evaluates a named scalar.
type Invoker interface {
	Invoke(name string, arg function.Value) (function.Value, error)
}

// NewInvoker constructs a fresh Invoker for a test.
type NewInvoker func(t *testing.T) Invoker

func RunConformance(t *testing.T, newInvoker NewInvoker) {
	t.Helper()

	samples := [][]byte{
		{},
		{0x00},
		{0xfb, 0xff, 0xfe},
		[]byte("hello world"),
		seq(300),
	}

	t.Run("RoundTrips", func(t *testing.T) {
		inv := newInvoker(t)
		pairs := [][2]string{
			{"to_base64", "from_base64"},
			{"to_base64url", "from_base64url"},
			{"to_hex", "from_hex"},
		}
		for _, p := range pairs {
			for _, x := range samples {
				enc := mustInvoke(t, inv, p[0], function.Varbinary(x))
				if enc.Type != function.TypeVarchar {
					t.Fatalf("%s returned %s", p[0], enc.Type)
				}
				dec := mustInvoke(t, inv, p[1], enc)
				if !bytes.Equal(dec.Bytes, x) {
					t.Fatalf("%s(%s(%x)) = %x", p[1], p[0], x, dec.Bytes)
				}
			}
		}
		for _, v := range []int64{0, 1, -1, 1 << 62, -1 << 63} {
			enc := mustInvoke(t, inv, "to_big_endian_64", function.Bigint(v))
			dec := mustInvoke(t, inv, "from_big_endian_64", enc)
			if dec.Int != v {
				t.Fatalf("big endian round trip: got %d want %d", dec.Int, v)
			}
		}
	})

	t.Run("OverloadsAgree", func(t *testing.T) {
		inv := newInvoker(t)
		cases := map[string]string{
			"from_hex":       "DeadBeef",
			"from_base64":    "aGVsbG8gd29ybGQ=",
			"from_base64url": "-__-",
		}
		for name, text := range cases {
			a := mustInvoke(t, inv, name, function.Varchar(text))
			b := mustInvoke(t, inv, name, function.Varbinary([]byte(text)))
			if !a.Equal(b) {
				t.Fatalf("%s overloads disagree: %s vs %s", name, a, b)
			}
		}
	})

	t.Run("CrossAlphabetRejected", func(t *testing.T) {
		inv := newInvoker(t)
		expectKind(t, inv, "from_base64", function.Varchar("-__-"), varbin.KindMalformedInput)
		expectKind(t, inv, "from_base64url", function.Varchar("+//+"), varbin.KindMalformedInput)
	})

	t.Run("NonUTF8Varchar", func(t *testing.T) {
		inv := newInvoker(t)
		bad := function.Value{Type: function.TypeVarchar, Bytes: []byte{0xff, 0xfe}}
		cases := map[string]string{
			"from_hex":    varbin.RuleHexInvalidChar,
			"from_base64": varbin.RuleBase64Std,
		}
		for name, rule := range cases {
			expectKind(t, inv, name, bad, varbin.KindMalformedInput)
			if _, err := inv.Invoke(name, bad); varbin.RuleID(err) != rule {
				t.Fatalf("%s(%q): rule %q, want %q", name, bad.Bytes, varbin.RuleID(err), rule)
			}
		}
	})

	t.Run("IntegerRange", func(t *testing.T) {
		inv := newInvoker(t)
		arg := function.Value{Type: function.TypeInteger, Int: 1 << 40}
		if _, err := inv.Invoke("to_big_endian_32", arg); !errors.Is(err, function.ErrIntegerRange) {
			t.Fatalf("to_big_endian_32(1<<40): expected ErrIntegerRange, got %v", err)
		}
	})

	t.Run("HexCaseInsensitive", func(t *testing.T) {
		inv := newInvoker(t)
		want := []byte{0xde, 0xad, 0xbe, 0xef}
		for _, s := range []string{"deadbeef", "DEADBEEF", "DeadBeef"} {
			got := mustInvoke(t, inv, "from_hex", function.Varchar(s))
			if !bytes.Equal(got.Bytes, want) {
				t.Fatalf("from_hex(%q) = %x", s, got.Bytes)
			}
		}
		expectKind(t, inv, "from_hex", function.Varchar("abc"), varbin.KindMalformedInput)
		expectKind(t, inv, "from_hex", function.Varchar("zz"), varbin.KindMalformedInput)
	})

	t.Run("BigEndianLength", func(t *testing.T) {
		inv := newInvoker(t)
		expectKind(t, inv, "from_big_endian_64", function.Varbinary(make([]byte, 3)), varbin.KindInvalidLength)
		expectKind(t, inv, "from_big_endian_64", function.Varbinary(make([]byte, 9)), varbin.KindInvalidLength)
		got := mustInvoke(t, inv, "from_big_endian_64", function.Varbinary([]byte{0, 0, 0, 0, 0, 0, 0, 1}))
		if got.Type != function.TypeBigint || got.Int != 1 {
			t.Fatalf("from_big_endian_64(..01) = %v", got)
		}
	})

	t.Run("KnownVectors", func(t *testing.T) {
		inv := newInvoker(t)
		cases := []struct{ name, in, want string }{
			{"md5", "", "d41d8cd98f00b204e9800998ecf8427e"},
			{"sha256", "abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
			{"sha1", "abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
			{"xxhash64", "", "ef46db3751d8e999"},
		}
		for _, tc := range cases {
			got := mustInvoke(t, inv, tc.name, function.Varbinary([]byte(tc.in)))
			if hex.EncodeToString(got.Bytes) != tc.want {
				t.Fatalf("%s(%q) = %x, want %s", tc.name, tc.in, got.Bytes, tc.want)
			}
		}
	})

	t.Run("EmptyInput", func(t *testing.T) {
		inv := newInvoker(t)
		if got := mustInvoke(t, inv, "length", function.Varbinary(nil)); got.Int != 0 {
			t.Fatalf("length(empty) = %d", got.Int)
		}
		for _, a := range varbin.Algorithms() {
			got := mustInvoke(t, inv, a.Name, function.Varbinary(nil))
			if len(got.Bytes) != a.Size {
				t.Fatalf("%s(empty) has %d bytes, want %d", a.Name, len(got.Bytes), a.Size)
			}
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		inv := newInvoker(t)
		in := function.Varbinary(seq(1024))
		for _, name := range []string{"to_base64", "to_hex", "md5", "sha512", "xxhash64", "to_cid"} {
			a := mustInvoke(t, inv, name, in)
			b := mustInvoke(t, inv, name, in)
			if !a.Equal(b) {
				t.Fatalf("%s not deterministic", name)
			}
		}
	})
}

// RunVectors checks every vector in the file at path against a fresh
// Invoker.
func RunVectors(t *testing.T, newInvoker NewInvoker, path string) {
	t.Helper()
	f, err := model.LoadVectors(path)
	if err != nil {
		t.Fatalf("LoadVectors: %v", err)
	}
	inv := newInvoker(t)
	for i, want := range f.Vectors {
		arg, err := want.Arg.Value()
		if err != nil {
			t.Fatalf("vector %d: %v", i, err)
		}
		got, err := model.Outcome(inv.Invoke, want.Function, arg)
		if err != nil {
			t.Fatalf("vector %d (%s): %v", i, want.Function, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("vector %d (%s) mismatch (-want +got):\n%s", i, want.Function, diff)
		}
	}
}

func mustInvoke(t *testing.T, inv Invoker, name string, arg function.Value) function.Value {
	t.Helper()
	out, err := inv.Invoke(name, arg)
	if err != nil {
		t.Fatalf("%s(%s): %v", name, arg.Type, err)
	}
	return out
}

func expectKind(t *testing.T, inv Invoker, name string, arg function.Value, kind varbin.Kind) {
	t.Helper()
	_, err := inv.Invoke(name, arg)
	if err == nil {
		t.Fatalf("%s(%q): expected %s error", name, arg.Bytes, kind)
	}
	if !varbin.IsKind(err, kind) {
		t.Fatalf("%s(%q): expected %s, got %v", name, arg.Bytes, kind, err)
	}
}

func seq(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i % 251)
	}
	return b
}
