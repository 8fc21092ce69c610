package function

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"xdao.co/varbin/varbin"
)

func TestDefault_Names(t *testing.T) {
	want := []string{
		"blake2b_256", "blake3", "farm_fingerprint",
		"from_base64", "from_base64url", "from_big_endian_32", "from_big_endian_64", "from_cid", "from_hex",
		"length", "md5", "murmur3_x64_128",
		"sha1", "sha256", "sha3_256", "sha512",
		"to_base64", "to_base64url", "to_big_endian_32", "to_big_endian_64", "to_cid", "to_hex",
		"xxhash64",
	}
	if diff := cmp.Diff(want, Default().Names(CategoryAll)); diff != "" {
		t.Fatalf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestDefault_NamesByCategory(t *testing.T) {
	got := Default().Names(CategoryInteger | CategoryLength)
	want := []string{"from_big_endian_32", "from_big_endian_64", "length", "to_big_endian_32", "to_big_endian_64"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Names mismatch (-want +got):\n%s", diff)
	}
}

func TestDefault_Overloads(t *testing.T) {
	for _, name := range []string{"from_base64", "from_base64url", "from_hex", "from_cid"} {
		var args []Type
		for _, s := range Default().Overloads(name) {
			args = append(args, s.Arg)
			if s.Return != TypeVarbinary {
				t.Fatalf("%s returns %s", s.Signature(), s.Return)
			}
		}
		if diff := cmp.Diff([]Type{TypeVarbinary, TypeVarchar}, args); diff != "" {
			t.Fatalf("%s overloads (-want +got):\n%s", name, diff)
		}
	}
}

func TestCatalog_RegisterRejectsDuplicates(t *testing.T) {
	c := NewCatalog()
	s := Scalar{
		Name: "id", Arg: TypeVarbinary, Return: TypeVarbinary, Category: CategoryCodec,
		Eval: func(v Value) (Value, error) { return v, nil },
	}
	if err := c.Register(s); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := c.Register(s); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	s.Arg = TypeVarchar
	if err := c.Register(s); err != nil {
		t.Fatalf("Register overload: %v", err)
	}
}

func TestCatalog_RegisterValidates(t *testing.T) {
	eval := func(v Value) (Value, error) { return v, nil }
	bad := []Scalar{
		{Arg: TypeVarbinary, Return: TypeVarbinary, Category: CategoryCodec, Eval: eval},
		{Name: "x", Arg: TypeVarbinary, Return: TypeVarbinary, Category: CategoryCodec},
		{Name: "x", Arg: "blob", Return: TypeVarbinary, Category: CategoryCodec, Eval: eval},
		{Name: "x", Arg: TypeVarbinary, Return: TypeVarbinary, Eval: eval},
	}
	for i, s := range bad {
		if err := NewCatalog().Register(s); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestCatalog_LookupErrors(t *testing.T) {
	_, err := Default().Lookup("nope", TypeVarbinary)
	if !errors.Is(err, ErrUnknownFunction) {
		t.Fatalf("expected ErrUnknownFunction, got %v", err)
	}
	_, err = Default().Lookup("md5", TypeBigint)
	if !errors.Is(err, ErrNoOverload) {
		t.Fatalf("expected ErrNoOverload, got %v", err)
	}
}

func TestCatalog_InvokeChecksReturnType(t *testing.T) {
	c := NewCatalog()
	c.MustRegister(Scalar{
		Name: "liar", Arg: TypeVarbinary, Return: TypeBigint, Category: CategoryCodec,
		Eval: func(v Value) (Value, error) { return v, nil },
	})
	if _, err := c.Invoke("liar", Varbinary(nil)); err == nil {
		t.Fatalf("expected return type error")
	}
}

func TestCatalog_Filter(t *testing.T) {
	c := Default().Filter(func(s Scalar) bool { return s.Category == CategoryDigest })
	if _, err := c.Lookup("md5", TypeVarbinary); err != nil {
		t.Fatalf("md5 missing after filter: %v", err)
	}
	if _, err := c.Lookup("to_hex", TypeVarbinary); !errors.Is(err, ErrUnknownFunction) {
		t.Fatalf("to_hex should be filtered out, got %v", err)
	}
}

func TestInvoke_PropagatesTypedErrors(t *testing.T) {
	_, err := Invoke("from_big_endian_64", Varbinary([]byte{1, 2, 3}))
	var e *varbin.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected *varbin.Error, got %T", err)
	}
	if e.Kind != varbin.KindInvalidLength || e.Expected != 8 || e.Actual != 3 {
		t.Fatalf("unexpected error: %+v", e)
	}
}

func TestInvoke_RejectsIntegerOutOfRange(t *testing.T) {
	for _, n := range []int64{1 << 40, -1<<31 - 1, 1 << 31} {
		_, err := Invoke("to_big_endian_32", Value{Type: TypeInteger, Int: n})
		if !errors.Is(err, ErrIntegerRange) {
			t.Fatalf("to_big_endian_32(%d): expected ErrIntegerRange, got %v", n, err)
		}
	}
	if _, err := Invoke("to_big_endian_32", Value{Type: TypeInteger, Int: -1 << 31}); err != nil {
		t.Fatalf("to_big_endian_32(MinInt32): %v", err)
	}
}

func TestBigEndian32_Overload(t *testing.T) {
	out, err := Invoke("to_big_endian_32", Integer(-1))
	if err != nil {
		t.Fatalf("to_big_endian_32: %v", err)
	}
	if out.String() != "FFFFFFFF" {
		t.Fatalf("to_big_endian_32(-1) = %s", out)
	}
	back, err := Invoke("from_big_endian_32", out)
	if err != nil {
		t.Fatalf("from_big_endian_32: %v", err)
	}
	if back.Type != TypeInteger || back.Int != -1 {
		t.Fatalf("from_big_endian_32 = %+v", back)
	}
}

func TestValue_String(t *testing.T) {
	cases := map[string]Value{
		"DEADBEEF": Varbinary([]byte{0xde, 0xad, 0xbe, 0xef}),
		"hi":       Varchar("hi"),
		"-7":       Bigint(-7),
		"12":       Integer(12),
	}
	for want, v := range cases {
		if got := v.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
}

func TestParseCategories(t *testing.T) {
	c, err := ParseCategories([]string{"digest", "Codec"})
	if err != nil {
		t.Fatalf("ParseCategories: %v", err)
	}
	if c != CategoryDigest|CategoryCodec {
		t.Fatalf("got %v", c)
	}
	if c.String() != "codec|digest" {
		t.Fatalf("String() = %q", c.String())
	}
	if all, _ := ParseCategories(nil); all != CategoryAll {
		t.Fatalf("empty list should select all")
	}
	if _, err := ParseCategories([]string{"bogus"}); err == nil {
		t.Fatalf("expected error")
	}
}
