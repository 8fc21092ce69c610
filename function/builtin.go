package function

import (
	"xdao.co/varbin/varbin"
)

func init() {
	for _, s := range builtins() {
		MustRegister(s)
	}
}

// Builtins returns a fresh copy of the builtin overloads, for callers that
// assemble their own catalog.
func Builtins() []Scalar { return builtins() }

func builtins() []Scalar {
	out := []Scalar{
		{
			Name: "length", Description: "length of the given binary",
			Arg: TypeVarbinary, Return: TypeBigint, Category: CategoryLength,
			Eval: func(v Value) (Value, error) { return Bigint(varbin.Length(v.Bytes)), nil },
		},
		encoder("to_base64", "encode binary data as base64", varbin.ToBase64),
		encoder("to_base64url", "encode binary data as base64 using the URL safe alphabet", varbin.ToBase64URL),
		encoder("to_hex", "encode binary data as hex", varbin.ToHex),
		{
			Name: "to_big_endian_64", Description: "encode value as a 64-bit 2's complement big endian varbinary",
			Arg: TypeBigint, Return: TypeVarbinary, Category: CategoryInteger,
			Eval: func(v Value) (Value, error) { return Varbinary(varbin.ToBigEndian64(v.Int)), nil },
		},
		{
			Name: "from_big_endian_64", Description: "decode bigint value from a 64-bit 2's complement big endian varbinary",
			Arg: TypeVarbinary, Return: TypeBigint, Category: CategoryInteger,
			Eval: func(v Value) (Value, error) {
				n, err := varbin.FromBigEndian64(v.Bytes)
				if err != nil {
					return Value{}, err
				}
				return Bigint(n), nil
			},
		},
		{
			Name: "to_big_endian_32", Description: "encode value as a 32-bit 2's complement big endian varbinary",
			Arg: TypeInteger, Return: TypeVarbinary, Category: CategoryInteger,
			Eval: func(v Value) (Value, error) { return Varbinary(varbin.ToBigEndian32(int32(v.Int))), nil },
		},
		{
			Name: "from_big_endian_32", Description: "decode integer value from a 32-bit 2's complement big endian varbinary",
			Arg: TypeVarbinary, Return: TypeInteger, Category: CategoryInteger,
			Eval: func(v Value) (Value, error) {
				n, err := varbin.FromBigEndian32(v.Bytes)
				if err != nil {
					return Value{}, err
				}
				return Integer(n), nil
			},
		},
		{
			Name: "to_cid", Description: "compute the CIDv1 (raw, sha2-256) of binary data",
			Arg: TypeVarbinary, Return: TypeVarchar, Category: CategoryContentID,
			Eval: func(v Value) (Value, error) { return Varchar(varbin.ToCID(v.Bytes)), nil },
		},
	}
	out = append(out, decoder("from_base64", "decode base64 encoded binary data", CategoryCodec, varbin.FromBase64)...)
	out = append(out, decoder("from_base64url", "decode URL safe base64 encoded binary data", CategoryCodec, varbin.FromBase64URL)...)
	out = append(out, decoder("from_hex", "decode hex encoded binary data", CategoryCodec, varbin.FromHex)...)
	out = append(out, decoder("from_cid", "extract the sha2-256 digest from a CID", CategoryContentID, varbin.FromCID)...)
	for _, a := range varbin.Algorithms() {
		out = append(out, digest(a))
	}
	return out
}

func encoder(name, desc string, f func([]byte) string) Scalar {
	return Scalar{
		Name: name, Description: desc,
		Arg: TypeVarbinary, Return: TypeVarchar, Category: CategoryCodec,
		Eval: func(v Value) (Value, error) { return Varchar(f(v.Bytes)), nil },
	}
}

// decoder registers the same decode function for varchar and varbinary
// input; both see only the argument's bytes.
func decoder(name, desc string, cat Category, f func([]byte) ([]byte, error)) []Scalar {
	eval := func(v Value) (Value, error) {
		b, err := f(v.Bytes)
		if err != nil {
			return Value{}, err
		}
		return Varbinary(b), nil
	}
	return []Scalar{
		{Name: name, Description: desc, Arg: TypeVarchar, Return: TypeVarbinary, Category: cat, Eval: eval},
		{Name: name, Description: desc, Arg: TypeVarbinary, Return: TypeVarbinary, Category: cat, Eval: eval},
	}
}

func digest(a varbin.Algorithm) Scalar {
	return Scalar{
		Name: a.Name, Description: "compute " + a.Name + " hash",
		Arg: TypeVarbinary, Return: TypeVarbinary, Category: CategoryDigest,
		Eval: func(v Value) (Value, error) { return Varbinary(a.Sum(v.Bytes)), nil },
	}
}
