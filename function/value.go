package function

import (
	"fmt"
	"strconv"

	"xdao.co/varbin/varbin"
)

// Type is a declared SQL-level type of an argument or result.
type Type string

const (
	TypeVarbinary Type = "varbinary"
	TypeVarchar   Type = "varchar"
	TypeBigint    Type = "bigint"
	TypeInteger   Type = "integer"
)

// ParseType parses a declared type name.
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case TypeVarbinary, TypeVarchar, TypeBigint, TypeInteger:
		return t, nil
	default:
		return "", fmt.Errorf("function: unknown type %q", s)
	}
}

// IsInteger reports whether t carries its payload in Value.Int.
func (t Type) IsInteger() bool { return t == TypeBigint || t == TypeInteger }

// Value is a typed scalar. Varbinary and varchar values carry their bytes in
// Bytes; bigint and integer values carry theirs in Int.
type Value struct {
	Type  Type
	Bytes []byte
	Int   int64
}

func Varbinary(b []byte) Value { return Value{Type: TypeVarbinary, Bytes: b} }
func Varchar(s string) Value   { return Value{Type: TypeVarchar, Bytes: []byte(s)} }
func Bigint(v int64) Value     { return Value{Type: TypeBigint, Int: v} }
func Integer(v int32) Value    { return Value{Type: TypeInteger, Int: int64(v)} }

// Text returns the bytes of a varchar value as a string.
func (v Value) Text() string { return string(v.Bytes) }

// String renders the value for display: varbinary as uppercase hex, varchar
// verbatim, integers in decimal.
func (v Value) String() string {
	switch v.Type {
	case TypeVarbinary:
		return varbin.ToHex(v.Bytes)
	case TypeVarchar:
		return string(v.Bytes)
	case TypeBigint, TypeInteger:
		return strconv.FormatInt(v.Int, 10)
	default:
		return fmt.Sprintf("<%s>", v.Type)
	}
}

// Equal reports whether v and o have the same type and content.
func (v Value) Equal(o Value) bool {
	if v.Type != o.Type {
		return false
	}
	if v.Type.IsInteger() {
		return v.Int == o.Int
	}
	return string(v.Bytes) == string(o.Bytes)
}
