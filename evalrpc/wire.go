package evalrpc

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"xdao.co/varbin/function"
)

// varchar travels as BytesValue like varbinary: decoders must see the
// caller's exact bytes, and proto3 strings may only carry UTF-8.
func newMessage(t function.Type) proto.Message {
	switch t {
	case function.TypeBigint:
		return new(wrapperspb.Int64Value)
	case function.TypeInteger:
		return new(wrapperspb.Int32Value)
	default:
		return new(wrapperspb.BytesValue)
	}
}

func toMessage(v function.Value) (proto.Message, error) {
	switch v.Type {
	case function.TypeVarbinary, function.TypeVarchar:
		return wrapperspb.Bytes(v.Bytes), nil
	case function.TypeBigint:
		return wrapperspb.Int64(v.Int), nil
	case function.TypeInteger:
		if v.Int < math.MinInt32 || v.Int > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %d", function.ErrIntegerRange, v.Int)
		}
		return wrapperspb.Int32(int32(v.Int)), nil
	default:
		return nil, fmt.Errorf("evalrpc: unsupported type %q", v.Type)
	}
}

func fromMessage(t function.Type, m proto.Message) (function.Value, error) {
	switch msg := m.(type) {
	case *wrapperspb.BytesValue:
		if t == function.TypeVarbinary || t == function.TypeVarchar {
			return function.Value{Type: t, Bytes: msg.GetValue()}, nil
		}
	case *wrapperspb.Int64Value:
		if t == function.TypeBigint {
			return function.Bigint(msg.GetValue()), nil
		}
	case *wrapperspb.Int32Value:
		if t == function.TypeInteger {
			return function.Integer(msg.GetValue()), nil
		}
	}
	return function.Value{}, fmt.Errorf("evalrpc: message %T does not carry %s", m, t)
}
