package model

import (
	"xdao.co/varbin/function"
)

// Evaluate runs req against c. Failures are returned as *CodedError.
func Evaluate(c *function.Catalog, req EvalRequest) (*EvalResponse, error) {
	if c == nil {
		return nil, NewError(ErrInternal, "missing catalog")
	}
	if req.Function == "" {
		return nil, NewError(ErrInvalidRequest, "function is required")
	}
	arg, err := ToValue(req.Arg)
	if err != nil {
		return nil, err
	}
	s, err := c.Lookup(req.Function, arg.Type)
	if err != nil {
		return nil, ErrorFrom(err)
	}
	out, err := c.Invoke(req.Function, arg)
	if err != nil {
		return nil, ErrorFrom(err)
	}
	return &EvalResponse{
		Function:  req.Function,
		Signature: s.Signature(),
		Result:    FromValue(out),
	}, nil
}

// ToValue converts a boundary value into a catalog value.
func ToValue(v TypedValue) (function.Value, error) {
	t, err := function.ParseType(v.Type)
	if err != nil {
		return function.Value{}, NewError(ErrInvalidRequest, err.Error())
	}
	switch t {
	case function.TypeVarbinary:
		if v.Text != "" || v.Int != nil {
			return function.Value{}, NewError(ErrInvalidRequest, "varbinary value must use bytes")
		}
		return function.Varbinary(v.Bytes), nil
	case function.TypeVarchar:
		if v.Bytes != nil || v.Int != nil {
			return function.Value{}, NewError(ErrInvalidRequest, "varchar value must use text")
		}
		return function.Varchar(v.Text), nil
	default:
		if v.Int == nil {
			return function.Value{}, NewError(ErrInvalidRequest, string(t)+" value requires int")
		}
		if t == function.TypeInteger {
			if *v.Int < -1<<31 || *v.Int > 1<<31-1 {
				return function.Value{}, NewError(ErrInvalidRequest, "integer value out of 32-bit range")
			}
			return function.Integer(int32(*v.Int)), nil
		}
		return function.Bigint(*v.Int), nil
	}
}

// FromValue converts a catalog value into a boundary value.
func FromValue(v function.Value) TypedValue {
	out := TypedValue{Type: string(v.Type)}
	switch {
	case v.Type == function.TypeVarchar:
		out.Text = v.Text()
	case v.Type.IsInteger():
		n := v.Int
		out.Int = &n
	default:
		out.Bytes = v.Bytes
	}
	return out
}

// ListFunctions describes the overloads of c in the given categories.
func ListFunctions(c *function.Catalog, cat function.Category) []FunctionInfo {
	list := c.List(cat)
	out := make([]FunctionInfo, 0, len(list))
	for _, s := range list {
		out = append(out, FunctionInfo{
			Name:        s.Name,
			Signature:   s.Signature(),
			Arg:         string(s.Arg),
			Return:      string(s.Return),
			Category:    s.Category.String(),
			Description: s.Description,
		})
	}
	return out
}
