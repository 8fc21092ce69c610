package model

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"xdao.co/varbin/function"
	"xdao.co/varbin/varbin"
)

// VectorValue is a scalar in a conformance vector file. Varbinary payloads
// are lowercase hex so the files stay diffable.
type VectorValue struct {
	Type string `json:"type"`
	Hex  string `json:"hex,omitempty"`
	Text string `json:"text,omitempty"`
	Int  *int64 `json:"int,omitempty"`
}

// VectorError is the expected failure of a vector.
type VectorError struct {
	Kind   string `json:"kind"`
	RuleID string `json:"ruleId"`
}

// Vector is one function call and its expected outcome. Exactly one of
// Result and Error is set.
type Vector struct {
	Function string       `json:"function"`
	Arg      VectorValue  `json:"arg"`
	Result   *VectorValue `json:"result,omitempty"`
	Error    *VectorError `json:"error,omitempty"`
}

type VectorFile struct {
	Version int      `json:"version"`
	Vectors []Vector `json:"vectors"`
}

func LoadVectors(path string) (VectorFile, error) {
	var f VectorFile
	b, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	if err := json.Unmarshal(b, &f); err != nil {
		return f, fmt.Errorf("vectors: %s: %w", path, err)
	}
	if f.Version != 1 {
		return f, fmt.Errorf("vectors: %s: unsupported version %d", path, f.Version)
	}
	for i, v := range f.Vectors {
		if (v.Result == nil) == (v.Error == nil) {
			return f, fmt.Errorf("vectors: %s: vector %d (%s) needs exactly one of result, error", path, i, v.Function)
		}
	}
	return f, nil
}

// Value converts v into a catalog value.
func (v VectorValue) Value() (function.Value, error) {
	t, err := function.ParseType(v.Type)
	if err != nil {
		return function.Value{}, err
	}
	switch t {
	case function.TypeVarbinary:
		b, err := hex.DecodeString(v.Hex)
		if err != nil {
			return function.Value{}, fmt.Errorf("vectors: bad hex %q: %w", v.Hex, err)
		}
		return function.Varbinary(b), nil
	case function.TypeVarchar:
		return function.Varchar(v.Text), nil
	default:
		if v.Int == nil {
			return function.Value{}, errors.New("vectors: missing int")
		}
		if t == function.TypeInteger {
			if *v.Int < math.MinInt32 || *v.Int > math.MaxInt32 {
				return function.Value{}, fmt.Errorf("vectors: integer %d out of range", *v.Int)
			}
			return function.Integer(int32(*v.Int)), nil
		}
		return function.Bigint(*v.Int), nil
	}
}

// VectorValueOf is the inverse of VectorValue.Value.
func VectorValueOf(v function.Value) VectorValue {
	out := VectorValue{Type: string(v.Type)}
	switch {
	case v.Type == function.TypeVarchar:
		out.Text = v.Text()
	case v.Type.IsInteger():
		n := v.Int
		out.Int = &n
	default:
		out.Hex = hex.EncodeToString(v.Bytes)
	}
	return out
}

// Outcome evaluates fn(arg) with call and records the result or the typed
// failure in vector form. Failures that are not *varbin.Error are returned.
func Outcome(call func(string, function.Value) (function.Value, error), fn string, arg function.Value) (Vector, error) {
	vec := Vector{Function: fn, Arg: VectorValueOf(arg)}
	out, err := call(fn, arg)
	if err != nil {
		var e *varbin.Error
		if !errors.As(err, &e) {
			return vec, err
		}
		vec.Error = &VectorError{Kind: string(e.Kind), RuleID: e.RuleID}
		return vec, nil
	}
	res := VectorValueOf(out)
	vec.Result = &res
	return vec, nil
}
