package model

// TypedValue is a scalar at the JSON boundary.
//
// Type selects which payload field is meaningful:
// - varbinary: Bytes (base64 in JSON, via encoding/json)
// - varchar: Text
// - bigint, integer: Int
type TypedValue struct {
	Type  string `json:"type"`
	Bytes []byte `json:"bytes,omitempty"`
	Text  string `json:"text,omitempty"`
	Int   *int64 `json:"int,omitempty"`
}

type EvalRequest struct {
	Function string     `json:"function"`
	Arg      TypedValue `json:"arg"`
}

type EvalResponse struct {
	Function  string     `json:"function"`
	Signature string     `json:"signature"`
	Result    TypedValue `json:"result"`
}

// FunctionInfo describes one registered overload.
type FunctionInfo struct {
	Name        string `json:"name"`
	Signature   string `json:"signature"`
	Arg         string `json:"arg"`
	Return      string `json:"return"`
	Category    string `json:"category"`
	Description string `json:"description"`
}
