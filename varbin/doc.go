// Package varbin implements pure scalar functions over opaque binary values
// ("varbinary"): text codecs (Base64, URL-safe Base64, hexadecimal), a
// fixed-width big-endian integer codec, and digest functions.
//
// Every function consumes one complete in-memory value and returns a newly
// allocated result. Nothing is cached or shared between calls, so all
// functions are safe for concurrent use without locking.
//
// Decode functions are strict and return *Error values whose Kind is either
// KindMalformedInput or KindInvalidLength. Encoders and digests never fail,
// including for empty input.
//
// Hex encoding emits uppercase digits; hex decoding accepts either case.
package varbin

// Length returns the number of bytes in b.
func Length(b []byte) int64 {
	return int64(len(b))
}
