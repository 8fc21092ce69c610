package varbin

import (
	"encoding/binary"
	"strconv"
)

// ToBigEndian64 encodes v as 8 bytes of two's complement, most significant
// byte first.
func ToBigEndian64(v int64) []byte {
	out := make([]byte, 8)
	binary.BigEndian.PutUint64(out, uint64(v))
	return out
}

// FromBigEndian64 decodes exactly 8 big-endian bytes into a signed 64-bit
// integer. Any other length fails with KindInvalidLength.
func FromBigEndian64(b []byte) (int64, error) {
	if len(b) != 8 {
		return 0, invalidLength(RuleBigEndian64, 8, len(b))
	}
	return int64(binary.BigEndian.Uint64(b)), nil
}

// ToBigEndian32 encodes v as 4 bytes of two's complement, most significant
// byte first.
func ToBigEndian32(v int32) []byte {
	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, uint32(v))
	return out
}

// FromBigEndian32 decodes exactly 4 big-endian bytes into a signed 32-bit
// integer. Any other length fails with KindInvalidLength.
func FromBigEndian32(b []byte) (int32, error) {
	if len(b) != 4 {
		return 0, invalidLength(RuleBigEndian32, 4, len(b))
	}
	return int32(binary.BigEndian.Uint32(b)), nil
}

func itoa(i int) string { return strconv.Itoa(i) }
