package gl

import (
	"encoding/binary"
	"math"
)

// Float32Bytes packs float32 values into the little-endian byte layout
// BufferData expects for Float attribute data.
func Float32Bytes(values ...float32) []byte {
	b := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(v))
	}
	return b
}

// Uint16Bytes packs uint16 values into the little-endian byte layout
// BufferData expects for UnsignedShort index data.
func Uint16Bytes(values ...uint16) []byte {
	b := make([]byte, 2*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint16(b[2*i:], v)
	}
	return b
}
