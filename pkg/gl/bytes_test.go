package gl

import (
	"bytes"
	"testing"
)

func TestFloat32Bytes(t *testing.T) {
	got := Float32Bytes(1, -2)
	want := []byte{0x00, 0x00, 0x80, 0x3f, 0x00, 0x00, 0x00, 0xc0}
	if !bytes.Equal(got, want) {
		t.Errorf("Float32Bytes(1, -2) = % x, want % x", got, want)
	}
	if len(Float32Bytes()) != 0 {
		t.Error("empty input should yield empty output")
	}
}

func TestUint16Bytes(t *testing.T) {
	got := Uint16Bytes(0x0102, 0xFFFF)
	want := []byte{0x02, 0x01, 0xff, 0xff}
	if !bytes.Equal(got, want) {
		t.Errorf("Uint16Bytes = % x, want % x", got, want)
	}
}
