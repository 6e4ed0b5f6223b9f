package gl

import "testing"

func TestBufferBitSplit(t *testing.T) {
	tests := []struct {
		mask BufferBit
		bits []BufferBit
		name string
	}{
		{0, nil, "none"},
		{ColorBufferBit, []BufferBit{ColorBufferBit}, "color"},
		{DepthBufferBit, []BufferBit{DepthBufferBit}, "depth"},
		{StencilBufferBit, []BufferBit{StencilBufferBit}, "stencil"},
		{ColorBufferBit | DepthBufferBit, []BufferBit{ColorBufferBit, DepthBufferBit}, "color|depth"},
		{DepthBufferBit | StencilBufferBit, []BufferBit{DepthBufferBit, StencilBufferBit}, "depth|stencil"},
		{ColorBufferBit | DepthBufferBit | StencilBufferBit,
			[]BufferBit{ColorBufferBit, DepthBufferBit, StencilBufferBit}, "color|depth|stencil"},
	}

	for _, test := range tests {
		bits := test.mask.Split()
		if len(bits) != len(test.bits) {
			t.Fatalf("%v: got %d bits, want %d", test.mask, len(bits), len(test.bits))
		}
		var joined BufferBit
		for i, bit := range bits {
			if bit != test.bits[i] {
				t.Errorf("%v: bit %d = %v, want %v", test.mask, i, bit, test.bits[i])
			}
			joined |= bit
		}
		if joined != test.mask {
			t.Errorf("%v: recombined bits = %v", test.mask, joined)
		}
		if s := test.mask.String(); s != test.name {
			t.Errorf("%v: String() = %q, want %q", uint32(test.mask), s, test.name)
		}
	}
}

func TestBufferBitHas(t *testing.T) {
	mask := ColorBufferBit | DepthBufferBit
	if !mask.Has(ColorBufferBit) || !mask.Has(DepthBufferBit) {
		t.Errorf("%v should contain its own bits", mask)
	}
	if mask.Has(StencilBufferBit) {
		t.Errorf("%v should not contain stencil", mask)
	}
	if !mask.Has(0) {
		t.Error("every mask contains the empty mask")
	}
}
