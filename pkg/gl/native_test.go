//go:build !js

package gl

import "testing"

func TestNativeDrawBuffersEmpty(t *testing.T) {
	// An empty selection must be a no-op, not an out-of-range driver call.
	b := &nativeBackend{}
	b.DrawBuffers(nil)
	b.DrawBuffers([]ColorBuffer{})
}
