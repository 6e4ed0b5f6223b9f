//go:build js && wasm

package gl

import (
	"syscall/js"
	"testing"
)

func TestWrapRSkippedOnWebGL1(t *testing.T) {
	// A WebGL 1 context has no R wrap axis; both parameter setters must
	// skip it before reaching the browser. The null context makes any
	// leaked call panic.
	b := &webBackend{ctx: js.Null()}
	b.TexParameteri(Texture2D, TextureWrapR, ClampToEdge)
	b.TexParameterf(Texture2D, TextureWrapR, ClampToEdge)
}

func TestWebDrawBuffersEmpty(t *testing.T) {
	b := &webBackend{ctx: js.Null()}
	b.DrawBuffers(nil)
}
