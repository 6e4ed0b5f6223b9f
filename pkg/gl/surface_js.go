//go:build js && wasm

package gl

import "syscall/js"

// Surface is the handoff from the host page on web builds: the canvas
// element the context is created against. The canvas stays owned by the
// page; the backend only negotiates a WebGL context on it.
type Surface struct {
	Canvas js.Value
}
