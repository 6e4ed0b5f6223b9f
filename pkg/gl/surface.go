//go:build !js

package gl

import "unsafe"

// Surface is the handoff from the windowing layer on native builds. The
// window layer owns the OS window and must have made its GL context
// current on the calling thread; the backend only needs a way to resolve
// driver entry points from it, e.g. glfw.GetProcAddress.
type Surface struct {
	GetProcAddress func(name string) unsafe.Pointer
}
