// Package gl presents one OpenGL-style rendering API on top of two
// interchangeable backends: the desktop GL driver on native builds and
// WebGL 1/2 on js/wasm builds. The backend is chosen once, at context
// construction, and call sites behave identically on both.
//
// # Construction
//
// A Context is created against a surface supplied by the windowing
// layer — a GLFW window's proc-address resolver on native, a canvas
// element on the web:
//
//	ctx, err := gl.New(surface, gl.Config{}, logger.Default())
//	if err != nil {
//		// no compatible GPU context for this surface
//	}
//	defer ctx.Close()
//
// Capabilities are negotiated during New and fixed afterwards; branch on
// ctx.Caps() before using vertex array objects, instancing or multiple
// render targets, which WebGL 1 lacks.
//
// # Handles
//
// Resources are referenced by opaque handles issued by the context that
// created them. Handles compare with ==, are only meaningful on their
// issuing context, and become invalid on delete or Close; any later use
// fails with ErrInvalidHandle instead of touching driver state.
//
// # Frames
//
// Neither backend clears the draw buffer between frames: contents
// persist until Clear is called. The context enforces this on the web
// backend by requesting a preserved drawing buffer.
//
// A Context is single-owner: serialize access externally when sharing
// it between goroutines. Calls execute synchronously in issue order.
package gl
