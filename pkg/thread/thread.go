// Package thread locks GL context work to the main OS thread where the
// platform demands it.
// See: https://github.com/golang/go/wiki/LockOSThread
package thread

import (
	"runtime"

	"github.com/faiface/mainthread"
)

var isMacOs = runtime.GOOS == "darwin"

// MainWrap runs f under the main thread dispatcher on macOS, where window
// and GL context creation must happen on the main thread. Elsewhere it
// just calls f.
func MainWrap(f func()) {
	if isMacOs {
		mainthread.Run(f)
	} else {
		f()
	}
}

// Main calls f on the main thread on macOS and directly elsewhere.
func Main(f func()) {
	if isMacOs {
		mainthread.Call(f)
	} else {
		f()
	}
}
