package gl

import (
	"errors"
	"fmt"
)

var (
	// ErrNoContext is returned by New when no compatible GL context can be
	// established for the given surface. No partial context is returned.
	ErrNoContext = errors.New("gl: no compatible context for surface")

	// ErrUnsupported is returned when the active backend or its negotiated
	// version can not perform the requested operation. Callers should
	// consult Capabilities before taking such paths.
	ErrUnsupported = errors.New("gl: not supported by the active backend")

	// ErrInvalidHandle is returned when an operation receives a handle
	// that was deleted, never issued, or issued by another context.
	ErrInvalidHandle = errors.New("gl: invalid resource handle")

	// ErrContextClosed is returned for operations on a closed context.
	ErrContextClosed = errors.New("gl: context is closed")
)

// ShaderError reports a failed shader compile or program link. Log carries
// the driver's info log verbatim.
type ShaderError struct {
	Op  string // "compile" or "link"
	Log string
}

func (e *ShaderError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("gl: shader %s failed", e.Op)
	}
	return fmt.Sprintf("gl: shader %s failed: %s", e.Op, e.Log)
}
